package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBurstThenThrottle(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 3)

	for i := 0; i < 3; i++ {
		require.True(t, l.Allow("like"))
	}
	require.False(t, l.Allow("like"))
}

func TestActionsAreIndependent(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	require.True(t, l.Allow("like"))
	require.False(t, l.Allow("like"))
	require.True(t, l.Allow("share"))
}
