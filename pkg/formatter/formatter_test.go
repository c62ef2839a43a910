package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	require.Equal(t, "0", FormatNumber(0))
	require.Equal(t, "999", FormatNumber(999))
	require.Equal(t, "1,000", FormatNumber(1000))
	require.Equal(t, "1,234,567", FormatNumber(1234567))
	require.Equal(t, "-12,345", FormatNumber(-12345))
}

func TestFormatCount(t *testing.T) {
	require.Equal(t, "0", FormatCount(0))
	require.Equal(t, "999", FormatCount(999))
	require.Equal(t, "1K", FormatCount(1000))
	require.Equal(t, "12.3K", FormatCount(12345))
	require.Equal(t, "4.2M", FormatCount(4200000))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "just now", FormatRelativeTime(now.Add(-30*time.Second), now))
	require.Equal(t, "5m", FormatRelativeTime(now.Add(-5*time.Minute), now))
	require.Equal(t, "3h", FormatRelativeTime(now.Add(-3*time.Hour), now))
	require.Equal(t, "2d", FormatRelativeTime(now.Add(-48*time.Hour), now))
}

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "expired", FormatRemaining(now.Add(-time.Minute), now))
	require.Equal(t, "45m left", FormatRemaining(now.Add(45*time.Minute), now))
	require.Equal(t, "12h left", FormatRemaining(now.Add(12*time.Hour+5*time.Minute), now))
}
