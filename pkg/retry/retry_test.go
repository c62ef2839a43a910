package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.New(logger.Opts{}), "flaky", func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, fastConfig())

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoExhaustsScheduleAndNamesOperation(t *testing.T) {
	sentinel := errors.New("still broken")

	calls := 0
	err := Do(context.Background(), logger.New(logger.Opts{}), "doomed", func() error {
		calls++
		return sentinel
	}, fastConfig())

	require.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "doomed")
	assert.Equal(t, 4, calls, "initial attempt plus MaxRetries")
}

func TestDoStopsOnPermanentError(t *testing.T) {
	sentinel := errors.New("bad credentials")

	calls := 0
	err := Do(context.Background(), logger.New(logger.Opts{}), "auth", func() error {
		calls++
		return Permanent(sentinel)
	}, fastConfig())

	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Do(ctx, logger.New(logger.Opts{}), "cancelled", func() error {
		calls++
		cancel()
		return errors.New("transient")
	}, fastConfig())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
