package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

// Config tunes the exponential backoff schedule for one operation. A zero
// MaxElapsedTime means the schedule is bounded by MaxRetries alone.
type Config struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Multiplier      float64
}

func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		Multiplier:      1.5,
	}
}

// Permanent marks err as not worth retrying; Do stops immediately and
// returns it.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs operation until it succeeds, the schedule is exhausted or ctx is
// cancelled. Each failed attempt is logged with its position in the
// schedule; the terminal error carries the operation name.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = cfg.InitialInterval
	bo.MaxInterval = cfg.MaxInterval
	bo.MaxElapsedTime = cfg.MaxElapsedTime
	bo.Multiplier = cfg.Multiplier
	bo.Reset()

	schedule := backoff.WithContext(backoff.WithMaxRetries(bo, cfg.MaxRetries), ctx)

	attempt := 0
	notify := func(err error, next time.Duration) {
		attempt++
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"attempt", attempt,
			"error", err,
			"next_attempt_in", next.Round(time.Millisecond).String(),
		)
	}

	if err := backoff.RetryNotify(operation, schedule, notify); err != nil {
		return fmt.Errorf("%s: %w", operationName, err)
	}
	return nil
}
