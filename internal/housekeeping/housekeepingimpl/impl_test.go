package housekeepingimpl

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	mu         sync.Mutex
	cleanups   []time.Duration
	cleanupErr error
}

var _ viewhistory.Repository = (*fakeHistory)(nil)

func (f *fakeHistory) Record(ctx context.Context, entry viewhistory.Entry) error { return nil }

func (f *fakeHistory) SeenStoryIDs(ctx context.Context) (map[string]bool, error) {
	return map[string]bool{}, nil
}

func (f *fakeHistory) ListByStory(ctx context.Context, storyID string) ([]*viewhistory.Entry, error) {
	return nil, viewhistory.ErrNotFound
}

func (f *fakeHistory) CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleanups = append(f.cleanups, olderThan)
	return 3, f.cleanupErr
}

func (f *fakeHistory) cleanupCalls() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]time.Duration, len(f.cleanups))
	copy(out, f.cleanups)
	return out
}

func TestCleanupRunsImmediatelyWithRetentionWindow(t *testing.T) {
	history := &fakeHistory{}

	impl := &Impl{
		History:   history,
		Logger:    logger.New(logger.Opts{}),
		Interval:  time.Hour,
		Retention: 90 * 24 * time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, impl.ScheduleCleanup(ctx))

	require.Eventually(t, func() bool {
		return len(history.cleanupCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond, "the first prune runs at startup, not an interval later")

	assert.Equal(t, 90*24*time.Hour, history.cleanupCalls()[0])
}

func TestCleanupFailureIsNotFatal(t *testing.T) {
	history := &fakeHistory{cleanupErr: errors.New("connection reset")}

	impl := &Impl{
		History:   history,
		Logger:    logger.New(logger.Opts{}),
		Interval:  time.Hour,
		Retention: 24 * time.Hour,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, impl.ScheduleCleanup(ctx))

	require.Eventually(t, func() bool {
		return len(history.cleanupCalls()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}
