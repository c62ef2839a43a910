package viewhistory

import (
	"context"
	"errors"
	"time"
)

// Entry is one locally recorded story display. It backs the seen/unseen
// story ring across restarts and is best effort everywhere: repository
// failures never surface into playback.
type Entry struct {
	ID        int
	StoryID   string
	ItemIndex int
	Author    string
	Completed bool
	ViewedAt  time.Time
}

var ErrNotFound = errors.New("view history entry not found")

//go:generate go run go.uber.org/mock/mockgen -source=viewhistory.go -destination=mocks/mock.go -package=mocks

type Repository interface {
	Record(ctx context.Context, entry Entry) error
	SeenStoryIDs(ctx context.Context) (map[string]bool, error)
	ListByStory(ctx context.Context, storyID string) ([]*Entry, error)
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
