// Package player defines the story playback engine: a timer-driven slideshow
// over one fetched story collection with manual override, view recording and
// engagement actions.
package player

import (
	"context"
	"errors"

	"github.com/fanhubapp/fanhub-client/internal/domain"
)

// ErrNoStories is returned when the collection is empty; the host renders a
// terminal empty state with a single exit action instead of a viewer.
var ErrNoStories = errors.New("no stories to play")

// ErrNotAllowed is returned when a capability-gated action (viewer
// analytics) is attempted without the capability.
var ErrNotAllowed = errors.New("action not allowed for this user")

// Cursor identifies the currently displayed item: story index within the
// collection and item index within that story.
type Cursor struct {
	Story int
	Item  int
}

// Snapshot is an immutable view of the engine state, published to the
// presenter on every change.
type Snapshot struct {
	Cursor       Cursor
	Story        domain.Story
	Item         domain.PlayableItem
	ItemCount    int
	StoryCount   int
	Progress     float64
	Paused       bool
	Exited       bool
	ShowViewers  bool
	Viewers      []domain.StoryViewer
	ShowComments bool
	CommentDraft string
}

// Engine sequences one story collection. All methods are safe for concurrent
// use; timer ticks and user commands race freely against each other.
type Engine interface {
	// Advance moves to the next item, rolling over to the next story and
	// exiting past the last one. No-op after exit.
	Advance()
	// Retreat moves to the previous item, landing on the previous story's
	// last item at story boundaries. No-op at the very first item.
	Retreat()
	// TogglePause flips the pause state, preserving accumulated progress.
	TogglePause()
	Pause()
	Resume()
	// Tap applies the tap-zone contract for a tap at x within a container of
	// the given width.
	Tap(x, width float64)

	Like(ctx context.Context)
	Comment(ctx context.Context, body string) error
	Share(ctx context.Context)

	// OpenViewers pauses playback and loads the admin viewer analytics.
	OpenViewers(ctx context.Context) error
	// CloseViewers dismisses the overlay and resumes playback.
	CloseViewers()

	OpenComments()
	CloseComments()

	Snapshot() Snapshot
	// Events streams snapshots; closed when the engine closes.
	Events() <-chan Snapshot
	// Close cancels the armed timer and releases the engine. Idempotent.
	Close()
}

// Zone is one third of the tap area.
type Zone int

const (
	ZoneRetreat Zone = iota
	ZoneTogglePause
	ZoneAdvance
)

// TapZone partitions the display area into three equal horizontal thirds:
// left retreats, right advances, middle toggles pause. x is relative to the
// container's bounding box, never an absolute screen coordinate.
func TapZone(x, width float64) Zone {
	if width <= 0 {
		return ZoneTogglePause
	}

	switch rel := x / width; {
	case rel < 1.0/3.0:
		return ZoneRetreat
	case rel > 2.0/3.0:
		return ZoneAdvance
	default:
		return ZoneTogglePause
	}
}
