package playerimpl

import (
	"context"
	"sync"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Engine is the playback state machine. One armed timer handle exists at a
// time; it is always cancelled before a new one is armed, so two tick loops
// can never mutate progress for different cursor positions concurrently.
type Engine struct {
	mu sync.Mutex

	stories []domain.Story
	cur     player.Cursor

	progress     float64
	paused       bool
	exited       bool
	closed       bool
	showViewers  bool
	viewers      []domain.StoryViewer
	showComments bool
	commentDraft string

	// armCancel is the single armed timer handle.
	armCancel    context.CancelFunc
	segmentStart time.Time
	elapsed      time.Duration

	viewed map[player.Cursor]bool

	stores     api.Stories
	history    viewhistory.Repository
	logger     logger.Logger
	clock      clockwork.Clock
	budget     time.Duration
	tick       time.Duration
	canViewers func() bool
	limiter    *rate.Limiter
	onExit     func()

	ctx    context.Context
	cancel context.CancelFunc
	events chan player.Snapshot
}

var _ player.Engine = (*Engine)(nil)

func (e *Engine) Snapshot() player.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) Events() <-chan player.Snapshot {
	return e.events
}

// Close stops the armed timer and records the interrupted display of the
// current item. Safe to call more than once; nothing mutates state after it.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.exited = true
	e.disarmLocked()
	record := e.leaveLocked(false)
	e.mu.Unlock()

	if record != nil {
		e.recordView(*record)
	}

	e.cancel()
	close(e.events)
}

func (e *Engine) snapshotLocked() player.Snapshot {
	story := e.stories[e.cur.Story]

	viewers := make([]domain.StoryViewer, len(e.viewers))
	copy(viewers, e.viewers)

	return player.Snapshot{
		Cursor:       e.cur,
		Story:        story,
		Item:         story.Item(e.cur.Item),
		ItemCount:    story.ItemCount(),
		StoryCount:   len(e.stories),
		Progress:     e.progress,
		Paused:       e.paused,
		Exited:       e.exited,
		ShowViewers:  e.showViewers,
		Viewers:      viewers,
		ShowComments: e.showComments,
		CommentDraft: e.commentDraft,
	}
}

// publish emits a snapshot without ever blocking the state machine. The
// presenter only cares about the latest state, so a full buffer drops the
// oldest entry.
func (e *Engine) publish(snap player.Snapshot) {
	select {
	case e.events <- snap:
	default:
		select {
		case <-e.events:
		default:
		}
		select {
		case e.events <- snap:
		default:
		}
	}
}

func (e *Engine) publishLocked() {
	if e.closed {
		return
	}
	e.publish(e.snapshotLocked())
}
