package playerimpl

import (
	"context"

	"github.com/fanhubapp/fanhub-client/internal/player"
)

// OpenViewers pauses playback and loads the viewer analytics for the current
// story. Admin only: non-admin sessions get ErrNotAllowed and playback is
// untouched. Playback stays paused until CloseViewers.
func (e *Engine) OpenViewers(ctx context.Context) error {
	if !e.canViewers() {
		return player.ErrNotAllowed
	}

	e.mu.Lock()
	if e.exited || e.showViewers {
		e.mu.Unlock()
		return nil
	}

	if !e.paused {
		e.pauseLocked()
	}
	e.showViewers = true
	id := e.stories[e.cur.Story].ID
	e.publishLocked()
	e.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()

	viewers, err := e.stores.Viewers(callCtx, id)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.showViewers {
		// Overlay already dismissed while the fetch was in flight.
		return err
	}

	if err != nil {
		e.logger.Warn("Failed to fetch story viewers", "story_id", id, "error", err)
		e.viewers = nil
		e.publishLocked()
		return err
	}

	e.viewers = viewers
	e.publishLocked()
	return nil
}

// CloseViewers dismisses the overlay and resumes playback from the
// preserved progress. The viewer list is not cached beyond the overlay.
func (e *Engine) CloseViewers() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.showViewers {
		return
	}

	e.showViewers = false
	e.viewers = nil

	if !e.exited {
		e.resumeLocked()
	}
	e.publishLocked()
}
