package playerimpl

import (
	"context"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/player"
)

// Advance moves forward: next item, then next story's first item, then exit.
// Idempotent under the timer tick racing a manual next: once the terminal
// state has triggered exit, further calls do nothing.
func (e *Engine) Advance() {
	e.mu.Lock()

	if e.exited {
		e.mu.Unlock()
		return
	}

	e.advanceTailLocked()
}

// advanceFrom is the timer path: between deciding to advance and taking the
// lock, a manual tap may already have moved the cursor or paused playback.
// In that case this advance belongs to a stale position and is dropped.
func (e *Engine) advanceFrom(c player.Cursor) {
	e.mu.Lock()

	if e.exited || e.paused || e.cur != c {
		e.mu.Unlock()
		return
	}

	e.advanceTailLocked()
}

// advanceTailLocked finishes an advance. It unlocks e.mu itself so the view
// record can be fired outside the lock.
func (e *Engine) advanceTailLocked() {
	record := e.leaveLocked(true)
	e.dismissViewersLocked()

	story := &e.stories[e.cur.Story]
	switch {
	case e.cur.Item+1 < story.ItemCount():
		e.cur.Item++
		e.mountLocked()
	case e.cur.Story+1 < len(e.stories):
		e.cur.Story++
		e.cur.Item = 0
		e.mountLocked()
	default:
		e.exitLocked()
	}

	e.publishLocked()
	e.mu.Unlock()

	if record != nil {
		e.recordView(*record)
	}
}

// Retreat moves backward: previous item, then the previous story's last
// item. A retreat at the very first item is a no-op with the cursor (and
// progress clock) untouched.
func (e *Engine) Retreat() {
	e.mu.Lock()

	if e.exited {
		e.mu.Unlock()
		return
	}

	if e.cur.Item == 0 && e.cur.Story == 0 {
		e.mu.Unlock()
		return
	}

	record := e.leaveLocked(false)
	e.dismissViewersLocked()

	if e.cur.Item > 0 {
		e.cur.Item--
	} else {
		e.cur.Story--
		e.cur.Item = e.stories[e.cur.Story].ItemCount() - 1
	}

	e.mountLocked()
	e.publishLocked()
	e.mu.Unlock()

	if record != nil {
		e.recordView(*record)
	}
}

// Tap maps a tap at x within a container of the given width onto the
// navigation contract.
func (e *Engine) Tap(x, width float64) {
	switch player.TapZone(x, width) {
	case player.ZoneRetreat:
		e.Retreat()
	case player.ZoneAdvance:
		e.Advance()
	default:
		e.TogglePause()
	}
}

func (e *Engine) TogglePause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.exited {
		return
	}

	if e.paused {
		e.resumeLocked()
	} else {
		e.pauseLocked()
	}
	e.publishLocked()
}

func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.exited || e.paused {
		return
	}
	e.pauseLocked()
	e.publishLocked()
}

func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.exited || !e.paused {
		return
	}
	e.resumeLocked()
	e.publishLocked()
}

// mountLocked resets the progress clock for the new cursor position and arms
// a fresh timer.
func (e *Engine) mountLocked() {
	e.progress = 0
	e.elapsed = 0
	e.paused = false
	e.armLocked()
}

// exitLocked latches the terminal state and hands control back to the host
// exactly once.
func (e *Engine) exitLocked() {
	e.exited = true
	e.disarmLocked()

	if e.onExit != nil {
		exit := e.onExit
		e.onExit = nil
		go exit()
	}
}

// dismissViewersLocked drops the overlay when the cursor leaves the story it
// was opened for. The overlay must never sit open over a running timer, and
// its viewer list belongs to the story it was fetched for.
func (e *Engine) dismissViewersLocked() {
	e.showViewers = false
	e.viewers = nil
}

// leaveLocked records that the current position was displayed, once per
// distinct cursor position for the whole session regardless of pause/resume
// cycles or revisits.
func (e *Engine) leaveLocked(completed bool) *domain.ViewRecord {
	if e.viewed[e.cur] {
		return nil
	}
	e.viewed[e.cur] = true

	displayed := e.elapsed
	if !e.paused && !e.segmentStart.IsZero() {
		displayed += e.clock.Since(e.segmentStart)
	}

	return &domain.ViewRecord{
		StoryID:    e.stories[e.cur.Story].ID,
		ItemIndex:  e.cur.Item,
		DurationMS: displayed.Milliseconds(),
		Completed:  completed,
	}
}

// armLocked replaces the armed timer handle. The previous handle is always
// cancelled first, so exactly one tick loop is live per cursor position.
func (e *Engine) armLocked() {
	e.disarmLocked()

	if e.paused || e.exited {
		return
	}

	ctx, cancel := context.WithCancel(e.ctx)
	e.armCancel = cancel
	e.segmentStart = e.clock.Now()

	go e.run(ctx)
}

func (e *Engine) disarmLocked() {
	if e.armCancel != nil {
		e.armCancel()
		e.armCancel = nil
	}
}

func (e *Engine) pauseLocked() {
	e.paused = true
	e.elapsed += e.clock.Since(e.segmentStart)
	e.disarmLocked()
}

// resumeLocked re-arms the clock so the remaining display time equals
// (1 - progress/100) * budget.
func (e *Engine) resumeLocked() {
	e.paused = false
	e.armLocked()
}

// run is one tick loop for one cursor position.
func (e *Engine) run(ctx context.Context) {
	ticker := e.clock.NewTicker(e.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if e.onTick(ctx) {
				return
			}
		}
	}
}

// onTick recomputes progress against the per-item budget. Returns true when
// this loop is done, either because it was superseded or because the budget
// elapsed and playback advanced.
func (e *Engine) onTick(ctx context.Context) bool {
	e.mu.Lock()

	if ctx.Err() != nil || e.paused || e.exited {
		e.mu.Unlock()
		return true
	}

	total := e.elapsed + e.clock.Since(e.segmentStart)
	progress := float64(total) / float64(e.budget) * 100

	if progress >= 100 {
		e.progress = 100
		cur := e.cur
		e.mu.Unlock()
		e.advanceFrom(cur)
		return true
	}

	e.progress = progress
	e.publishLocked()
	e.mu.Unlock()
	return false
}
