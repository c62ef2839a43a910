package playerimpl

import (
	"context"
	"strings"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/google/uuid"
)

// recordView fires the remote view record and the local history entry.
// Both are best effort with their own deadline, detached from the engine
// context so an unmount lets them resolve harmlessly. Failures are logged
// and never reverse or block navigation.
func (e *Engine) recordView(record domain.ViewRecord) {
	record.RequestID = uuid.NewString()

	author := ""
	e.mu.Lock()
	for i := range e.stories {
		if e.stories[i].ID == record.StoryID {
			author = e.stories[i].Author.Username
			break
		}
	}
	e.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := e.stores.RecordView(ctx, record); err != nil {
			e.logger.Warn("Failed to record story view", "story_id", record.StoryID, "error", err)
		}

		entry := viewhistory.Entry{
			StoryID:   record.StoryID,
			ItemIndex: record.ItemIndex,
			Author:    author,
			Completed: record.Completed,
		}
		if err := e.history.Record(ctx, entry); err != nil {
			e.logger.Warn("Failed to record local view history", "story_id", record.StoryID, "error", err)
		}
	}()
}

// Like optimistically bumps the local count before the call resolves. The
// failure policy is accept-eventual-inconsistency: a failed call is logged
// and the optimistic state stands until the next fetch reconciles it.
func (e *Engine) Like(ctx context.Context) {
	if !e.limiter.Allow() {
		return
	}

	e.mu.Lock()
	if e.exited {
		e.mu.Unlock()
		return
	}

	story := &e.stories[e.cur.Story]
	if story.HasLiked {
		e.mu.Unlock()
		return
	}
	story.HasLiked = true
	story.Stats.Likes++
	id := story.ID
	e.publishLocked()
	e.mu.Unlock()

	go func() {
		callCtx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := e.stores.Like(callCtx, id); err != nil {
			e.logger.Warn("Failed to like story", "story_id", id, "error", err)
		}
	}()
}

// Comment posts the draft. On success the draft clears and the overlay
// closes; the viewer keeps no comment thread, so nothing is appended
// locally. The error is returned for the host's log only, never surfaced as
// anything disruptive to playback.
func (e *Engine) Comment(ctx context.Context, body string) error {
	body = strings.TrimSpace(body)
	if body == "" || !e.limiter.Allow() {
		return nil
	}

	e.mu.Lock()
	if e.exited {
		e.mu.Unlock()
		return nil
	}
	id := e.stories[e.cur.Story].ID
	e.commentDraft = body
	e.mu.Unlock()

	callCtx, cancel := context.WithTimeout(ctx, sideEffectTimeout)
	defer cancel()

	if err := e.stores.Comment(callCtx, id, body); err != nil {
		e.logger.Warn("Failed to post story comment", "story_id", id, "error", err)
		return err
	}

	e.mu.Lock()
	e.commentDraft = ""
	e.showComments = false
	e.stories[e.cur.Story].Stats.Comments++
	e.publishLocked()
	e.mu.Unlock()

	return nil
}

// Share is notify-only; no local state changes besides the confirmation the
// host prints.
func (e *Engine) Share(ctx context.Context) {
	if !e.limiter.Allow() {
		return
	}

	e.mu.Lock()
	if e.exited {
		e.mu.Unlock()
		return
	}
	id := e.stories[e.cur.Story].ID
	e.mu.Unlock()

	go func() {
		callCtx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		defer cancel()

		if err := e.stores.Share(callCtx, id); err != nil {
			e.logger.Warn("Failed to share story", "story_id", id, "error", err)
		}
	}()
}

func (e *Engine) OpenComments() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.exited {
		return
	}
	e.showComments = true
	e.publishLocked()
}

func (e *Engine) CloseComments() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.showComments = false
	e.commentDraft = ""
	e.publishLocked()
}
