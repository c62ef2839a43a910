package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/fanhubapp/fanhub-client/internal/router"
)

// handleStoryRail prints the active story collection with local seen markers.
func (c *CommandImpl) handleStoryRail(ctx context.Context) error {
	stories, err := c.API.Stories().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stories: %w", err)
	}

	seen, err := c.History.SeenStoryIDs(ctx)
	if err != nil {
		c.Logger.Warn("Failed to load local view history", "error", err)
		seen = map[string]bool{}
	}

	c.printf("%s\n", c.Presenter.StoryRail(stories, seen))
	return nil
}

// handleOpenStory starts a playback session. Only one viewer is open at a
// time; opening a new one closes the previous.
func (c *CommandImpl) handleOpenStory(ctx context.Context, target router.Match) error {
	c.closeEngine()

	engine, err := c.Player.Open(ctx, target.Params["id"], func() {
		c.printf("%s\n", c.Presenter.Info("reached the end of the stories"))
		c.setEngine(nil)
	})
	if err != nil {
		if errors.Is(err, player.ErrNoStories) {
			c.printf("%s\n", c.Presenter.Info("no stories right now, check back later"))
			return nil
		}
		return fmt.Errorf("failed to open story viewer: %w", err)
	}

	c.setEngine(engine)

	go c.renderLoop(engine)

	return nil
}

// renderLoop prints snapshots as they arrive and keeps the displayed
// story's media warm. Progress-only updates are coalesced to decile steps so
// the terminal isn't redrawn on every timer tick.
func (c *CommandImpl) renderLoop(engine player.Engine) {
	var last *player.Snapshot
	for snapshot := range engine.Events() {
		if shouldRender(last, snapshot) {
			c.printf("%s\n", c.Presenter.Player(snapshot))
			s := snapshot
			last = &s
		}
		c.Prefetch.WarmStory(snapshot.Story)
	}
}

func shouldRender(last *player.Snapshot, next player.Snapshot) bool {
	if last == nil {
		return true
	}
	if last.Cursor != next.Cursor ||
		last.Paused != next.Paused ||
		last.Exited != next.Exited ||
		last.ShowViewers != next.ShowViewers ||
		last.ShowComments != next.ShowComments ||
		last.CommentDraft != next.CommentDraft ||
		last.Story.HasLiked != next.Story.HasLiked {
		return true
	}
	return int(next.Progress/10) != int(last.Progress/10)
}

// dispatchPlayback routes viewer commands to the open engine. Returns
// handled=false for commands that are not playback commands so the page
// dispatcher gets a chance.
func (c *CommandImpl) dispatchPlayback(ctx context.Context, name string, args []string) (bool, error) {
	engine := c.currentEngine()
	if engine == nil {
		return false, nil
	}

	switch name {
	case "next":
		engine.Advance()
	case "prev":
		engine.Retreat()
	case "pause":
		engine.TogglePause()
	case "tap":
		if len(args) != 2 {
			return true, fmt.Errorf("usage: tap <x> <width>")
		}
		x, errX := strconv.ParseFloat(args[0], 64)
		w, errW := strconv.ParseFloat(args[1], 64)
		if errX != nil || errW != nil {
			return true, fmt.Errorf("tap wants numbers: tap <x> <width>")
		}
		engine.Tap(x, w)
	case "like":
		if !c.limiter.Allow("like") {
			return true, fmt.Errorf("slow down")
		}
		engine.Like(ctx)
	case "share":
		if !c.limiter.Allow("share") {
			return true, fmt.Errorf("slow down")
		}
		engine.Share(ctx)
	case "comment":
		if len(args) == 0 {
			engine.OpenComments()
			return true, nil
		}
		if !c.limiter.Allow("comment") {
			return true, fmt.Errorf("slow down")
		}
		if err := c.sendComment(ctx, engine, joinArgs(args)); err != nil {
			return true, err
		}
	case "comments":
		snap := engine.Snapshot()
		if snap.ShowComments {
			engine.CloseComments()
		} else {
			engine.OpenComments()
		}
	case "viewers":
		snap := engine.Snapshot()
		if snap.ShowViewers {
			engine.CloseViewers()
			return true, nil
		}
		if err := engine.OpenViewers(ctx); err != nil {
			if errors.Is(err, player.ErrNotAllowed) {
				return true, fmt.Errorf("viewer analytics is available to admins only")
			}
			return true, fmt.Errorf("failed to load viewers: %w", err)
		}
	case "back":
		c.closeEngine()
		c.printf("%s\n", c.Presenter.Info("story viewer closed"))
	default:
		return false, nil
	}

	return true, nil
}

func (c *CommandImpl) sendComment(ctx context.Context, engine player.Engine, body string) error {
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := engine.Comment(reqCtx, body); err != nil {
		return fmt.Errorf("comment failed: %w", err)
	}
	return nil
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
