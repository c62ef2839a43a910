package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/repositories/viewhistory"
	"github.com/fanhubapp/fanhub-client/internal/router"
	"github.com/fanhubapp/fanhub-client/pkg/formatter"
)

const feedPageSize = 10

func (c *CommandImpl) handleFeed(ctx context.Context, args []string) error {
	page := 1
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 1 {
			return fmt.Errorf("usage: feed [page]")
		}
		page = parsed
	}

	posts, err := c.API.Posts().List(ctx, domain.ListFilter{Page: page, PerPage: feedPageSize})
	if err != nil {
		return fmt.Errorf("failed to load the feed: %w", err)
	}

	c.printf("%s\n", c.Presenter.Feed(posts))
	return nil
}

func (c *CommandImpl) handleProfile(ctx context.Context, target router.Match) error {
	username := target.Params["username"]
	if username == "" {
		current := c.Session.Current()
		if current == nil {
			return fmt.Errorf("not signed in")
		}
		username = current.User.Username
	}

	profile, err := c.API.Profiles().Get(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to load profile @%s: %w", username, err)
	}

	c.printf("%s\n", c.Presenter.Profile(*profile))
	return nil
}

func (c *CommandImpl) handleNotifications(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "read" {
		if err := c.API.Notifications().MarkAllRead(ctx); err != nil {
			return fmt.Errorf("failed to mark notifications read: %w", err)
		}
		c.printf("%s\n", c.Presenter.Success("all notifications marked read"))
		return nil
	}

	items, err := c.API.Notifications().List(ctx, domain.ListFilter{Page: 1, PerPage: 20})
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}

	c.printf("%s\n", c.Presenter.Notifications(items))
	c.printf("%s\n", c.Presenter.Info(fmt.Sprintf("%d unread", c.Notifications.Unread())))
	return nil
}

func (c *CommandImpl) handleTrending(ctx context.Context, _ router.Match) error {
	tags, err := c.API.Trending().Tags(ctx)
	if err != nil {
		return fmt.Errorf("failed to load trending tags: %w", err)
	}

	c.printf("%s\n", c.Presenter.Trending(tags))
	return nil
}

func (c *CommandImpl) handleTournaments(ctx context.Context, _ router.Match) error {
	tournaments, err := c.API.Tournaments().List(ctx, domain.ListFilter{Page: 1, PerPage: 20})
	if err != nil {
		return fmt.Errorf("failed to load tournaments: %w", err)
	}

	if len(tournaments) == 0 {
		c.printf("%s\n", c.Presenter.Info("no tournaments scheduled"))
		return nil
	}
	for _, t := range tournaments {
		c.printf("  %s  %s [%s] %s participants\n",
			t.ID, t.Title, t.Status, formatter.FormatNumber(t.Participants))
	}
	return nil
}

func (c *CommandImpl) handleAchievements(ctx context.Context, _ router.Match) error {
	achievements, err := c.API.Achievements().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load achievements: %w", err)
	}

	if len(achievements) == 0 {
		c.printf("%s\n", c.Presenter.Info("no achievements yet"))
		return nil
	}
	for _, a := range achievements {
		earned := "locked"
		if !a.EarnedAt.IsZero() {
			earned = "earned " + formatter.FormatRelativeTime(a.EarnedAt, time.Now())
		}
		c.printf("  %s  %s (+%d) %s\n", a.ID, a.Title, a.Points, earned)
	}
	return nil
}

func (c *CommandImpl) handleEvents(ctx context.Context, _ router.Match) error {
	events, err := c.API.Events().List(ctx, domain.ListFilter{Page: 1, PerPage: 20})
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	if len(events) == 0 {
		c.printf("%s\n", c.Presenter.Info("no upcoming events"))
		return nil
	}
	for _, e := range events {
		c.printf("  %s  %s @ %s (%s)\n", e.ID, e.Title, e.Location, e.StartsAt.Format("Jan 2 15:04"))
	}
	return nil
}

func (c *CommandImpl) handlePoints(ctx context.Context, _ router.Match) error {
	summary, err := c.API.Points().Summary(ctx)
	if err != nil {
		return fmt.Errorf("failed to load points: %w", err)
	}

	c.printf("%s points · rank #%d · %d badges\n",
		formatter.FormatNumber(summary.Total), summary.Rank, summary.Badges)
	return nil
}

func (c *CommandImpl) handleStats(ctx context.Context, _ router.Match) error {
	stats, err := c.API.Stats().Platform(ctx)
	if err != nil {
		return fmt.Errorf("failed to load platform stats: %w", err)
	}

	c.printf("%s\n", c.Presenter.Stats(*stats))
	return nil
}

// handleHistory is the offline audit view over the local view store: every
// recorded display of one story, newest first, straight from Postgres with
// no network involved.
func (c *CommandImpl) handleHistory(ctx context.Context, target router.Match) error {
	id := target.Params["id"]

	entries, err := c.History.ListByStory(ctx, id)
	if err != nil {
		if errors.Is(err, viewhistory.ErrNotFound) {
			c.printf("%s\n", c.Presenter.Info("no local views recorded for "+id))
			return nil
		}
		return fmt.Errorf("failed to load view history: %w", err)
	}

	c.printf("%s\n", c.Presenter.Info(fmt.Sprintf("%d local views of %s", len(entries), id)))
	for _, entry := range entries {
		state := "interrupted"
		if entry.Completed {
			state = "completed"
		}
		c.printf("  item %d by @%s  %s, %s\n",
			entry.ItemIndex, entry.Author, state, formatter.FormatRelativeTime(entry.ViewedAt, time.Now()))
	}
	return nil
}

func (c *CommandImpl) handleContact(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: contact <email> <subject> <body...>")
	}

	current := c.Session.Current()
	name := "anonymous"
	if current != nil {
		name = current.User.Username
	}

	msg := domain.ContactMessage{
		Name:    name,
		Email:   args[0],
		Subject: args[1],
		Body:    joinArgs(args[2:]),
	}
	if err := c.validate.Struct(msg); err != nil {
		return fmt.Errorf("invalid contact message: %w", err)
	}

	if err := c.API.Contact().Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	c.printf("%s\n", c.Presenter.Success("message sent, we'll get back to you"))
	return nil
}
