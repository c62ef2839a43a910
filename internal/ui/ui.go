// Package ui renders client state as styled terminal output. Rendering is
// pure string building; the command loop decides when to print.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/player"
	"github.com/fanhubapp/fanhub-client/pkg/formatter"
)

const barWidth = 24

type Presenter struct {
	title   lipgloss.Style
	author  lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
	warning lipgloss.Style
	overlay lipgloss.Style
}

func NewPresenter() *Presenter {
	return &Presenter{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		author:  lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// Player renders one engine snapshot: segment bars, the current item and any
// open overlay.
func (p *Presenter) Player(s player.Snapshot) string {
	if s.Exited {
		return p.dim.Render("story viewer closed")
	}

	var b strings.Builder

	b.WriteString(p.segmentBars(s))
	b.WriteString("\n")

	header := fmt.Sprintf("@%s", s.Story.Author.Username)
	if !s.Story.CreatedAt.IsZero() {
		header += "  " + p.dim.Render(formatter.FormatRelativeTime(s.Story.CreatedAt, time.Now()))
	}
	if s.Paused {
		header += "  " + p.warning.Render("⏸ paused")
	}
	b.WriteString(p.author.Render(header))
	b.WriteString("\n\n")

	b.WriteString(p.item(s.Item))
	b.WriteString("\n")

	if s.Story.Caption != "" {
		b.WriteString(s.Story.Caption)
		b.WriteString("\n")
	}

	liked := "♡"
	if s.Story.HasLiked {
		liked = p.accent.Render("♥")
	}
	b.WriteString(p.dim.Render(fmt.Sprintf(
		"%s %s  💬 %s  👁 %s  [story %d/%d]",
		liked,
		formatter.FormatCount(s.Story.Stats.Likes),
		formatter.FormatCount(s.Story.Stats.Comments),
		formatter.FormatCount(s.Story.Stats.Views),
		s.Cursor.Story+1, s.StoryCount,
	)))
	b.WriteString("\n")

	if s.ShowViewers {
		b.WriteString(p.viewersOverlay(s.Viewers))
		b.WriteString("\n")
	}
	if s.ShowComments {
		b.WriteString(p.overlay.Render("comment> " + s.CommentDraft))
		b.WriteString("\n")
	}

	return b.String()
}

// segmentBars draws one bar per item: full for played, partial for the
// current one, empty for upcoming.
func (p *Presenter) segmentBars(s player.Snapshot) string {
	if s.ItemCount <= 0 {
		return ""
	}

	per := barWidth / s.ItemCount
	if per < 3 {
		per = 3
	}

	bars := make([]string, 0, s.ItemCount)
	for i := 0; i < s.ItemCount; i++ {
		switch {
		case i < s.Cursor.Item:
			bars = append(bars, strings.Repeat("█", per))
		case i == s.Cursor.Item:
			filled := int(s.Progress / 100 * float64(per))
			if filled > per {
				filled = per
			}
			bars = append(bars, strings.Repeat("█", filled)+strings.Repeat("░", per-filled))
		default:
			bars = append(bars, strings.Repeat("░", per))
		}
	}
	return p.accent.Render(strings.Join(bars, " "))
}

func (p *Presenter) item(item domain.PlayableItem) string {
	if item.Media != nil {
		kind := "🖼 image"
		if item.IsVideo() {
			kind = "🎬 video"
		}
		return fmt.Sprintf("%s  %s", kind, p.dim.Render(item.Media.URL))
	}
	if item.Text != nil {
		style := lipgloss.NewStyle().Bold(true).Padding(1, 2)
		if item.Text.Color != "" {
			style = style.Foreground(lipgloss.Color(item.Text.Color))
		}
		return style.Render(item.Text.Body)
	}
	return p.dim.Render("(empty)")
}

func (p *Presenter) viewersOverlay(viewers []domain.StoryViewer) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Viewers (%d)\n", len(viewers)))
	for _, v := range viewers {
		b.WriteString(fmt.Sprintf("  @%-16s %s\n", v.Username, formatter.FormatRelativeTime(v.ViewedAt, time.Now())))
	}
	if len(viewers) == 0 {
		b.WriteString("  no views yet\n")
	}
	return p.overlay.Render(strings.TrimRight(b.String(), "\n"))
}

// StoryRail renders the home-feed story rail: one entry per author, ordered
// as fetched.
func (p *Presenter) StoryRail(stories []domain.Story, seen map[string]bool) string {
	if len(stories) == 0 {
		return p.dim.Render("no active stories")
	}

	var b strings.Builder
	b.WriteString(p.title.Render("Stories"))
	b.WriteString("\n")
	for _, s := range stories {
		marker := p.accent.Render("●")
		if seen[s.ID] {
			marker = p.dim.Render("○")
		}
		b.WriteString(fmt.Sprintf("  %s %s  @%s  %s  %s\n",
			marker,
			s.ID,
			s.Author.Username,
			p.dim.Render(s.Kind().String()),
			p.dim.Render(formatter.FormatRemaining(s.ExpiresAt, time.Now())),
		))
	}
	return b.String()
}

func (p *Presenter) Feed(posts []domain.Post) string {
	if len(posts) == 0 {
		return p.dim.Render("the feed is empty")
	}

	var b strings.Builder
	for _, post := range posts {
		b.WriteString(p.author.Render("@"+post.Author.Username) + "  " +
			p.dim.Render(formatter.FormatRelativeTime(post.CreatedAt, time.Now())) + "\n")
		if post.Caption != "" {
			b.WriteString("  " + post.Caption + "\n")
		}
		for _, m := range post.MediaItems {
			b.WriteString("  " + p.dim.Render(string(m.Kind)+" "+m.URL) + "\n")
		}
		b.WriteString("  " + p.dim.Render(fmt.Sprintf("♡ %s  💬 %s  ↗ %s  [%s]",
			formatter.FormatCount(post.Likes),
			formatter.FormatCount(post.Comments),
			formatter.FormatCount(post.Shares),
			post.ID,
		)) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Presenter) Profile(profile domain.Profile) string {
	var b strings.Builder
	name := profile.User.DisplayName
	if name == "" {
		name = profile.User.Username
	}
	b.WriteString(p.title.Render(name) + "  " + p.dim.Render("@"+profile.User.Username))
	if profile.User.Role == domain.RoleAdmin {
		b.WriteString("  " + p.warning.Render("[admin]"))
	}
	b.WriteString("\n")
	if profile.Bio != "" {
		b.WriteString(profile.Bio + "\n")
	}
	b.WriteString(p.dim.Render(fmt.Sprintf("%s followers · %s following · %s points",
		formatter.FormatNumber(profile.Followers),
		formatter.FormatNumber(profile.Following),
		formatter.FormatNumber(profile.Points),
	)))
	return b.String()
}

func (p *Presenter) Notifications(items []domain.Notification) string {
	if len(items) == 0 {
		return p.dim.Render("no notifications")
	}

	var b strings.Builder
	for _, n := range items {
		marker := p.accent.Render("●")
		if n.Read {
			marker = p.dim.Render(" ")
		}
		b.WriteString(fmt.Sprintf("%s @%s %s  %s\n",
			marker, n.Actor.Username, n.Message,
			p.dim.Render(formatter.FormatRelativeTime(n.CreatedAt, time.Now()))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Presenter) Trending(tags []domain.TrendingTag) string {
	if len(tags) == 0 {
		return p.dim.Render("nothing is trending")
	}

	var b strings.Builder
	b.WriteString(p.title.Render("Trending") + "\n")
	for i, t := range tags {
		b.WriteString(fmt.Sprintf("  %2d. #%-20s %s\n", i+1, t.Tag, p.dim.Render(formatter.FormatCount(t.Count))))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (p *Presenter) Stats(stats domain.PlatformStats) string {
	return fmt.Sprintf("%s users · %s posts · %s stories · %s comments",
		formatter.FormatNumber(stats.Users),
		formatter.FormatNumber(stats.Posts),
		formatter.FormatNumber(stats.Stories),
		formatter.FormatNumber(stats.Comments),
	)
}

func (p *Presenter) Error(msg string) string {
	return p.warning.Render("✗ " + msg)
}

func (p *Presenter) Success(msg string) string {
	return p.accent.Render("✓ " + msg)
}

func (p *Presenter) Info(msg string) string {
	return p.dim.Render(msg)
}
