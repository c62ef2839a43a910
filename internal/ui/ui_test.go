package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/internal/player"
)

func snapshot() player.Snapshot {
	return player.Snapshot{
		Story: domain.Story{
			ID:        "s-1",
			Author:    domain.User{Username: "ava"},
			Caption:   "sunset",
			CreatedAt: time.Now().Add(-time.Hour),
			MediaURL:  "https://cdn/x.jpg",
			Stats:     domain.StoryStats{Likes: 12345, Comments: 7, Views: 900},
		},
		Item:       domain.PlayableItem{Media: &domain.MediaItem{Kind: domain.MediaImage, URL: "https://cdn/x.jpg"}},
		ItemCount:  1,
		StoryCount: 3,
		Progress:   50,
	}
}

func TestPlayerRendersStoryAndStats(t *testing.T) {
	out := NewPresenter().Player(snapshot())

	require.Contains(t, out, "@ava")
	require.Contains(t, out, "sunset")
	require.Contains(t, out, "https://cdn/x.jpg")
	require.Contains(t, out, "12.3K")
	require.Contains(t, out, "story 1/3")
	require.NotContains(t, out, "paused")
}

func TestPlayerShowsPauseMarker(t *testing.T) {
	s := snapshot()
	s.Paused = true

	require.Contains(t, NewPresenter().Player(s), "paused")
}

func TestExitedSnapshotRendersClosedState(t *testing.T) {
	s := snapshot()
	s.Exited = true

	require.Contains(t, NewPresenter().Player(s), "closed")
}

func TestStoryRailMarksSeenStories(t *testing.T) {
	stories := []domain.Story{
		{ID: "s-1", Author: domain.User{Username: "ava"}, TextContent: &domain.TextContent{Body: "hi"}},
		{ID: "s-2", Author: domain.User{Username: "ben"}, MediaURL: "https://cdn/y.jpg"},
	}

	out := NewPresenter().StoryRail(stories, map[string]bool{"s-1": true})
	require.Contains(t, out, "s-1")
	require.Contains(t, out, "s-2")
	require.Contains(t, out, "@ava")
	require.Contains(t, out, "text")
	require.Contains(t, out, "media")
}

func TestTextItemRendersBody(t *testing.T) {
	s := snapshot()
	s.Item = domain.PlayableItem{Text: &domain.TextContent{Body: "goal!", Color: "#ff0000"}}

	require.Contains(t, NewPresenter().Player(s), "goal!")
}
