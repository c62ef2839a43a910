package domain_test

import (
	"testing"

	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoryKind(t *testing.T) {
	text := domain.Story{TextContent: &domain.TextContent{Body: "hi"}}
	assert.Equal(t, domain.StoryKindText, text.Kind())

	legacy := domain.Story{MediaURL: "https://cdn.test/a.jpg"}
	assert.Equal(t, domain.StoryKindSingleMedia, legacy.Kind())

	single := domain.Story{MediaItems: []domain.MediaItem{{Kind: domain.MediaImage, URL: "https://cdn.test/a.jpg"}}}
	assert.Equal(t, domain.StoryKindSingleMedia, single.Kind())

	multi := domain.Story{MediaItems: []domain.MediaItem{
		{Kind: domain.MediaImage, URL: "https://cdn.test/a.jpg"},
		{Kind: domain.MediaVideo, URL: "https://cdn.test/b.mp4"},
	}}
	assert.Equal(t, domain.StoryKindMultiMedia, multi.Kind())
}

// Every story shape must resolve to at least one renderable item; the
// playback cursor depends on it.
func TestStoryItemNormalization(t *testing.T) {
	text := domain.Story{TextContent: &domain.TextContent{Body: "hi"}}
	require.Equal(t, 1, text.ItemCount())
	item := text.Item(0)
	require.NotNil(t, item.Text)
	assert.Equal(t, "hi", item.Text.Body)

	legacy := domain.Story{MediaURL: "https://cdn.test/a.jpg"}
	require.Equal(t, 1, legacy.ItemCount())
	item = legacy.Item(0)
	require.NotNil(t, item.Media)
	assert.Equal(t, "https://cdn.test/a.jpg", item.Media.URL)

	multi := domain.Story{MediaItems: []domain.MediaItem{
		{Kind: domain.MediaImage, URL: "https://cdn.test/a.jpg"},
		{Kind: domain.MediaVideo, URL: "https://cdn.test/b.mp4"},
	}}
	require.Equal(t, 2, multi.ItemCount())
	assert.True(t, multi.Item(1).IsVideo())
}

func TestStoryItemClampsOutOfRange(t *testing.T) {
	multi := domain.Story{MediaItems: []domain.MediaItem{
		{Kind: domain.MediaImage, URL: "first"},
		{Kind: domain.MediaImage, URL: "last"},
	}}

	assert.Equal(t, "first", multi.Item(-1).Media.URL)
	assert.Equal(t, "last", multi.Item(99).Media.URL)
}

// A story with none of the three content fields still renders as an empty
// text frame instead of panicking.
func TestBareStoryDoesNotPanic(t *testing.T) {
	bare := domain.Story{ID: "x"}
	require.Equal(t, 1, bare.ItemCount())
	item := bare.Item(0)
	assert.Nil(t, item.Media)
	assert.Nil(t, item.Text)
	assert.False(t, item.IsVideo())
}
