package domain

import "time"

// StoryKind discriminates the three story shapes the backend can hand us.
// Legacy stories carry a single MediaURL, newer ones carry an ordered
// MediaItems list, text stories carry TextContent only.
type StoryKind int

const (
	StoryKindText StoryKind = iota
	StoryKindSingleMedia
	StoryKindMultiMedia
)

func (k StoryKind) String() string {
	switch k {
	case StoryKindText:
		return "text"
	case StoryKindSingleMedia:
		return "media"
	case StoryKindMultiMedia:
		return "media-multi"
	default:
		return "unknown"
	}
}

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

type MediaItem struct {
	Kind MediaKind `json:"type"`
	URL  string    `json:"url"`
}

// TextContent is the body of a text-only story.
type TextContent struct {
	Body       string `json:"text"`
	FontSize   int    `json:"fontSize"`
	FontFamily string `json:"fontFamily"`
	Color      string `json:"color"`
	Alignment  string `json:"alignment"`
	Background string `json:"background"`
}

// Sticker is an emoji overlay positioned in percent of the story canvas.
type Sticker struct {
	Emoji    string  `json:"emoji"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     int     `json:"size"`
	Rotation float64 `json:"rotation"`
}

type StoryStats struct {
	Views    int `json:"views"`
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
}

// Story is an ephemeral content unit. Expiry is enforced server-side; any
// story returned by the listing endpoint is assumed live.
type Story struct {
	ID          string       `json:"id"`
	Author      User         `json:"author"`
	CreatedAt   time.Time    `json:"createdAt"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	Caption     string       `json:"caption,omitempty"`
	TextContent *TextContent `json:"textContent,omitempty"`
	MediaItems  []MediaItem  `json:"mediaItems,omitempty"`
	MediaURL    string       `json:"mediaUrl,omitempty"`
	Stickers    []Sticker    `json:"stickers,omitempty"`
	Stats       StoryStats   `json:"stats"`
	HasLiked    bool         `json:"hasLiked"`
}

// Kind classifies the story shape. MediaItems wins over the legacy MediaURL
// when a story somehow carries both.
func (s *Story) Kind() StoryKind {
	switch {
	case len(s.MediaItems) > 1:
		return StoryKindMultiMedia
	case len(s.MediaItems) == 1 || s.MediaURL != "":
		return StoryKindSingleMedia
	default:
		return StoryKindText
	}
}

// ItemCount is the number of playable items. Every story shape yields at
// least one so the playback cursor always resolves.
func (s *Story) ItemCount() int {
	if n := len(s.MediaItems); n > 0 {
		return n
	}
	return 1
}

// Item returns the playable item at index i, normalized across the three
// story shapes. Out-of-range indexes clamp to the valid range.
func (s *Story) Item(i int) PlayableItem {
	if n := len(s.MediaItems); n > 0 {
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
		return PlayableItem{Media: &s.MediaItems[i]}
	}

	if s.MediaURL != "" {
		return PlayableItem{Media: &MediaItem{Kind: MediaImage, URL: s.MediaURL}}
	}

	return PlayableItem{Text: s.TextContent}
}

// PlayableItem is what the renderer actually displays: exactly one of Media
// or Text is set. A text story with no TextContent renders as an empty text
// frame rather than panicking.
type PlayableItem struct {
	Media *MediaItem
	Text  *TextContent
}

func (p PlayableItem) IsVideo() bool {
	return p.Media != nil && p.Media.Kind == MediaVideo
}

// StoryViewer is one row of the admin-only viewer analytics overlay.
type StoryViewer struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl"`
	ViewedAt  time.Time `json:"viewedAt"`
}

// ViewRecord is the fire-and-forget event sent once per story display.
type ViewRecord struct {
	StoryID    string `json:"storyId"`
	ItemIndex  int    `json:"itemIndex"`
	DurationMS int64  `json:"durationMs"`
	Completed  bool   `json:"completed"`
	RequestID  string `json:"requestId"`
}
