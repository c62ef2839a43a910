package domain

import "time"

type Post struct {
	ID         string      `json:"id"`
	Author     User        `json:"author"`
	Caption    string      `json:"caption"`
	MediaItems []MediaItem `json:"mediaItems,omitempty"`
	Likes      int         `json:"likes"`
	Comments   int         `json:"comments"`
	Shares     int         `json:"shares"`
	HasLiked   bool        `json:"hasLiked"`
	CreatedAt  time.Time   `json:"createdAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	Author    User      `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListFilter is the common pagination/filter shape for list endpoints.
type ListFilter struct {
	Page     int
	PerPage  int
	Username string
	Tag      string
}
