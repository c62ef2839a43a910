package domain

import "time"

type Tournament struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	StartsAt     time.Time `json:"startsAt"`
	EndsAt       time.Time `json:"endsAt"`
	Participants int       `json:"participants"`
	Status       string    `json:"status"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BadgeURL    string    `json:"badgeUrl"`
	Points      int       `json:"points"`
	EarnedAt    time.Time `json:"earnedAt,omitempty"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"startsAt"`
	Location    string    `json:"location"`
}

type PointsSummary struct {
	Total  int `json:"total"`
	Rank   int `json:"rank"`
	Badges int `json:"badges"`
}

type TrendingTag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type PlatformStats struct {
	Users    int `json:"users"`
	Posts    int `json:"posts"`
	Stories  int `json:"stories"`
	Comments int `json:"comments"`
}

type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Actor     User      `json:"actor"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessage is the contact-form payload.
type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required,min=10"`
}
