package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Role        Role   `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Session pairs the authenticated user with their bearer token. Expiry comes
// from the token's registered claims when present.
type Session struct {
	User      User
	Token     string
	ExpiresAt time.Time
}

// Expired reports whether the session's token expiry has passed. Sessions
// without a known expiry never self-expire; the backend decides with a 401.
func (s *Session) Expired(now time.Time) bool {
	return s != nil && !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type Profile struct {
	User      User      `json:"user"`
	Bio       string    `json:"bio"`
	Followers int       `json:"followers"`
	Following int       `json:"following"`
	Points    int       `json:"points"`
	JoinedAt  time.Time `json:"joinedAt"`
}
