package api

import (
	"context"
	"io"

	"github.com/fanhubapp/fanhub-client/internal/domain"
)

// MediaUpload is one part of a multipart create payload.
type MediaUpload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock.go -package=mocks github.com/fanhubapp/fanhub-client/internal/api Auth,Stories,Notifications,Client

// Auth maps the auth resource. Token issuance itself is the backend's job;
// these calls only move credentials and session snapshots across the wire.
type Auth interface {
	Login(ctx context.Context, username, password string) (*domain.Session, error)
	Register(ctx context.Context, username, email, password string) (*domain.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, bio, displayName string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, avatar MediaUpload) (*domain.User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

type Stories interface {
	List(ctx context.Context) ([]domain.Story, error)
	Get(ctx context.Context, id string) (*domain.Story, error)
	Create(ctx context.Context, caption string, text *domain.TextContent, media []MediaUpload) (*domain.Story, error)
	RecordView(ctx context.Context, record domain.ViewRecord) error
	Like(ctx context.Context, id string) error
	Comment(ctx context.Context, id, body string) error
	Share(ctx context.Context, id string) error
	Viewers(ctx context.Context, id string) ([]domain.StoryViewer, error)
}

type Posts interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, caption string, media []MediaUpload) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
	Unlike(ctx context.Context, id string) error
	Comments(ctx context.Context, id string) ([]domain.Comment, error)
	Comment(ctx context.Context, id, body string) (*domain.Comment, error)
	Share(ctx context.Context, id string) error
}

type Profiles interface {
	Get(ctx context.Context, username string) (*domain.Profile, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Profile, error)
}

type Tournaments interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Tournament, error)
	Get(ctx context.Context, id string) (*domain.Tournament, error)
	Create(ctx context.Context, t domain.Tournament) (*domain.Tournament, error)
	Update(ctx context.Context, t domain.Tournament) (*domain.Tournament, error)
	Delete(ctx context.Context, id string) error
}

type Achievements interface {
	List(ctx context.Context) ([]domain.Achievement, error)
	Get(ctx context.Context, id string) (*domain.Achievement, error)
}

type Events interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Event, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
}

type Notifications interface {
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type Points interface {
	Summary(ctx context.Context) (*domain.PointsSummary, error)
}

type Trending interface {
	Tags(ctx context.Context) ([]domain.TrendingTag, error)
}

type Stats interface {
	Platform(ctx context.Context) (*domain.PlatformStats, error)
}

type Contact interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

// Client bundles every service module so call sites can take the one they
// need through a single injection point.
type Client interface {
	Auth() Auth
	Stories() Stories
	Posts() Posts
	Profiles() Profiles
	Tournaments() Tournaments
	Achievements() Achievements
	Events() Events
	Notifications() Notifications
	Points() Points
	Trending() Trending
	Stats() Stats
	Contact() Contact
}
