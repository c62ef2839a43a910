package rest

import (
	"context"
	"net/http"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type ProfilesService struct {
	client *Client
}

var _ api.Profiles = (*ProfilesService)(nil)

func (p *ProfilesService) Get(ctx context.Context, username string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := p.client.do(ctx, http.MethodGet, "/profiles/"+username, nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (p *ProfilesService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Profile, error) {
	var profiles []domain.Profile
	if err := p.client.do(ctx, http.MethodGet, "/profiles", listQuery(filter), nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

type TournamentsService struct {
	client *Client
}

var _ api.Tournaments = (*TournamentsService)(nil)

func (t *TournamentsService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Tournament, error) {
	var tournaments []domain.Tournament
	if err := t.client.do(ctx, http.MethodGet, "/tournaments", listQuery(filter), nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (t *TournamentsService) Get(ctx context.Context, id string) (*domain.Tournament, error) {
	var tournament domain.Tournament
	if err := t.client.do(ctx, http.MethodGet, "/tournaments/"+id, nil, nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (t *TournamentsService) Create(ctx context.Context, in domain.Tournament) (*domain.Tournament, error) {
	var tournament domain.Tournament
	if err := t.client.do(ctx, http.MethodPost, "/tournaments", nil, in, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (t *TournamentsService) Update(ctx context.Context, in domain.Tournament) (*domain.Tournament, error) {
	var tournament domain.Tournament
	if err := t.client.do(ctx, http.MethodPut, "/tournaments/"+in.ID, nil, in, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (t *TournamentsService) Delete(ctx context.Context, id string) error {
	return t.client.do(ctx, http.MethodDelete, "/tournaments/"+id, nil, nil, nil)
}

type AchievementsService struct {
	client *Client
}

var _ api.Achievements = (*AchievementsService)(nil)

func (a *AchievementsService) List(ctx context.Context) ([]domain.Achievement, error) {
	var achievements []domain.Achievement
	if err := a.client.do(ctx, http.MethodGet, "/achievements", nil, nil, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}

func (a *AchievementsService) Get(ctx context.Context, id string) (*domain.Achievement, error) {
	var achievement domain.Achievement
	if err := a.client.do(ctx, http.MethodGet, "/achievements/"+id, nil, nil, &achievement); err != nil {
		return nil, err
	}
	return &achievement, nil
}

type EventsService struct {
	client *Client
}

var _ api.Events = (*EventsService)(nil)

func (e *EventsService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Event, error) {
	var events []domain.Event
	if err := e.client.do(ctx, http.MethodGet, "/events", listQuery(filter), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *EventsService) Get(ctx context.Context, id string) (*domain.Event, error) {
	var event domain.Event
	if err := e.client.do(ctx, http.MethodGet, "/events/"+id, nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

type PointsService struct {
	client *Client
}

var _ api.Points = (*PointsService)(nil)

func (p *PointsService) Summary(ctx context.Context) (*domain.PointsSummary, error) {
	var summary domain.PointsSummary
	if err := p.client.do(ctx, http.MethodGet, "/points", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

type TrendingService struct {
	client *Client
}

var _ api.Trending = (*TrendingService)(nil)

func (t *TrendingService) Tags(ctx context.Context) ([]domain.TrendingTag, error) {
	var tags []domain.TrendingTag
	if err := t.client.do(ctx, http.MethodGet, "/trending", nil, nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

type StatsService struct {
	client *Client
}

var _ api.Stats = (*StatsService)(nil)

func (s *StatsService) Platform(ctx context.Context) (*domain.PlatformStats, error) {
	var stats domain.PlatformStats
	if err := s.client.do(ctx, http.MethodGet, "/platform-stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type ContactService struct {
	client *Client
}

var _ api.Contact = (*ContactService)(nil)

func (c *ContactService) Send(ctx context.Context, msg domain.ContactMessage) error {
	return c.client.do(ctx, http.MethodPost, "/contact", nil, msg, nil)
}
