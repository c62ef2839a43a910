package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	apperrors "github.com/fanhubapp/fanhub-client/pkg/errors"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// TokenSource yields the current bearer token, or "" when no session exists.
// The session store implements it; the client never mutates session state
// itself, even on a 401.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  logger.Logger

	auth          *AuthService
	stories       *StoriesService
	posts         *PostsService
	profiles      *ProfilesService
	tournaments   *TournamentsService
	achievements  *AchievementsService
	events        *EventsService
	notifications *NotificationsService
	points        *PointsService
	trending      *TrendingService
	stats         *StatsService
	contact       *ContactService
}

type Opts struct {
	fx.In

	Config *config.Config
	Tokens TokenSource
	Logger logger.Logger
}

func New(opts Opts) *Client {
	c := &Client{
		baseURL: strings.TrimRight(opts.Config.API.BaseURL, "/"),
		http: &http.Client{
			Timeout: time.Duration(opts.Config.API.TimeoutMS) * time.Millisecond,
		},
		tokens: opts.Tokens,
		logger: opts.Logger,
	}

	c.auth = &AuthService{c}
	c.stories = &StoriesService{c}
	c.posts = &PostsService{c}
	c.profiles = &ProfilesService{c}
	c.tournaments = &TournamentsService{c}
	c.achievements = &AchievementsService{c}
	c.events = &EventsService{c}
	c.notifications = &NotificationsService{c}
	c.points = &PointsService{c}
	c.trending = &TrendingService{c}
	c.stats = &StatsService{c}
	c.contact = &ContactService{c}

	return c
}

var _ api.Client = (*Client)(nil)

func (c *Client) Auth() api.Auth                   { return c.auth }
func (c *Client) Stories() api.Stories             { return c.stories }
func (c *Client) Posts() api.Posts                 { return c.posts }
func (c *Client) Profiles() api.Profiles           { return c.profiles }
func (c *Client) Tournaments() api.Tournaments     { return c.tournaments }
func (c *Client) Achievements() api.Achievements   { return c.achievements }
func (c *Client) Events() api.Events               { return c.events }
func (c *Client) Notifications() api.Notifications { return c.notifications }
func (c *Client) Points() api.Points               { return c.points }
func (c *Client) Trending() api.Trending           { return c.trending }
func (c *Client) Stats() api.Stats                 { return c.stats }
func (c *Client) Contact() api.Contact             { return c.contact }

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// do executes one JSON request. A non-2xx status is mapped to the error
// taxonomy and returned as-is; callers decide the user-visible treatment.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doMultipart executes a multipart/form-data request for create payloads that
// carry media files next to regular fields.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, media []api.MediaUpload, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	for _, m := range media {
		part, err := w.CreateFormFile("media", m.FileName)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, m.Reader); err != nil {
			return fmt.Errorf("failed to copy media %s: %w", m.FileName, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", req.Method, req.URL.Path, err)
	}

	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	var envelope errorEnvelope
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperrors.Wrap(apperrors.ErrUnauthorized, message)
	case http.StatusForbidden:
		return apperrors.Wrap(apperrors.ErrForbidden, message)
	case http.StatusNotFound:
		return apperrors.Wrap(apperrors.ErrNotFound, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.Wrap(apperrors.ErrBadRequest, message)
	case http.StatusServiceUnavailable, http.StatusBadGateway:
		return apperrors.Wrap(apperrors.ErrServiceUnavailable, message)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, message)
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
