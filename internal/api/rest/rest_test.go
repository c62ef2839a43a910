package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
	"github.com/fanhubapp/fanhub-client/pkg/config"
	apperrors "github.com/fanhubapp/fanhub-client/pkg/errors"
	"github.com/fanhubapp/fanhub-client/pkg/logger"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.TimeoutMS = 5000

	return New(Opts{
		Config: cfg,
		Tokens: staticTokens(token),
		Logger: logger.New(logger.Opts{}),
	})
}

func TestRequestCarriesBearerAndRequestID(t *testing.T) {
	client := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-ID"))
		require.Equal(t, "/stories", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]domain.Story{{ID: "s-1"}})
	})

	stories, err := client.Stories().List(context.Background())
	require.NoError(t, err)
	require.Len(t, stories, 1)
	require.Equal(t, "s-1", stories[0].ID)
}

func TestSignedOutRequestOmitsAuthorization(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]domain.Story{})
	})

	_, err := client.Stories().List(context.Background())
	require.NoError(t, err)
}

func TestStatusCodeMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, apperrors.ErrUnauthorized},
		{http.StatusForbidden, apperrors.ErrForbidden},
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusBadRequest, apperrors.ErrBadRequest},
		{http.StatusUnprocessableEntity, apperrors.ErrBadRequest},
		{http.StatusBadGateway, apperrors.ErrServiceUnavailable},
		{http.StatusServiceUnavailable, apperrors.ErrServiceUnavailable},
		{http.StatusInternalServerError, apperrors.ErrInternalServer},
		{http.StatusTeapot, apperrors.ErrInternalServer},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d", tc.status), func(t *testing.T) {
			client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := client.Stories().Get(context.Background(), "s-1")
			require.Error(t, err)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestErrorEnvelopeMessageSurfaces(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "story not found"})
	})

	_, err := client.Stories().Get(context.Background(), "gone")
	require.Error(t, err)
	require.Contains(t, err.Error(), "story not found")
}

func TestLoginDecodesSessionPayload(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ava", body["username"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "fresh-token",
			"user":  domain.User{ID: "u-1", Username: "ava", Role: domain.RoleAdmin},
		})
	})

	sess, err := client.Auth().Login(context.Background(), "ava", "secret123")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", sess.Token)
	require.True(t, sess.User.IsAdmin())
}

func TestListFilterBecomesQueryParams(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "10", q.Get("perPage"))
		require.Equal(t, "ben", q.Get("username"))
		_ = json.NewEncoder(w).Encode([]domain.Post{})
	})

	_, err := client.Posts().List(context.Background(), domain.ListFilter{Page: 2, PerPage: 10, Username: "ben"})
	require.NoError(t, err)
}

func TestCreateStoryUploadsMultipart(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "hello", r.FormValue("caption"))

		file, header, err := r.FormFile("media")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "pic.jpg", header.Filename)

		_ = json.NewEncoder(w).Encode(domain.Story{ID: "s-new"})
	})

	story, err := client.Stories().Create(context.Background(), "hello", nil, []api.MediaUpload{{
		FileName:    "pic.jpg",
		ContentType: "image/jpeg",
		Reader:      strings.NewReader("raw-bytes"),
	}})
	require.NoError(t, err)
	require.Equal(t, "s-new", story.ID)
}

func TestViewRecordPostsToViewPath(t *testing.T) {
	client := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stories/s-1/view", r.URL.Path)

		var record domain.ViewRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&record))
		require.Equal(t, "s-1", record.StoryID)
		require.True(t, record.Completed)
		require.NotEmpty(t, record.RequestID)

		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Stories().RecordView(context.Background(), domain.ViewRecord{
		StoryID:   "s-1",
		Completed: true,
		RequestID: "req-1",
	})
	require.NoError(t, err)
}
