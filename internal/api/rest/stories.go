package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type StoriesService struct {
	client *Client
}

var _ api.Stories = (*StoriesService)(nil)

func (s *StoriesService) List(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	if err := s.client.do(ctx, http.MethodGet, "/stories", nil, nil, &stories); err != nil {
		return nil, err
	}
	return stories, nil
}

func (s *StoriesService) Get(ctx context.Context, id string) (*domain.Story, error) {
	var story domain.Story
	if err := s.client.do(ctx, http.MethodGet, "/stories/"+id, nil, nil, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

func (s *StoriesService) Create(ctx context.Context, caption string, text *domain.TextContent, media []api.MediaUpload) (*domain.Story, error) {
	fields := map[string]string{"caption": caption}

	if text != nil {
		encoded, err := json.Marshal(text)
		if err != nil {
			return nil, fmt.Errorf("failed to encode text content: %w", err)
		}
		fields["textContent"] = string(encoded)
	}

	var story domain.Story
	if err := s.client.doMultipart(ctx, http.MethodPost, "/stories", fields, media, &story); err != nil {
		return nil, err
	}
	return &story, nil
}

// RecordView is best effort at the call site; the service itself still
// reports failures so the engine can log them.
func (s *StoriesService) RecordView(ctx context.Context, record domain.ViewRecord) error {
	return s.client.do(ctx, http.MethodPost, "/stories/"+record.StoryID+"/view", nil, record, nil)
}

func (s *StoriesService) Like(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPost, "/stories/"+id+"/like", nil, nil, nil)
}

func (s *StoriesService) Comment(ctx context.Context, id, body string) error {
	payload := map[string]string{"body": body}
	return s.client.do(ctx, http.MethodPost, "/stories/"+id+"/comment", nil, payload, nil)
}

func (s *StoriesService) Share(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPost, "/stories/"+id+"/share", nil, nil, nil)
}

// Viewers is admin only; non-admin callers get ErrForbidden from the backend
// and the capability gate keeps them from calling it in the first place.
func (s *StoriesService) Viewers(ctx context.Context, id string) ([]domain.StoryViewer, error) {
	var viewers []domain.StoryViewer
	if err := s.client.do(ctx, http.MethodGet, "/stories/"+id+"/viewers", nil, nil, &viewers); err != nil {
		return nil, err
	}
	return viewers, nil
}
