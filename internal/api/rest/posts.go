package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type PostsService struct {
	client *Client
}

var _ api.Posts = (*PostsService)(nil)

func listQuery(filter domain.ListFilter) url.Values {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(filter.PerPage))
	}
	if filter.Username != "" {
		query.Set("username", filter.Username)
	}
	if filter.Tag != "" {
		query.Set("tag", filter.Tag)
	}
	return query
}

func (p *PostsService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Post, error) {
	var posts []domain.Post
	if err := p.client.do(ctx, http.MethodGet, "/posts", listQuery(filter), nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (p *PostsService) Get(ctx context.Context, id string) (*domain.Post, error) {
	var post domain.Post
	if err := p.client.do(ctx, http.MethodGet, "/posts/"+id, nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *PostsService) Create(ctx context.Context, caption string, media []api.MediaUpload) (*domain.Post, error) {
	fields := map[string]string{"caption": caption}

	var post domain.Post
	if err := p.client.doMultipart(ctx, http.MethodPost, "/posts", fields, media, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (p *PostsService) Delete(ctx context.Context, id string) error {
	return p.client.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil, nil)
}

func (p *PostsService) Like(ctx context.Context, id string) error {
	return p.client.do(ctx, http.MethodPost, "/posts/"+id+"/like", nil, nil, nil)
}

func (p *PostsService) Unlike(ctx context.Context, id string) error {
	return p.client.do(ctx, http.MethodDelete, "/posts/"+id+"/like", nil, nil, nil)
}

func (p *PostsService) Comments(ctx context.Context, id string) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := p.client.do(ctx, http.MethodGet, "/posts/"+id+"/comments", nil, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (p *PostsService) Comment(ctx context.Context, id, body string) (*domain.Comment, error) {
	payload := map[string]string{"body": body}

	var comment domain.Comment
	if err := p.client.do(ctx, http.MethodPost, "/posts/"+id+"/comments", nil, payload, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (p *PostsService) Share(ctx context.Context, id string) error {
	return p.client.do(ctx, http.MethodPost, "/posts/"+id+"/share", nil, nil, nil)
}
