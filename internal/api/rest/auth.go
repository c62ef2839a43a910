package rest

import (
	"context"
	"net/http"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type AuthService struct {
	client *Client
}

var _ api.Auth = (*AuthService)(nil)

// sessionPayload is the backend's login/register response shape.
type sessionPayload struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (p sessionPayload) toSession() *domain.Session {
	return &domain.Session{User: p.User, Token: p.Token}
}

func (a *AuthService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	payload := map[string]string{"username": username, "password": password}

	var resp sessionPayload
	if err := a.client.do(ctx, http.MethodPost, "/auth/login", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

func (a *AuthService) Register(ctx context.Context, username, email, password string) (*domain.Session, error) {
	payload := map[string]string{"username": username, "email": email, "password": password}

	var resp sessionPayload
	if err := a.client.do(ctx, http.MethodPost, "/auth/register", nil, payload, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}

func (a *AuthService) Logout(ctx context.Context) error {
	return a.client.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me is the session check used by the route guard at boot.
func (a *AuthService) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.client.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthService) UpdateProfile(ctx context.Context, bio, displayName string) (*domain.User, error) {
	payload := map[string]string{"bio": bio, "displayName": displayName}

	var user domain.User
	if err := a.client.do(ctx, http.MethodPut, "/auth/profile", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthService) UpdateAvatar(ctx context.Context, avatar api.MediaUpload) (*domain.User, error) {
	var user domain.User
	if err := a.client.doMultipart(ctx, http.MethodPut, "/auth/avatar", nil, []api.MediaUpload{avatar}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	payload := map[string]string{"currentPassword": current, "newPassword": next}
	return a.client.do(ctx, http.MethodPut, "/auth/password", nil, payload, nil)
}
