package rest

import (
	"context"
	"net/http"

	"github.com/fanhubapp/fanhub-client/internal/api"
	"github.com/fanhubapp/fanhub-client/internal/domain"
)

type NotificationsService struct {
	client *Client
}

var _ api.Notifications = (*NotificationsService)(nil)

func (n *NotificationsService) List(ctx context.Context, filter domain.ListFilter) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := n.client.do(ctx, http.MethodGet, "/notifications", listQuery(filter), nil, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *NotificationsService) UnreadCount(ctx context.Context) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	if err := n.client.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

func (n *NotificationsService) MarkRead(ctx context.Context, id string) error {
	return n.client.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil, nil)
}

func (n *NotificationsService) MarkAllRead(ctx context.Context) error {
	return n.client.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil, nil)
}
