package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
)

// BatchNotificationRequest is the payload of one batched push call. The
// notification service handles per-recipient delivery internally; from the
// gateway's perspective a batch either succeeds or fails as a whole.
type BatchNotificationRequest struct {
	UserIDs []string       `json:"user_ids"`
	Title   string         `json:"title"`
	Body    string         `json:"body"`
	Data    map[string]any `json:"data,omitempty"`
}

// NotificationClient talks to the notification service
type NotificationClient interface {
	SendBatch(ctx context.Context, req *BatchNotificationRequest) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*dto.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type httpNotificationClient struct {
	baseURL string
	client  *http.Client
}

// NewNotificationClient creates an HTTP client for the notification service
func NewNotificationClient(cfg config.ServicesConfig) NotificationClient {
	return &httpNotificationClient{
		baseURL: cfg.NotificationBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpNotificationClient) SendBatch(ctx context.Context, req *BatchNotificationRequest) error {
	if len(req.UserIDs) == 0 {
		return nil
	}
	endpoint := fmt.Sprintf("%s/api/v1/notifications/batch", c.baseURL)
	return doJSON(ctx, c.client, http.MethodPost, endpoint, req, nil)
}

func (c *httpNotificationClient) ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*dto.ListNotificationsResponse, error) {
	var out dto.ListNotificationsResponse
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/notifications?unread_only=%t&page=%d&limit=%d",
		c.baseURL, url.PathEscape(userID), unreadOnly, page, limit)
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpNotificationClient) MarkRead(ctx context.Context, userID, notificationID string) error {
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/notifications/%s/read",
		c.baseURL, url.PathEscape(userID), url.PathEscape(notificationID))
	return doJSON(ctx, c.client, http.MethodPut, endpoint, nil, nil)
}
