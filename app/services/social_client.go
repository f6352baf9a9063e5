package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
)

// SocialGraphClient talks to the social-graph service. Follower lists are
// unbounded and only reachable page by page; the fan-out walks them with
// GetFollowersPage until the reported total_pages is exhausted.
type SocialGraphClient interface {
	GetFollowersPage(ctx context.Context, userID string, page, limit int) (*dto.FollowersPageDTO, error)
	GetFollowerCount(ctx context.Context, userID string) (int, error)
}

type httpSocialGraphClient struct {
	baseURL string
	client  *http.Client
}

// NewSocialGraphClient creates an HTTP client for the social-graph service
func NewSocialGraphClient(cfg config.ServicesConfig) SocialGraphClient {
	return &httpSocialGraphClient{
		baseURL: cfg.SocialBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpSocialGraphClient) GetFollowersPage(ctx context.Context, userID string, page, limit int) (*dto.FollowersPageDTO, error) {
	var out dto.FollowersPageDTO
	endpoint := fmt.Sprintf("%s/api/v1/users/%s/followers?page=%d&limit=%d", c.baseURL, url.PathEscape(userID), page, limit)
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpSocialGraphClient) GetFollowerCount(ctx context.Context, userID string) (int, error) {
	// A single-item page carries the full total in its pagination metadata
	pageDTO, err := c.GetFollowersPage(ctx, userID, 1, 1)
	if err != nil {
		return 0, err
	}
	return pageDTO.Pagination.Total, nil
}
