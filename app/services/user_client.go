package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
)

// UserClient talks to the user service
type UserClient interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileDTO, error)
}

type httpUserClient struct {
	baseURL string
	client  *http.Client
}

// NewUserClient creates an HTTP client for the user service
func NewUserClient(cfg config.ServicesConfig) UserClient {
	return &httpUserClient{
		baseURL: cfg.UserBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpUserClient) GetProfile(ctx context.Context, userID string) (*dto.UserProfileDTO, error) {
	var out dto.UserProfileDTO
	endpoint := fmt.Sprintf("%s/api/v1/users/%s", c.baseURL, url.PathEscape(userID))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
