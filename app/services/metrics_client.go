package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/resonatefm/resonate-gateway/config"
)

// MetricsClient reports domain events to the metrics service. Recording is
// best-effort: callers treat failures as isolated and log them out of band.
type MetricsClient interface {
	RecordReleaseCreated(ctx context.Context, releaseID, artistID string) error
}

type httpMetricsClient struct {
	baseURL string
	client  *http.Client
}

// NewMetricsClient creates an HTTP client for the metrics service
func NewMetricsClient(cfg config.ServicesConfig) MetricsClient {
	return &httpMetricsClient{
		baseURL: cfg.MetricsBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpMetricsClient) RecordReleaseCreated(ctx context.Context, releaseID, artistID string) error {
	payload := struct {
		EventType string `json:"event_type"`
		ReleaseID string `json:"release_id"`
		ArtistID  string `json:"artist_id"`
	}{
		EventType: "release_created",
		ReleaseID: releaseID,
		ArtistID:  artistID,
	}
	endpoint := fmt.Sprintf("%s/api/v1/events", c.baseURL)
	return doJSON(ctx, c.client, http.MethodPost, endpoint, payload, nil)
}
