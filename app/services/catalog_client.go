package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
)

// CatalogClient talks to the catalog service (artists, releases, songs).
// The create-release call is the single fatal boundary of the release flow:
// its error is the only downstream error the HTTP caller ever sees.
type CatalogClient interface {
	CreateRelease(ctx context.Context, artistID string, req *dto.CreateReleaseRequest) (*dto.ReleaseDTO, error)
	GetRelease(ctx context.Context, releaseID string) (*dto.ReleaseDTO, error)
	ListReleases(ctx context.Context, artistID string, page, limit int) (*dto.ListReleasesResponse, error)
	GetArtist(ctx context.Context, artistID string) (*dto.ArtistDTO, error)
	CreateSong(ctx context.Context, artistID string, req *dto.CreateSongRequest) (*dto.SongDTO, error)
	GetSong(ctx context.Context, songID string) (*dto.SongDTO, error)
	SearchSongs(ctx context.Context, query string, page, limit int) (*dto.SearchSongsResponse, error)
}

type httpCatalogClient struct {
	baseURL string
	client  *http.Client
}

// NewCatalogClient creates an HTTP client for the catalog service
func NewCatalogClient(cfg config.ServicesConfig) CatalogClient {
	return &httpCatalogClient{
		baseURL: cfg.CatalogBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpCatalogClient) CreateRelease(ctx context.Context, artistID string, req *dto.CreateReleaseRequest) (*dto.ReleaseDTO, error) {
	var out dto.ReleaseDTO
	endpoint := fmt.Sprintf("%s/api/v1/artists/%s/releases", c.baseURL, url.PathEscape(artistID))
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) GetRelease(ctx context.Context, releaseID string) (*dto.ReleaseDTO, error) {
	var out dto.ReleaseDTO
	endpoint := fmt.Sprintf("%s/api/v1/releases/%s", c.baseURL, url.PathEscape(releaseID))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) ListReleases(ctx context.Context, artistID string, page, limit int) (*dto.ListReleasesResponse, error) {
	var out dto.ListReleasesResponse
	endpoint := fmt.Sprintf("%s/api/v1/artists/%s/releases?page=%d&limit=%d", c.baseURL, url.PathEscape(artistID), page, limit)
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) GetArtist(ctx context.Context, artistID string) (*dto.ArtistDTO, error) {
	var out dto.ArtistDTO
	endpoint := fmt.Sprintf("%s/api/v1/artists/%s", c.baseURL, url.PathEscape(artistID))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) CreateSong(ctx context.Context, artistID string, req *dto.CreateSongRequest) (*dto.SongDTO, error) {
	var out dto.SongDTO
	endpoint := fmt.Sprintf("%s/api/v1/artists/%s/songs", c.baseURL, url.PathEscape(artistID))
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) GetSong(ctx context.Context, songID string) (*dto.SongDTO, error) {
	var out dto.SongDTO
	endpoint := fmt.Sprintf("%s/api/v1/songs/%s", c.baseURL, url.PathEscape(songID))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpCatalogClient) SearchSongs(ctx context.Context, query string, page, limit int) (*dto.SearchSongsResponse, error) {
	var out dto.SearchSongsResponse
	endpoint := fmt.Sprintf("%s/api/v1/songs?q=%s&page=%d&limit=%d", c.baseURL, url.QueryEscape(query), page, limit)
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
