package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
)

// PlaylistClient talks to the playlist service
type PlaylistClient interface {
	GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistDTO, error)
	CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistDTO, error)
	AddSong(ctx context.Context, playlistID, userID, songID string) (*dto.PlaylistDTO, error)
	RemoveSong(ctx context.Context, playlistID, userID, songID string) (*dto.PlaylistDTO, error)
}

type httpPlaylistClient struct {
	baseURL string
	client  *http.Client
}

// NewPlaylistClient creates an HTTP client for the playlist service
func NewPlaylistClient(cfg config.ServicesConfig) PlaylistClient {
	return &httpPlaylistClient{
		baseURL: cfg.PlaylistBaseURL,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

func (c *httpPlaylistClient) GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistDTO, error) {
	var out dto.PlaylistDTO
	endpoint := fmt.Sprintf("%s/api/v1/playlists/%s", c.baseURL, url.PathEscape(playlistID))
	if err := doJSON(ctx, c.client, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpPlaylistClient) CreatePlaylist(ctx context.Context, req *dto.CreatePlaylistRequest) (*dto.PlaylistDTO, error) {
	var out dto.PlaylistDTO
	payload := struct {
		OwnerUserID string  `json:"owner_user_id"`
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
		Public      bool    `json:"public"`
	}{
		OwnerUserID: req.OwnerUserID,
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
	}
	endpoint := fmt.Sprintf("%s/api/v1/playlists", c.baseURL)
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpPlaylistClient) AddSong(ctx context.Context, playlistID, userID, songID string) (*dto.PlaylistDTO, error) {
	var out dto.PlaylistDTO
	payload := map[string]string{"song_id": songID, "user_id": userID}
	endpoint := fmt.Sprintf("%s/api/v1/playlists/%s/songs", c.baseURL, url.PathEscape(playlistID))
	if err := doJSON(ctx, c.client, http.MethodPost, endpoint, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpPlaylistClient) RemoveSong(ctx context.Context, playlistID, userID, songID string) (*dto.PlaylistDTO, error) {
	var out dto.PlaylistDTO
	endpoint := fmt.Sprintf("%s/api/v1/playlists/%s/songs/%s?user_id=%s",
		c.baseURL, url.PathEscape(playlistID), url.PathEscape(songID), url.QueryEscape(userID))
	if err := doJSON(ctx, c.client, http.MethodDelete, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
