package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
)

// PlaylistFlow interface defines the playlist business logic
type PlaylistFlow interface {
	GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistDTO, error)
	CreatePlaylist(ctx context.Context, userID string, req *dto.CreatePlaylistRequest, metadata *ClientMetadata) (*dto.CreatePlaylistResponse, error)
	AddSong(ctx context.Context, playlistID, userID, songID string) (*dto.MutatePlaylistResponse, error)
	RemoveSong(ctx context.Context, playlistID, userID, songID string) (*dto.MutatePlaylistResponse, error)
}

// PlaylistFlowImpl implements the playlist business flow
type PlaylistFlowImpl struct {
	playlists services.PlaylistClient
	auditRepo repository.AuditLogRepository
}

// NewPlaylistFlow creates a new playlist flow
func NewPlaylistFlow(playlists services.PlaylistClient, auditRepo repository.AuditLogRepository) PlaylistFlow {
	return &PlaylistFlowImpl{
		playlists: playlists,
		auditRepo: auditRepo,
	}
}

// GetPlaylist fetches a single playlist
func (s *PlaylistFlowImpl) GetPlaylist(ctx context.Context, playlistID string) (*dto.PlaylistDTO, error) {
	if strings.TrimSpace(playlistID) == "" {
		return nil, NewBusinessError("PLAYLIST_VALIDATION_FAILED", "Playlist validation failed", ErrPlaylistIDRequired)
	}

	playlist, err := s.playlists.GetPlaylist(ctx, playlistID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("PLAYLIST_NOT_FOUND", "Playlist not found", ErrPlaylistNotFound)
		}
		return nil, NewBusinessError("PLAYLIST_FETCH_FAILED", "Failed to fetch playlist", err)
	}
	return playlist, nil
}

// CreatePlaylist forwards a playlist creation for the authenticated user
func (s *PlaylistFlowImpl) CreatePlaylist(ctx context.Context, userID string, req *dto.CreatePlaylistRequest, metadata *ClientMetadata) (*dto.CreatePlaylistResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewBusinessError("PLAYLIST_VALIDATION_FAILED", "Playlist validation failed", ErrUserIDRequired)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewBusinessError("PLAYLIST_VALIDATION_FAILED", "Playlist validation failed", ErrPlaylistNameRequired)
	}
	req.OwnerUserID = userID

	playlist, err := s.playlists.CreatePlaylist(ctx, req)
	if err != nil {
		return nil, NewBusinessError("PLAYLIST_CREATION_FAILED", "Failed to create playlist", err)
	}

	_ = writeAuditLog(ctx, s.auditRepo, AuditEntry{
		Action:      models.AuditActionPlaylistCreated,
		Description: fmt.Sprintf("Playlist %q created for user %s", playlist.Name, userID),
		Success:     true,
		UserID:      &userID,
	}, metadata)

	return &dto.CreatePlaylistResponse{
		Message:  "Playlist created successfully",
		Playlist: *playlist,
	}, nil
}

// AddSong appends a song to a playlist on behalf of the authenticated user
func (s *PlaylistFlowImpl) AddSong(ctx context.Context, playlistID, userID, songID string) (*dto.MutatePlaylistResponse, error) {
	if err := validatePlaylistMutation(playlistID, userID, songID); err != nil {
		return nil, NewBusinessError("PLAYLIST_VALIDATION_FAILED", "Playlist validation failed", err)
	}

	playlist, err := s.playlists.AddSong(ctx, playlistID, userID, songID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("PLAYLIST_NOT_FOUND", "Playlist not found", ErrPlaylistNotFound)
		}
		return nil, NewBusinessError("PLAYLIST_UPDATE_FAILED", "Failed to add song to playlist", err)
	}

	return &dto.MutatePlaylistResponse{
		Message:  "Song added to playlist",
		Playlist: *playlist,
	}, nil
}

// RemoveSong removes a song from a playlist on behalf of the authenticated user
func (s *PlaylistFlowImpl) RemoveSong(ctx context.Context, playlistID, userID, songID string) (*dto.MutatePlaylistResponse, error) {
	if err := validatePlaylistMutation(playlistID, userID, songID); err != nil {
		return nil, NewBusinessError("PLAYLIST_VALIDATION_FAILED", "Playlist validation failed", err)
	}

	playlist, err := s.playlists.RemoveSong(ctx, playlistID, userID, songID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("PLAYLIST_NOT_FOUND", "Playlist not found", ErrPlaylistNotFound)
		}
		return nil, NewBusinessError("PLAYLIST_UPDATE_FAILED", "Failed to remove song from playlist", err)
	}

	return &dto.MutatePlaylistResponse{
		Message:  "Song removed from playlist",
		Playlist: *playlist,
	}, nil
}

func validatePlaylistMutation(playlistID, userID, songID string) error {
	if strings.TrimSpace(playlistID) == "" {
		return ErrPlaylistIDRequired
	}
	if strings.TrimSpace(userID) == "" {
		return ErrUserIDRequired
	}
	if strings.TrimSpace(songID) == "" {
		return ErrSongIDMissing
	}
	return nil
}
