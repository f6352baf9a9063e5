package businessflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
	"github.com/resonatefm/resonate-gateway/utils"
)

// SongFlow interface defines the song business logic
type SongFlow interface {
	CreateSong(ctx context.Context, artistID string, req *dto.CreateSongRequest, metadata *ClientMetadata) (*dto.CreateSongResponse, error)
	GetSong(ctx context.Context, songID string) (*dto.SongDTO, error)
	SearchSongs(ctx context.Context, query string, page, limit int) (*dto.SearchSongsResponse, error)
}

// SongFlowImpl implements the song business flow
type SongFlowImpl struct {
	catalog   services.CatalogClient
	auditRepo repository.AuditLogRepository
}

// NewSongFlow creates a new song flow
func NewSongFlow(catalog services.CatalogClient, auditRepo repository.AuditLogRepository) SongFlow {
	return &SongFlowImpl{
		catalog:   catalog,
		auditRepo: auditRepo,
	}
}

// CreateSong validates and forwards a song registration to the catalog
func (s *SongFlowImpl) CreateSong(ctx context.Context, artistID string, req *dto.CreateSongRequest, metadata *ClientMetadata) (*dto.CreateSongResponse, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, NewBusinessError("SONG_VALIDATION_FAILED", "Song validation failed", ErrArtistIDRequired)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, NewBusinessError("SONG_VALIDATION_FAILED", "Song validation failed", ErrSongTitleRequired)
	}
	req.ArtistID = artistID

	song, err := s.catalog.CreateSong(ctx, artistID, req)
	if err != nil {
		return nil, NewBusinessError("SONG_CREATION_FAILED", "Failed to create song", err)
	}

	_ = writeAuditLog(ctx, s.auditRepo, AuditEntry{
		Action:      models.AuditActionSongCreated,
		Description: fmt.Sprintf("Song %q created for artist %s", song.Title, artistID),
		Success:     true,
		ArtistID:    &artistID,
	}, metadata)

	return &dto.CreateSongResponse{
		Message: "Song created successfully",
		Song:    *song,
	}, nil
}

// GetSong fetches a single song from the catalog
func (s *SongFlowImpl) GetSong(ctx context.Context, songID string) (*dto.SongDTO, error) {
	if strings.TrimSpace(songID) == "" {
		return nil, NewBusinessError("SONG_VALIDATION_FAILED", "Song validation failed", ErrSongIDMissing)
	}

	song, err := s.catalog.GetSong(ctx, songID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("SONG_NOT_FOUND", "Song not found", ErrSongNotFound)
		}
		return nil, NewBusinessError("SONG_FETCH_FAILED", "Failed to fetch song", err)
	}
	return song, nil
}

// SearchSongs forwards a catalog search
func (s *SongFlowImpl) SearchSongs(ctx context.Context, query string, page, limit int) (*dto.SearchSongsResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewBusinessError("SONG_VALIDATION_FAILED", "Song validation failed", ErrSearchQueryMissing)
	}

	page, limit = normalizePage(page, limit, utils.DefaultFollowerPageSize)
	results, err := s.catalog.SearchSongs(ctx, query, page, limit)
	if err != nil {
		return nil, NewBusinessError("SONG_SEARCH_FAILED", "Failed to search songs", err)
	}
	return results, nil
}
