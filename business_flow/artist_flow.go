package businessflow

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
)

// ArtistFlow interface defines the artist lookup business logic
type ArtistFlow interface {
	GetArtist(ctx context.Context, artistID string) (*dto.ArtistDTO, error)
	GetFollowerCount(ctx context.Context, artistID string) (*dto.FollowerCountResponse, error)
}

// ArtistFlowImpl implements the artist business flow
type ArtistFlowImpl struct {
	social  services.SocialGraphClient
	artists *artistCache
}

// NewArtistFlow creates a new artist flow
func NewArtistFlow(
	catalog services.CatalogClient,
	social services.SocialGraphClient,
	rc *redis.Client,
	cfg *config.Config,
) ArtistFlow {
	return &ArtistFlowImpl{
		social:  social,
		artists: newArtistCache(catalog, rc, &cfg.Cache),
	}
}

// GetArtist fetches an artist profile, served from cache when fresh
func (s *ArtistFlowImpl) GetArtist(ctx context.Context, artistID string) (*dto.ArtistDTO, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, NewBusinessError("ARTIST_VALIDATION_FAILED", "Artist validation failed", ErrArtistIDRequired)
	}

	artist, err := s.artists.Get(ctx, artistID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("ARTIST_NOT_FOUND", "Artist not found", ErrArtistNotFound)
		}
		return nil, NewBusinessError("ARTIST_FETCH_FAILED", "Failed to fetch artist", err)
	}
	return artist, nil
}

// GetFollowerCount resolves the artist's owner and asks the social graph for
// the owner's follower total
func (s *ArtistFlowImpl) GetFollowerCount(ctx context.Context, artistID string) (*dto.FollowerCountResponse, error) {
	artist, err := s.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	total, err := s.social.GetFollowerCount(ctx, artist.OwnerUserID)
	if err != nil {
		return nil, NewBusinessError("FOLLOWER_COUNT_FAILED", "Failed to fetch follower count", err)
	}

	return &dto.FollowerCountResponse{
		ArtistID: artistID,
		Total:    total,
	}, nil
}
