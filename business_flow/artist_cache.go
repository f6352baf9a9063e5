package businessflow

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
)

// artistCache is a read-through cache in front of the catalog's artist
// lookup. Every release creation resolves the artist's owner, so the lookup
// is cached per artist with a short TTL. The cache is optional: with a nil
// redis client every lookup goes straight to the catalog.
type artistCache struct {
	catalog  services.CatalogClient
	rc       *redis.Client
	cacheCfg *config.CacheConfig
}

func newArtistCache(catalog services.CatalogClient, rc *redis.Client, cacheCfg *config.CacheConfig) *artistCache {
	return &artistCache{
		catalog:  catalog,
		rc:       rc,
		cacheCfg: cacheCfg,
	}
}

// Get returns the artist, from cache when possible
func (c *artistCache) Get(ctx context.Context, artistID string) (*dto.ArtistDTO, error) {
	var cacheKey string
	if c.rc != nil && c.cacheCfg != nil {
		cacheKey = redisKey(*c.cacheCfg, "artist", artistID)
		if bs, err := c.rc.Get(ctx, cacheKey).Bytes(); err == nil && len(bs) > 0 {
			var artist dto.ArtistDTO
			if err := json.Unmarshal(bs, &artist); err == nil {
				return &artist, nil
			}
		}
	}

	artist, err := c.catalog.GetArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if bs, err := json.Marshal(artist); err == nil {
			_ = c.rc.Set(ctx, cacheKey, bs, c.cacheCfg.ArtistCacheTTL).Err()
		}
	}

	return artist, nil
}
