package businessflow

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
	"github.com/resonatefm/resonate-gateway/utils"
)

// ReleaseFlow interface defines the release publication business logic
type ReleaseFlow interface {
	CreateRelease(ctx context.Context, artistID string, req *dto.CreateReleaseRequest, metadata *ClientMetadata) (*dto.CreateReleaseResponse, error)
	GetRelease(ctx context.Context, releaseID string) (*dto.ReleaseDTO, error)
	ListReleases(ctx context.Context, artistID string, page, limit int) (*dto.ListReleasesResponse, error)

	// Wait blocks until every detached fan-out spawned so far has finished.
	// Called during graceful shutdown so in-flight notifications drain.
	Wait()
}

// ReleaseFlowImpl implements the release publication business flow
type ReleaseFlowImpl struct {
	catalog    services.CatalogClient
	metricsSvc services.MetricsClient
	fanout     *NotificationFanout
	auditRepo  repository.AuditLogRepository
	artists    *artistCache
	fanoutCfg  config.FanoutConfig
	tasks      taskGroup
}

// NewReleaseFlow creates a new release flow
func NewReleaseFlow(
	catalog services.CatalogClient,
	metricsSvc services.MetricsClient,
	fanout *NotificationFanout,
	auditRepo repository.AuditLogRepository,
	rc *redis.Client,
	cfg *config.Config,
) ReleaseFlow {
	return &ReleaseFlowImpl{
		catalog:    catalog,
		metricsSvc: metricsSvc,
		fanout:     fanout,
		auditRepo:  auditRepo,
		artists:    newArtistCache(catalog, rc, &cfg.Cache),
		fanoutCfg:  cfg.Fanout,
	}
}

// CreateRelease validates and forwards a release to the catalog service. The
// catalog call is the only fatal step: once it succeeds the caller gets a
// success response, and everything after it (play-metric recording, owner
// lookup, follower fan-out) runs detached and reports failures out of band.
func (s *ReleaseFlowImpl) CreateRelease(ctx context.Context, artistID string, req *dto.CreateReleaseRequest, metadata *ClientMetadata) (*dto.CreateReleaseResponse, error) {
	req.ArtistID = artistID
	if err := validateCreateReleaseRequest(artistID, req); err != nil {
		return nil, NewBusinessError("RELEASE_VALIDATION_FAILED", "Release validation failed", err)
	}

	release, err := s.catalog.CreateRelease(ctx, artistID, req)
	if err != nil {
		releasesCreatedTotal.WithLabelValues(metricStatusFailed).Inc()
		errMsg := err.Error()
		_ = writeAuditLog(ctx, s.auditRepo, AuditEntry{
			Action:       models.AuditActionReleaseCreationFailed,
			Description:  fmt.Sprintf("Catalog rejected release %q for artist %s", req.Title, artistID),
			Success:      false,
			ErrorMessage: &errMsg,
			ArtistID:     &artistID,
		}, metadata)
		return nil, NewBusinessError("RELEASE_CREATION_FAILED", "Failed to create release", err)
	}

	releasesCreatedTotal.WithLabelValues(metricStatusOK).Inc()
	auditEntry := AuditEntry{
		Action:      models.AuditActionReleaseCreated,
		Description: fmt.Sprintf("Release %q (%s) created for artist %s", release.Title, release.Type, artistID),
		Success:     true,
		ArtistID:    &artistID,
	}
	if release.ID != "" {
		auditEntry.ReleaseID = &release.ID
	}
	_ = writeAuditLog(ctx, s.auditRepo, auditEntry, metadata)

	if release.ID == "" {
		// A release without an id cannot be referenced downstream, so no
		// metric event and no fan-out. The creation itself still succeeded.
		log.Printf("release flow: catalog returned no release id for artist %s, skipping fan-out", artistID)
	} else {
		s.spawnPostCreation(artistID, release)
	}

	return &dto.CreateReleaseResponse{
		Message: "Release created successfully",
		Release: *release,
	}, nil
}

// GetRelease fetches a single release from the catalog
func (s *ReleaseFlowImpl) GetRelease(ctx context.Context, releaseID string) (*dto.ReleaseDTO, error) {
	if strings.TrimSpace(releaseID) == "" {
		return nil, NewBusinessError("RELEASE_VALIDATION_FAILED", "Release validation failed", ErrReleaseIDRequired)
	}

	release, err := s.catalog.GetRelease(ctx, releaseID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("RELEASE_NOT_FOUND", "Release not found", ErrReleaseNotFound)
		}
		return nil, NewBusinessError("RELEASE_FETCH_FAILED", "Failed to fetch release", err)
	}
	return release, nil
}

// ListReleases fetches a page of an artist's releases from the catalog
func (s *ReleaseFlowImpl) ListReleases(ctx context.Context, artistID string, page, limit int) (*dto.ListReleasesResponse, error) {
	if strings.TrimSpace(artistID) == "" {
		return nil, NewBusinessError("RELEASE_VALIDATION_FAILED", "Release validation failed", ErrArtistIDRequired)
	}

	page, limit = normalizePage(page, limit, utils.DefaultFollowerPageSize)
	releases, err := s.catalog.ListReleases(ctx, artistID, page, limit)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("ARTIST_NOT_FOUND", "Artist not found", ErrArtistNotFound)
		}
		return nil, NewBusinessError("RELEASE_LIST_FAILED", "Failed to list releases", err)
	}
	return releases, nil
}

// Wait drains detached post-creation work
func (s *ReleaseFlowImpl) Wait() {
	s.tasks.Wait()
}

// spawnPostCreation runs metric recording and the notification fan-out on a
// detached goroutine. The request context is deliberately not inherited:
// the HTTP response goes out before (and regardless of) this work, and a
// canceled request must not cancel delivery to followers.
func (s *ReleaseFlowImpl) spawnPostCreation(artistID string, release *dto.ReleaseDTO) {
	s.tasks.Go(func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("release flow: panic recovered during post-creation work for release %s: %v", release.ID, r)
			}
		}()

		ctx := context.Background()

		s.recordReleaseEvent(ctx, release.ID, artistID)

		ownerUserID, err := s.resolveOwner(ctx, artistID)
		if err != nil {
			errMsg := err.Error()
			log.Printf("release flow: owner lookup failed for artist %s, release %s: %v", artistID, release.ID, err)
			_ = writeAuditLog(ctx, s.auditRepo, AuditEntry{
				Action:       models.AuditActionOwnerLookupFailed,
				Description:  fmt.Sprintf("Could not resolve owner of artist %s, fan-out skipped", artistID),
				Success:      false,
				ErrorMessage: &errMsg,
				ArtistID:     &artistID,
				ReleaseID:    &release.ID,
			}, nil)
			return
		}

		s.fanout.DispatchReleaseNotification(ctx, FanoutPayload{
			OwnerUserID:  ownerUserID,
			ArtistID:     artistID,
			ReleaseID:    release.ID,
			ReleaseTitle: release.Title,
			ReleaseType:  release.Type,
		})
	})
}

// recordReleaseEvent reports the creation to the metrics service. A failure
// here is logged and audited but never blocks the fan-out.
func (s *ReleaseFlowImpl) recordReleaseEvent(ctx context.Context, releaseID, artistID string) {
	callCtx, cancel := s.stepContext(ctx)
	defer cancel()

	if err := s.metricsSvc.RecordReleaseCreated(callCtx, releaseID, artistID); err != nil {
		errMsg := err.Error()
		log.Printf("release flow: failed to record release metric for release %s: %v", releaseID, err)
		_ = writeAuditLog(ctx, s.auditRepo, AuditEntry{
			Action:       models.AuditActionReleaseMetricRecordFailed,
			Description:  fmt.Sprintf("Metrics service rejected release_created event for release %s", releaseID),
			Success:      false,
			ErrorMessage: &errMsg,
			ArtistID:     &artistID,
			ReleaseID:    &releaseID,
		}, nil)
	}
}

// resolveOwner maps an artist to the user account that owns the profile,
// which is the account whose followers receive the notification
func (s *ReleaseFlowImpl) resolveOwner(ctx context.Context, artistID string) (string, error) {
	callCtx, cancel := s.stepContext(ctx)
	defer cancel()

	artist, err := s.artists.Get(callCtx, artistID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch artist %s: %w", artistID, err)
	}
	if artist.OwnerUserID == "" {
		return "", fmt.Errorf("artist %s has no owner user", artistID)
	}
	return artist.OwnerUserID, nil
}

func (s *ReleaseFlowImpl) stepContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fanoutCfg.DispatchTimeout > 0 {
		return context.WithTimeout(ctx, s.fanoutCfg.DispatchTimeout)
	}
	return context.WithCancel(ctx)
}

// validateCreateReleaseRequest enforces the release invariants before any
// downstream call is made
func validateCreateReleaseRequest(artistID string, req *dto.CreateReleaseRequest) error {
	if strings.TrimSpace(artistID) == "" {
		return ErrArtistIDRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrReleaseTitleRequired
	}

	switch req.Type {
	case utils.ReleaseTypeAlbum, utils.ReleaseTypeSingle, utils.ReleaseTypeEP:
	default:
		return ErrInvalidReleaseType
	}

	if !utils.ValidReleaseDate(req.ReleaseDate) {
		return ErrInvalidReleaseDate
	}

	if req.CoverURL != nil && *req.CoverURL != "" {
		parsed, err := url.Parse(*req.CoverURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return ErrInvalidCoverURL
		}
	}

	for _, songID := range req.SongIDs {
		if strings.TrimSpace(songID) == "" {
			return ErrSongIDRequired
		}
	}

	return nil
}
