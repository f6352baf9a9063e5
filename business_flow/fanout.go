package businessflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/repository"
	"github.com/resonatefm/resonate-gateway/utils"
)

// notificationTitle is the fixed title of release notifications
const notificationTitle = "New Release"

// releaseEventType tags the structured data payload of release notifications
const releaseEventType = "new_release"

// FanoutPayload identifies the release event being fanned out to followers
type FanoutPayload struct {
	OwnerUserID  string
	ArtistID     string
	ReleaseID    string
	ReleaseTitle string
	ReleaseType  string
}

// FanoutResult summarizes one fan-out run. It is recorded out of band
// (audit trail, metrics, logs) and never surfaces to the release caller.
type FanoutResult struct {
	PagesFetched      int
	BatchesDispatched int
	BatchesFailed     int
	FollowersNotified int
	Aborted           bool
}

// NotificationFanout partitions a release's followers into batches and
// dispatches one batched notification call per batch. Batches are independent
// units of work: one failed batch never suppresses delivery to the others,
// and the fan-out as a whole never returns an error to its caller.
type NotificationFanout struct {
	notifier  services.NotificationClient
	auditRepo repository.AuditLogRepository
	pager     *followerPager
	cfg       config.FanoutConfig
}

// NewNotificationFanout creates a new fan-out dispatcher
func NewNotificationFanout(
	social services.SocialGraphClient,
	notifier services.NotificationClient,
	auditRepo repository.AuditLogRepository,
	cfg config.FanoutConfig,
) *NotificationFanout {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = utils.DefaultNotificationBatchSize
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 1
	}
	return &NotificationFanout{
		notifier:  notifier,
		auditRepo: auditRepo,
		pager:     newFollowerPager(social, cfg),
		cfg:       cfg,
	}
}

// DispatchReleaseNotification walks the owner's followers page by page and
// dispatches a batched notification per batch. Each page is handed to the
// dispatcher as soon as it arrives, so a follower-page failure midway leaves
// earlier batches dispatched. The returned result is informational only.
func (f *NotificationFanout) DispatchReleaseNotification(ctx context.Context, payload FanoutPayload) FanoutResult {
	var (
		result FanoutResult
		mu     sync.Mutex
		wg     sync.WaitGroup
	)
	sem := make(chan struct{}, f.cfg.MaxConcurrency)

	dispatchBatch := func(batch []string) {
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			batchCtx := ctx
			if f.cfg.DispatchTimeout > 0 {
				var cancel context.CancelFunc
				batchCtx, cancel = context.WithTimeout(ctx, f.cfg.DispatchTimeout)
				defer cancel()
			}

			err := f.notifier.SendBatch(batchCtx, &services.BatchNotificationRequest{
				UserIDs: batch,
				Title:   notificationTitle,
				Body:    releaseNotificationBody(payload.ReleaseType, payload.ReleaseTitle),
				Data: map[string]any{
					"event":         releaseEventType,
					"release_id":    payload.ReleaseID,
					"release_title": payload.ReleaseTitle,
					"artist_id":     payload.ArtistID,
					"owner_user_id": payload.OwnerUserID,
				},
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.BatchesFailed++
				fanoutBatchesTotal.WithLabelValues(metricStatusFailed).Inc()
				log.Printf("release fanout: batch dispatch failed for release %s (%d recipients): %v", payload.ReleaseID, len(batch), err)
				f.auditBatch(ctx, payload, batch, false, err)
			} else {
				result.BatchesDispatched++
				result.FollowersNotified += len(batch)
				fanoutBatchesTotal.WithLabelValues(metricStatusOK).Inc()
				fanoutFollowersNotifiedTotal.Add(float64(len(batch)))
				f.auditBatch(ctx, payload, batch, true, nil)
			}
		}()
	}

	pagesFetched, walkErr := f.pager.collectAll(ctx, payload.OwnerUserID, func(followerIDs []string) {
		for _, batch := range partitionBatches(followerIDs, f.cfg.BatchSize) {
			dispatchBatch(batch)
		}
	})

	wg.Wait()

	mu.Lock()
	result.PagesFetched = pagesFetched
	result.Aborted = walkErr != nil
	finished := result
	mu.Unlock()

	if walkErr != nil {
		fanoutRunsTotal.WithLabelValues(fanoutOutcomeAborted).Inc()
		log.Printf("release fanout: follower walk aborted for release %s after %d pages: %v", payload.ReleaseID, finished.PagesFetched, walkErr)
		errMsg := walkErr.Error()
		_ = writeAuditLog(ctx, f.auditRepo, AuditEntry{
			Action:       models.AuditActionFollowerPageFetchFailed,
			Description:  fmt.Sprintf("Follower walk aborted after %d pages", finished.PagesFetched),
			Success:      false,
			ErrorMessage: &errMsg,
			UserID:       utils.ToPtr(payload.OwnerUserID),
			ArtistID:     utils.ToPtr(payload.ArtistID),
			ReleaseID:    utils.ToPtr(payload.ReleaseID),
		}, nil)
	} else {
		fanoutRunsTotal.WithLabelValues(fanoutOutcomeCompleted).Inc()
		summary, _ := json.Marshal(finished)
		_ = writeAuditLog(ctx, f.auditRepo, AuditEntry{
			Action:      models.AuditActionFanoutCompleted,
			Description: fmt.Sprintf("Fan-out completed: %d batches, %d followers", finished.BatchesDispatched, finished.FollowersNotified),
			Success:     finished.BatchesFailed == 0,
			UserID:      utils.ToPtr(payload.OwnerUserID),
			ArtistID:    utils.ToPtr(payload.ArtistID),
			ReleaseID:   utils.ToPtr(payload.ReleaseID),
			Extra:       summary,
		}, nil)
	}

	return finished
}

// auditBatch records the outcome of a single batch dispatch
func (f *NotificationFanout) auditBatch(ctx context.Context, payload FanoutPayload, batch []string, success bool, dispatchErr error) {
	entry := AuditEntry{
		Description: fmt.Sprintf("Notification batch of %d recipients for release %s", len(batch), payload.ReleaseID),
		Success:     success,
		UserID:      utils.ToPtr(payload.OwnerUserID),
		ArtistID:    utils.ToPtr(payload.ArtistID),
		ReleaseID:   utils.ToPtr(payload.ReleaseID),
		FollowerIDs: batch,
	}
	if success {
		entry.Action = models.AuditActionNotificationBatchSent
	} else {
		entry.Action = models.AuditActionNotificationBatchFailed
		entry.ErrorMessage = utils.ToPtr(dispatchErr.Error())
	}

	if err := writeAuditLog(ctx, f.auditRepo, entry, nil); err != nil {
		log.Printf("release fanout: failed to write batch audit log: %v", err)
	}
}

// releaseNotificationBody renders the push body shown to followers
func releaseNotificationBody(releaseType, title string) string {
	return fmt.Sprintf("An artist you follow has released a new %s: %s", releaseType, title)
}

// partitionBatches splits followerIDs into contiguous chunks of at most size,
// preserving order. The last chunk may be smaller. An empty input produces
// zero chunks.
func partitionBatches(followerIDs []string, size int) [][]string {
	if size <= 0 || len(followerIDs) == 0 {
		return nil
	}

	batches := make([][]string, 0, utils.CeilDiv(len(followerIDs), size))
	for start := 0; start < len(followerIDs); start += size {
		end := start + size
		if end > len(followerIDs) {
			end = len(followerIDs)
		}
		batches = append(batches, followerIDs[start:end])
	}
	return batches
}
