package businessflow

import (
	"context"
	"fmt"
	"testing"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/models"
	"github.com/resonatefm/resonate-gateway/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type releaseFlowFixture struct {
	flow      ReleaseFlow
	catalog   *fakeCatalog
	metrics   *fakeMetricsClient
	social    *fakeSocialGraph
	notifier  *fakeNotifier
	auditRepo *fakeAuditRepo
}

func newReleaseFlowFixture(catalog *fakeCatalog, social *fakeSocialGraph) *releaseFlowFixture {
	metrics := &fakeMetricsClient{}
	notifier := &fakeNotifier{}
	auditRepo := &fakeAuditRepo{}

	cfg := &config.Config{Fanout: testFanoutConfig()}
	fanout := NewNotificationFanout(social, notifier, auditRepo, cfg.Fanout)

	return &releaseFlowFixture{
		flow:      NewReleaseFlow(catalog, metrics, fanout, auditRepo, nil, cfg),
		catalog:   catalog,
		metrics:   metrics,
		social:    social,
		notifier:  notifier,
		auditRepo: auditRepo,
	}
}

func validCreateReleaseRequest() *dto.CreateReleaseRequest {
	return &dto.CreateReleaseRequest{
		Title:       "Midnight Tapes",
		Type:        utils.ReleaseTypeAlbum,
		ReleaseDate: "2026-09-04",
	}
}

func TestCreateRelease_Validation(t *testing.T) {
	cases := []struct {
		name     string
		artistID string
		mutate   func(*dto.CreateReleaseRequest)
		wantErr  error
	}{
		{"missing artist id", "", func(r *dto.CreateReleaseRequest) {}, ErrArtistIDRequired},
		{"missing title", "artist-1", func(r *dto.CreateReleaseRequest) { r.Title = "  " }, ErrReleaseTitleRequired},
		{"bad type", "artist-1", func(r *dto.CreateReleaseRequest) { r.Type = "mixtape" }, ErrInvalidReleaseType},
		{"bad date", "artist-1", func(r *dto.CreateReleaseRequest) { r.ReleaseDate = "2026-02-30" }, ErrInvalidReleaseDate},
		{"bad cover url", "artist-1", func(r *dto.CreateReleaseRequest) { r.CoverURL = utils.ToPtr("not a url") }, ErrInvalidCoverURL},
		{"blank song id", "artist-1", func(r *dto.CreateReleaseRequest) { r.SongIDs = []string{"song-1", " "} }, ErrSongIDRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := &fakeCatalog{createdID: "release-1"}
			fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{})

			req := validCreateReleaseRequest()
			tc.mutate(req)

			_, err := fixture.flow.CreateRelease(context.Background(), tc.artistID, req, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.True(t, IsValidationError(err))

			// Invalid requests never reach the catalog
			assert.Zero(t, catalog.createCalls)
		})
	}
}

func TestCreateRelease_CatalogFailureIsFatal(t *testing.T) {
	catalog := &fakeCatalog{createErr: fmt.Errorf("catalog unavailable")}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{pages: followerPages(10, 50)})

	_, err := fixture.flow.CreateRelease(context.Background(), "artist-1", validCreateReleaseRequest(), nil)
	require.Error(t, err)
	assert.False(t, IsValidationError(err))

	fixture.flow.Wait()

	// The failed creation produces no downstream side effects
	assert.Empty(t, fixture.metrics.recorded())
	assert.Empty(t, fixture.social.recordedCalls())
	assert.Empty(t, fixture.notifier.sentBatches())
	assert.Contains(t, fixture.auditRepo.actions(), models.AuditActionReleaseCreationFailed)
}

func TestCreateRelease_NoReleaseIDSkipsSideEffects(t *testing.T) {
	catalog := &fakeCatalog{
		createdID: "",
		artist:    &dto.ArtistDTO{ID: "artist-1", OwnerUserID: "user-owner"},
	}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{pages: followerPages(10, 50)})

	res, err := fixture.flow.CreateRelease(context.Background(), "artist-1", validCreateReleaseRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Midnight Tapes", res.Release.Title)

	fixture.flow.Wait()

	assert.Empty(t, fixture.metrics.recorded())
	assert.Empty(t, fixture.social.recordedCalls())
	assert.Empty(t, fixture.notifier.sentBatches())
}

func TestCreateRelease_NotifiesFollowers(t *testing.T) {
	catalog := &fakeCatalog{
		createdID: "release-1",
		artist:    &dto.ArtistDTO{ID: "artist-1", OwnerUserID: "user-owner"},
	}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{pages: followerPages(75, 50)})

	res, err := fixture.flow.CreateRelease(context.Background(), "artist-1", validCreateReleaseRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, "release-1", res.Release.ID)

	fixture.flow.Wait()

	// The creation event is reported and the owner's followers are walked
	assert.Equal(t, []string{"release-1"}, fixture.metrics.recorded())
	calls := fixture.social.recordedCalls()
	require.NotEmpty(t, calls)
	assert.Equal(t, "user-owner", calls[0].UserID)
	assert.Len(t, fixture.notifier.notifiedUIDs(), 75)
	assert.Contains(t, fixture.auditRepo.actions(), models.AuditActionReleaseCreated)
	assert.Contains(t, fixture.auditRepo.actions(), models.AuditActionFanoutCompleted)
}

func TestCreateRelease_MetricFailureDoesNotBlockFanout(t *testing.T) {
	catalog := &fakeCatalog{
		createdID: "release-1",
		artist:    &dto.ArtistDTO{ID: "artist-1", OwnerUserID: "user-owner"},
	}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{pages: followerPages(10, 50)})
	fixture.metrics.err = fmt.Errorf("metrics service down")

	_, err := fixture.flow.CreateRelease(context.Background(), "artist-1", validCreateReleaseRequest(), nil)
	require.NoError(t, err)

	fixture.flow.Wait()

	assert.Len(t, fixture.notifier.notifiedUIDs(), 10)
	assert.Contains(t, fixture.auditRepo.actions(), models.AuditActionReleaseMetricRecordFailed)
}

func TestCreateRelease_OwnerLookupFailureSkipsFanout(t *testing.T) {
	catalog := &fakeCatalog{
		createdID: "release-1",
		artistErr: fmt.Errorf("catalog unavailable"),
	}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{pages: followerPages(10, 50)})

	_, err := fixture.flow.CreateRelease(context.Background(), "artist-1", validCreateReleaseRequest(), nil)
	require.NoError(t, err)

	fixture.flow.Wait()

	assert.Empty(t, fixture.social.recordedCalls())
	assert.Empty(t, fixture.notifier.sentBatches())
	assert.Contains(t, fixture.auditRepo.actions(), models.AuditActionOwnerLookupFailed)
}

func TestGetRelease(t *testing.T) {
	t.Run("maps downstream 404", func(t *testing.T) {
		catalog := &fakeCatalog{releaseErr: &services.DownstreamError{StatusCode: 404}}
		fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{})

		_, err := fixture.flow.GetRelease(context.Background(), "release-404")
		assert.True(t, IsReleaseNotFound(err))
	})

	t.Run("requires release id", func(t *testing.T) {
		fixture := newReleaseFlowFixture(&fakeCatalog{}, &fakeSocialGraph{})

		_, err := fixture.flow.GetRelease(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrReleaseIDRequired)
	})

	t.Run("forwards release", func(t *testing.T) {
		catalog := &fakeCatalog{release: &dto.ReleaseDTO{ID: "release-1", Title: "Midnight Tapes"}}
		fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{})

		release, err := fixture.flow.GetRelease(context.Background(), "release-1")
		require.NoError(t, err)
		assert.Equal(t, "Midnight Tapes", release.Title)
	})
}

func TestListReleases(t *testing.T) {
	catalog := &fakeCatalog{listResponse: &dto.ListReleasesResponse{
		Releases:   []dto.ReleaseDTO{{ID: "release-1"}},
		Pagination: dto.PaginationDTO{Page: 1, Limit: 50, Total: 1, TotalPages: 1},
	}}
	fixture := newReleaseFlowFixture(catalog, &fakeSocialGraph{})

	res, err := fixture.flow.ListReleases(context.Background(), "artist-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, res.Releases, 1)

	_, err = fixture.flow.ListReleases(context.Background(), "", 1, 10)
	assert.ErrorIs(t, err, ErrArtistIDRequired)
}
