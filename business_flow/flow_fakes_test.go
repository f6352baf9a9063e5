package businessflow

import (
	"context"
	"fmt"
	"sync"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/models"
)

type followerCall struct {
	UserID string
	Page   int
	Limit  int
}

// fakeSocialGraph serves canned follower pages and records every call
type fakeSocialGraph struct {
	mu         sync.Mutex
	calls      []followerCall
	pages      []*dto.FollowersPageDTO
	failOnPage int
}

func (f *fakeSocialGraph) GetFollowersPage(_ context.Context, userID string, page, limit int) (*dto.FollowersPageDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, followerCall{UserID: userID, Page: page, Limit: limit})

	if f.failOnPage != 0 && page == f.failOnPage {
		return nil, fmt.Errorf("social graph unavailable")
	}
	if page > len(f.pages) {
		return &dto.FollowersPageDTO{
			Pagination: dto.PaginationDTO{Page: page, Limit: limit, TotalPages: len(f.pages)},
		}, nil
	}
	return f.pages[page-1], nil
}

func (f *fakeSocialGraph) GetFollowerCount(ctx context.Context, userID string) (int, error) {
	pageDTO, err := f.GetFollowersPage(ctx, userID, 1, 1)
	if err != nil {
		return 0, err
	}
	return pageDTO.Pagination.Total, nil
}

func (f *fakeSocialGraph) recordedCalls() []followerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]followerCall(nil), f.calls...)
}

// followerPages builds sequential pages of followers named follower-1,
// follower-2, ... split by pageSize
func followerPages(total, pageSize int) []*dto.FollowersPageDTO {
	if total == 0 {
		return []*dto.FollowersPageDTO{{
			Pagination: dto.PaginationDTO{Page: 1, Limit: pageSize, Total: 0, TotalPages: 0},
		}}
	}

	totalPages := (total + pageSize - 1) / pageSize
	pages := make([]*dto.FollowersPageDTO, 0, totalPages)
	next := 1
	for page := 1; page <= totalPages; page++ {
		var followers []dto.FollowerDTO
		for len(followers) < pageSize && next <= total {
			followers = append(followers, dto.FollowerDTO{UID: fmt.Sprintf("follower-%d", next)})
			next++
		}
		pages = append(pages, &dto.FollowersPageDTO{
			Followers:  followers,
			Pagination: dto.PaginationDTO{Page: page, Limit: pageSize, Total: total, TotalPages: totalPages},
		})
	}
	return pages
}

// fakeNotifier records batch dispatches and can fail the batch containing a
// chosen recipient
type fakeNotifier struct {
	mu         sync.Mutex
	batches    []*services.BatchNotificationRequest
	failForUID string
}

func (f *fakeNotifier) SendBatch(_ context.Context, req *services.BatchNotificationRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failForUID != "" {
		for _, uid := range req.UserIDs {
			if uid == f.failForUID {
				return fmt.Errorf("notification service rejected batch")
			}
		}
	}
	f.batches = append(f.batches, req)
	return nil
}

func (f *fakeNotifier) ListNotifications(context.Context, string, bool, int, int) (*dto.ListNotificationsResponse, error) {
	return &dto.ListNotificationsResponse{}, nil
}

func (f *fakeNotifier) MarkRead(context.Context, string, string) error {
	return nil
}

func (f *fakeNotifier) sentBatches() []*services.BatchNotificationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*services.BatchNotificationRequest(nil), f.batches...)
}

func (f *fakeNotifier) notifiedUIDs() []string {
	var uids []string
	for _, batch := range f.sentBatches() {
		uids = append(uids, batch.UserIDs...)
	}
	return uids
}

// fakeAuditRepo keeps saved audit entries in memory
type fakeAuditRepo struct {
	mu   sync.Mutex
	logs []*models.AuditLog
}

func (f *fakeAuditRepo) ByID(context.Context, uint) (*models.AuditLog, error) {
	return nil, nil
}

func (f *fakeAuditRepo) Save(_ context.Context, entity *models.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, entity)
	return nil
}

func (f *fakeAuditRepo) SaveBatch(ctx context.Context, entities []*models.AuditLog) error {
	for _, e := range entities {
		if err := f.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeAuditRepo) ListByRelease(_ context.Context, releaseID string, _, _ int) ([]*models.AuditLog, error) {
	var out []*models.AuditLog
	for _, l := range f.saved() {
		if l.ReleaseID != nil && *l.ReleaseID == releaseID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) ListByAction(_ context.Context, action string, _, _ int) ([]*models.AuditLog, error) {
	var out []*models.AuditLog
	for _, l := range f.saved() {
		if l.Action == action {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) ListFailedActions(context.Context, int, int) ([]*models.AuditLog, error) {
	var out []*models.AuditLog
	for _, l := range f.saved() {
		if l.IsFailed() {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeAuditRepo) saved() []*models.AuditLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*models.AuditLog(nil), f.logs...)
}

func (f *fakeAuditRepo) actions() []string {
	var out []string
	for _, l := range f.saved() {
		out = append(out, l.Action)
	}
	return out
}

// fakeCatalog serves canned catalog responses and records create calls
type fakeCatalog struct {
	mu            sync.Mutex
	createCalls   int
	createErr     error
	createdID     string
	artist        *dto.ArtistDTO
	artistErr     error
	artistCalls   int
	release       *dto.ReleaseDTO
	releaseErr    error
	listResponse  *dto.ListReleasesResponse
	listErr       error
	song          *dto.SongDTO
	songErr       error
	searchRes     *dto.SearchSongsResponse
	searchErr     error
	createSongErr error
}

func (f *fakeCatalog) CreateRelease(_ context.Context, artistID string, req *dto.CreateReleaseRequest) (*dto.ReleaseDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &dto.ReleaseDTO{
		ID:          f.createdID,
		ArtistID:    artistID,
		Title:       req.Title,
		Type:        req.Type,
		ReleaseDate: req.ReleaseDate,
		SongIDs:     req.SongIDs,
	}, nil
}

func (f *fakeCatalog) GetRelease(context.Context, string) (*dto.ReleaseDTO, error) {
	if f.releaseErr != nil {
		return nil, f.releaseErr
	}
	return f.release, nil
}

func (f *fakeCatalog) ListReleases(context.Context, string, int, int) (*dto.ListReleasesResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResponse, nil
}

func (f *fakeCatalog) GetArtist(context.Context, string) (*dto.ArtistDTO, error) {
	f.mu.Lock()
	f.artistCalls++
	f.mu.Unlock()
	if f.artistErr != nil {
		return nil, f.artistErr
	}
	return f.artist, nil
}

func (f *fakeCatalog) CreateSong(_ context.Context, artistID string, req *dto.CreateSongRequest) (*dto.SongDTO, error) {
	if f.createSongErr != nil {
		return nil, f.createSongErr
	}
	return &dto.SongDTO{ID: "song-1", ArtistID: artistID, Title: req.Title, Duration: req.Duration}, nil
}

func (f *fakeCatalog) GetSong(context.Context, string) (*dto.SongDTO, error) {
	if f.songErr != nil {
		return nil, f.songErr
	}
	return f.song, nil
}

func (f *fakeCatalog) SearchSongs(context.Context, string, int, int) (*dto.SearchSongsResponse, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchRes, nil
}

// fakeMetricsClient records release_created events
type fakeMetricsClient struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeMetricsClient) RecordReleaseCreated(_ context.Context, releaseID, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, releaseID)
	return f.err
}

func (f *fakeMetricsClient) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}
