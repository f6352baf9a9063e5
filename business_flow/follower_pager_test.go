package businessflow

import (
	"context"
	"testing"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowerPager_WalksToTotalPages(t *testing.T) {
	social := &fakeSocialGraph{pages: followerPages(130, 50)}
	pager := newFollowerPager(social, testFanoutConfig())

	var visited [][]string
	pages, err := pager.collectAll(context.Background(), "user-owner", func(ids []string) {
		visited = append(visited, ids)
	})

	require.NoError(t, err)
	assert.Equal(t, 3, pages)
	require.Len(t, visited, 3)
	assert.Len(t, visited[0], 50)
	assert.Len(t, visited[1], 50)
	assert.Len(t, visited[2], 30)
	assert.Equal(t, "follower-1", visited[0][0])
	assert.Equal(t, "follower-130", visited[2][29])
}

func TestFollowerPager_EmptyPageStopsWalk(t *testing.T) {
	// The second page is empty even though total_pages claims five more
	pages := followerPages(50, 50)
	pages[0].Pagination.TotalPages = 6
	pages = append(pages, &dto.FollowersPageDTO{
		Pagination: dto.PaginationDTO{Page: 2, Limit: 50, TotalPages: 6},
	})

	social := &fakeSocialGraph{pages: pages}
	pager := newFollowerPager(social, testFanoutConfig())

	var visits int
	fetched, err := pager.collectAll(context.Background(), "user-owner", func([]string) { visits++ })

	require.NoError(t, err)
	assert.Equal(t, 2, fetched)
	assert.Equal(t, 1, visits)
}

func TestFollowerPager_MaxPagesCeiling(t *testing.T) {
	// Every page reports more pages ahead; the ceiling must stop the walk.
	pages := followerPages(500, 50)
	for _, p := range pages {
		p.Pagination.TotalPages = 1 << 20
	}

	social := &fakeSocialGraph{pages: pages}
	cfg := testFanoutConfig()
	cfg.MaxPages = 3
	pager := newFollowerPager(social, cfg)

	fetched, err := pager.collectAll(context.Background(), "user-owner", func([]string) {})

	require.NoError(t, err)
	assert.Equal(t, 3, fetched)
	assert.Len(t, social.recordedCalls(), 3)
}

func TestFollowerPager_FetchErrorAbortsWalk(t *testing.T) {
	social := &fakeSocialGraph{pages: followerPages(150, 50), failOnPage: 3}
	pager := newFollowerPager(social, testFanoutConfig())

	var visits int
	fetched, err := pager.collectAll(context.Background(), "user-owner", func([]string) { visits++ })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3")
	assert.Equal(t, 2, fetched)
	assert.Equal(t, 2, visits)
}

func TestFollowerPager_RequiresUserID(t *testing.T) {
	pager := newFollowerPager(&fakeSocialGraph{}, testFanoutConfig())

	fetched, err := pager.collectAll(context.Background(), "", func([]string) {
		t.Fatal("visit must not be called")
	})

	assert.ErrorIs(t, err, ErrUserIDRequired)
	assert.Zero(t, fetched)
}
