package businessflow

import (
	"context"
	"fmt"

	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/resonatefm/resonate-gateway/utils"
)

// followerPager walks a user's complete follower list by driving the
// social-graph pagination to exhaustion. Pages are 1-based. The walk stops
// when the reported total_pages is reached, when a page comes back empty
// (inconsistent pagination metadata upstream), or at maxPages, whichever
// comes first.
type followerPager struct {
	social   services.SocialGraphClient
	pageSize int
	maxPages int
}

func newFollowerPager(social services.SocialGraphClient, cfg config.FanoutConfig) *followerPager {
	pageSize := cfg.FollowerPageSize
	if pageSize <= 0 {
		pageSize = utils.DefaultFollowerPageSize
	}
	maxPages := cfg.MaxPages
	if maxPages <= 0 {
		maxPages = utils.MaxFollowerPages
	}
	return &followerPager{
		social:   social,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}

// collectAll fetches follower pages in order, invoking visit once per
// non-empty page. It returns the number of pages fetched. A fetch error
// aborts the walk; pages already handed to visit stay handed out.
func (p *followerPager) collectAll(ctx context.Context, userID string, visit func(followerIDs []string)) (int, error) {
	if userID == "" {
		return 0, ErrUserIDRequired
	}

	pagesFetched := 0
	for page := 1; page <= p.maxPages; page++ {
		pageDTO, err := p.social.GetFollowersPage(ctx, userID, page, p.pageSize)
		if err != nil {
			return pagesFetched, fmt.Errorf("failed to fetch follower page %d: %w", page, err)
		}
		pagesFetched++
		fanoutPagesFetchedTotal.Inc()

		// An empty page terminates the walk even if total_pages claims more;
		// a total_pages of 0 lands here on the first iteration.
		if len(pageDTO.Followers) == 0 {
			break
		}

		followerIDs := make([]string, 0, len(pageDTO.Followers))
		for _, follower := range pageDTO.Followers {
			followerIDs = append(followerIDs, follower.UID)
		}
		visit(followerIDs)

		if page >= pageDTO.Pagination.TotalPages {
			break
		}
	}

	return pagesFetched, nil
}
