package businessflow

import (
	"context"
	"strings"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/utils"
)

// UserFlow interface defines the user profile business logic
type UserFlow interface {
	GetProfile(ctx context.Context, userID string) (*dto.UserProfileDTO, error)
	ListFollowers(ctx context.Context, userID string, page, limit int) (*dto.FollowersPageDTO, error)
}

// UserFlowImpl implements the user business flow
type UserFlowImpl struct {
	users  services.UserClient
	social services.SocialGraphClient
}

// NewUserFlow creates a new user flow
func NewUserFlow(users services.UserClient, social services.SocialGraphClient) UserFlow {
	return &UserFlowImpl{
		users:  users,
		social: social,
	}
}

// GetProfile fetches a user profile
func (s *UserFlowImpl) GetProfile(ctx context.Context, userID string) (*dto.UserProfileDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewBusinessError("USER_VALIDATION_FAILED", "User validation failed", ErrUserIDRequired)
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("USER_NOT_FOUND", "User not found", ErrUserNotFound)
		}
		return nil, NewBusinessError("USER_FETCH_FAILED", "Failed to fetch user profile", err)
	}
	return profile, nil
}

// ListFollowers forwards one page of a user's followers
func (s *UserFlowImpl) ListFollowers(ctx context.Context, userID string, page, limit int) (*dto.FollowersPageDTO, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewBusinessError("USER_VALIDATION_FAILED", "User validation failed", ErrUserIDRequired)
	}

	page, limit = normalizePage(page, limit, utils.DefaultFollowerPageSize)
	followers, err := s.social.GetFollowersPage(ctx, userID, page, limit)
	if err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("USER_NOT_FOUND", "User not found", ErrUserNotFound)
		}
		return nil, NewBusinessError("FOLLOWER_LIST_FAILED", "Failed to list followers", err)
	}
	return followers, nil
}
