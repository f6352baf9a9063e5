package dto

// UserProfileDTO represents a user profile as returned by the user service
type UserProfileDTO struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// GetProfileResponse represents the response to a profile lookup
type GetProfileResponse struct {
	Profile UserProfileDTO `json:"profile"`
}

// FollowerDTO represents one follower entry from the social-graph service
type FollowerDTO struct {
	UID string `json:"uid"`
}

// FollowersPageDTO represents one page of a user's followers
type FollowersPageDTO struct {
	Followers  []FollowerDTO `json:"followers"`
	Pagination PaginationDTO `json:"pagination"`
}

// ListFollowersRequest represents the request to list a user's followers
type ListFollowersRequest struct {
	UserID string `json:"-" validate:"required"`
	Page   int    `json:"-" validate:"omitempty,gte=1"`
	Limit  int    `json:"-" validate:"omitempty,gte=1,lte=100"`
}
