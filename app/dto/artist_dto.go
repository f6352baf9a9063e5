package dto

// ArtistDTO represents an artist as returned by the catalog service
type ArtistDTO struct {
	ID          string  `json:"id"`
	OwnerUserID string  `json:"owner_user_id"`
	Name        string  `json:"name"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Verified    bool    `json:"verified"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

// GetArtistResponse represents the response to an artist lookup
type GetArtistResponse struct {
	Artist ArtistDTO `json:"artist"`
}

// FollowerCountResponse represents the follower count of an artist's owner
type FollowerCountResponse struct {
	ArtistID string `json:"artist_id"`
	Total    int    `json:"total"`
}
