package dto

// CreateReleaseRequest represents the request to publish a new release
type CreateReleaseRequest struct {
	ArtistID    string   `json:"-"`
	Title       string   `json:"title" validate:"required,max=255"`
	Type        string   `json:"type" validate:"required,oneof=album single ep"`
	ReleaseDate string   `json:"release_date" validate:"required,release_date"`
	CoverURL    *string  `json:"cover_url,omitempty" validate:"omitempty,url"`
	SongIDs     []string `json:"song_ids,omitempty" validate:"omitempty,dive,min=1"`
}

// ReleaseDTO represents a release as returned by the catalog service
type ReleaseDTO struct {
	ID          string   `json:"id"`
	ArtistID    string   `json:"artist_id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	ReleaseDate string   `json:"release_date"`
	CoverURL    *string  `json:"cover_url,omitempty"`
	SongIDs     []string `json:"song_ids,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// CreateReleaseResponse represents the response to a release creation
type CreateReleaseResponse struct {
	Message string     `json:"message"`
	Release ReleaseDTO `json:"release"`
}

// GetReleaseRequest represents the request to fetch a single release
type GetReleaseRequest struct {
	ReleaseID string `json:"-" validate:"required"`
}

// ListReleasesRequest represents the request to list an artist's releases
type ListReleasesRequest struct {
	ArtistID string `json:"-" validate:"required"`
	Page     int    `json:"page" validate:"omitempty,gte=1"`
	Limit    int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// ListReleasesResponse represents a page of an artist's releases
type ListReleasesResponse struct {
	Releases   []ReleaseDTO  `json:"releases"`
	Pagination PaginationDTO `json:"pagination"`
}
