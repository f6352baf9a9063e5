package dto

// SongDTO represents a song as returned by the catalog service
type SongDTO struct {
	ID        string  `json:"id"`
	ArtistID  string  `json:"artist_id"`
	ReleaseID *string `json:"release_id,omitempty"`
	Title     string  `json:"title"`
	Duration  int     `json:"duration_seconds"`
	TrackNo   *int    `json:"track_no,omitempty"`
	Explicit  bool    `json:"explicit"`
	AudioURL  *string `json:"audio_url,omitempty"`
}

// CreateSongRequest represents the request to register a song for an artist
type CreateSongRequest struct {
	ArtistID string  `json:"-"`
	Title    string  `json:"title" validate:"required,max=255"`
	Duration int     `json:"duration_seconds" validate:"required,gte=1"`
	TrackNo  *int    `json:"track_no,omitempty" validate:"omitempty,gte=1"`
	Explicit bool    `json:"explicit"`
	AudioURL *string `json:"audio_url,omitempty" validate:"omitempty,url"`
}

// CreateSongResponse represents the response to a song registration
type CreateSongResponse struct {
	Message string  `json:"message"`
	Song    SongDTO `json:"song"`
}

// SearchSongsRequest represents a song search forwarded to the catalog
type SearchSongsRequest struct {
	Query string `json:"-" validate:"required,min=1,max=255"`
	Page  int    `json:"-" validate:"omitempty,gte=1"`
	Limit int    `json:"-" validate:"omitempty,gte=1,lte=100"`
}

// SearchSongsResponse represents a page of song search results
type SearchSongsResponse struct {
	Songs      []SongDTO     `json:"songs"`
	Pagination PaginationDTO `json:"pagination"`
}
