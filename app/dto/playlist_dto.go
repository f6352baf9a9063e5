package dto

// PlaylistDTO represents a playlist as returned by the playlist service
type PlaylistDTO struct {
	ID          string   `json:"id"`
	OwnerUserID string   `json:"owner_user_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Public      bool     `json:"public"`
	SongIDs     []string `json:"song_ids,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
}

// CreatePlaylistRequest represents the request to create a playlist
type CreatePlaylistRequest struct {
	OwnerUserID string  `json:"-"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Public      bool    `json:"public"`
}

// CreatePlaylistResponse represents the response to a playlist creation
type CreatePlaylistResponse struct {
	Message  string      `json:"message"`
	Playlist PlaylistDTO `json:"playlist"`
}

// AddPlaylistSongRequest represents the request to append a song to a playlist
type AddPlaylistSongRequest struct {
	PlaylistID string `json:"-"`
	UserID     string `json:"-"`
	SongID     string `json:"song_id" validate:"required"`
}

// RemovePlaylistSongRequest represents the request to remove a song from a playlist
type RemovePlaylistSongRequest struct {
	PlaylistID string `json:"-" validate:"required"`
	UserID     string `json:"-"`
	SongID     string `json:"-" validate:"required"`
}

// MutatePlaylistResponse represents the response to a playlist mutation
type MutatePlaylistResponse struct {
	Message  string      `json:"message"`
	Playlist PlaylistDTO `json:"playlist"`
}
