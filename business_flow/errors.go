// Package businessflow contains the core business logic and use cases for the gateway
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Release-related errors
	ErrArtistIDRequired     = errors.New("artist ID is required")
	ErrReleaseTitleRequired = errors.New("release title is required")
	ErrInvalidReleaseType   = errors.New("release type must be one of: album, single, ep")
	ErrInvalidReleaseDate   = errors.New("release date must be a valid calendar date")
	ErrInvalidCoverURL      = errors.New("cover URL is invalid")
	ErrSongIDRequired       = errors.New("song IDs must be non-empty strings")
	ErrReleaseNotFound      = errors.New("release not found")
	ErrReleaseIDRequired    = errors.New("release ID is required")

	// Artist-related errors
	ErrArtistNotFound = errors.New("artist not found")

	// Song-related errors
	ErrSongNotFound       = errors.New("song not found")
	ErrSongIDMissing      = errors.New("song ID is required")
	ErrSongTitleRequired  = errors.New("song title is required")
	ErrSearchQueryMissing = errors.New("search query is required")

	// Playlist-related errors
	ErrPlaylistNotFound     = errors.New("playlist not found")
	ErrPlaylistIDRequired   = errors.New("playlist ID is required")
	ErrPlaylistNameRequired = errors.New("playlist name is required")

	// User-related errors
	ErrUserNotFound   = errors.New("user not found")
	ErrUserIDRequired = errors.New("user ID is required")

	// Notification-related errors
	ErrNotificationNotFound   = errors.New("notification not found")
	ErrNotificationIDRequired = errors.New("notification ID is required")

	// Pagination errors
	ErrInvalidPageSize = errors.New("page size must be positive")
)

// BusinessError represents a business logic error with structured information
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewBusinessErrorf creates a new business error with a formatted message
func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsArtistNotFound(err error) bool {
	return errors.Is(err, ErrArtistNotFound)
}

func IsReleaseNotFound(err error) bool {
	return errors.Is(err, ErrReleaseNotFound)
}

func IsSongNotFound(err error) bool {
	return errors.Is(err, ErrSongNotFound)
}

func IsPlaylistNotFound(err error) bool {
	return errors.Is(err, ErrPlaylistNotFound)
}

func IsUserNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

func IsNotificationNotFound(err error) bool {
	return errors.Is(err, ErrNotificationNotFound)
}

// IsValidationError reports whether err stems from request validation rather
// than a downstream failure
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrArtistIDRequired,
		ErrReleaseTitleRequired,
		ErrInvalidReleaseType,
		ErrInvalidReleaseDate,
		ErrInvalidCoverURL,
		ErrSongIDRequired,
		ErrReleaseIDRequired,
		ErrSongIDMissing,
		ErrSongTitleRequired,
		ErrSearchQueryMissing,
		ErrPlaylistIDRequired,
		ErrPlaylistNameRequired,
		ErrUserIDRequired,
		ErrNotificationIDRequired,
		ErrInvalidPageSize,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
