package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/middleware"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// PlaylistHandlerInterface defines the contract for playlist handlers
type PlaylistHandlerInterface interface {
	GetPlaylist(c fiber.Ctx) error
	CreatePlaylist(c fiber.Ctx) error
	AddSong(c fiber.Ctx) error
	RemoveSong(c fiber.Ctx) error
}

// PlaylistHandler handles playlist-related HTTP requests
type PlaylistHandler struct {
	flow      businessflow.PlaylistFlow
	validator *validator.Validate
}

// NewPlaylistHandler creates a new playlist handler
func NewPlaylistHandler(flow businessflow.PlaylistFlow) *PlaylistHandler {
	return &PlaylistHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

func (h *PlaylistHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *PlaylistHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetPlaylist returns a single playlist
// @Summary Get playlist
// @Description Retrieve a playlist by its ID
// @Tags Playlists
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistDTO} "Playlist retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Playlist not found"
// @Router /api/v1/playlists/{playlistId} [get]
func (h *PlaylistHandler) GetPlaylist(c fiber.Ctx) error {
	playlistID := c.Params("playlistId")

	playlist, err := h.flow.GetPlaylist(createRequestContext(c, "/api/v1/playlists/:playlistId"), playlistID)
	if err != nil {
		if businessflow.IsPlaylistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Playlist not found", "PLAYLIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch playlist", "PLAYLIST_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Playlist retrieved successfully", fiber.Map{
		"playlist": playlist,
	})
}

// CreatePlaylist creates a playlist owned by the authenticated user
// @Summary Create playlist
// @Description Create a new playlist for the authenticated user
// @Tags Playlists
// @Accept json
// @Produce json
// @Param request body dto.CreatePlaylistRequest true "Playlist data"
// @Success 201 {object} dto.APIResponse{data=dto.CreatePlaylistResponse} "Playlist created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/playlists [post]
func (h *PlaylistHandler) CreatePlaylist(c fiber.Ctx) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	var req dto.CreatePlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.flow.CreatePlaylist(createRequestContext(c, "/api/v1/playlists"), userID, &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to create playlist", "PLAYLIST_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, fiber.Map{
		"playlist": result.Playlist,
	})
}

// AddSong appends a song to one of the user's playlists
// @Summary Add song to playlist
// @Description Append a song to a playlist owned by the authenticated user
// @Tags Playlists
// @Accept json
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Param request body dto.AddPlaylistSongRequest true "Song reference"
// @Success 200 {object} dto.APIResponse{data=dto.MutatePlaylistResponse} "Song added to playlist"
// @Failure 404 {object} dto.APIResponse "Playlist not found"
// @Router /api/v1/playlists/{playlistId}/songs [post]
func (h *PlaylistHandler) AddSong(c fiber.Ctx) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}
	playlistID := c.Params("playlistId")

	var req dto.AddPlaylistSongRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		var validationErrors []string
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, getValidationErrorMessage(err))
		}
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors)
	}

	result, err := h.flow.AddSong(createRequestContext(c, "/api/v1/playlists/:playlistId/songs"), playlistID, userID, req.SongID)
	if err != nil {
		if businessflow.IsPlaylistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Playlist not found", "PLAYLIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to add song to playlist", "PLAYLIST_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, fiber.Map{
		"playlist": result.Playlist,
	})
}

// RemoveSong removes a song from one of the user's playlists
// @Summary Remove song from playlist
// @Description Remove a song from a playlist owned by the authenticated user
// @Tags Playlists
// @Produce json
// @Param playlistId path string true "Playlist ID"
// @Param songId path string true "Song ID"
// @Success 200 {object} dto.APIResponse{data=dto.MutatePlaylistResponse} "Song removed from playlist"
// @Failure 404 {object} dto.APIResponse "Playlist not found"
// @Router /api/v1/playlists/{playlistId}/songs/{songId} [delete]
func (h *PlaylistHandler) RemoveSong(c fiber.Ctx) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}
	playlistID := c.Params("playlistId")
	songID := c.Params("songId")

	result, err := h.flow.RemoveSong(createRequestContext(c, "/api/v1/playlists/:playlistId/songs/:songId"), playlistID, userID, songID)
	if err != nil {
		if businessflow.IsPlaylistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Playlist not found", "PLAYLIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to remove song from playlist", "PLAYLIST_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, fiber.Map{
		"playlist": result.Playlist,
	})
}
