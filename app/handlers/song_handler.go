package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// SongHandlerInterface defines the contract for song handlers
type SongHandlerInterface interface {
	CreateSong(c fiber.Ctx) error
	GetSong(c fiber.Ctx) error
	SearchSongs(c fiber.Ctx) error
}

// SongHandler handles song-related HTTP requests
type SongHandler struct {
	flow      businessflow.SongFlow
	validator *validator.Validate
}

// NewSongHandler creates a new song handler
func NewSongHandler(flow businessflow.SongFlow) *SongHandler {
	return &SongHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

func (h *SongHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *SongHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateSong registers a new song for an artist
// @Summary Register song
// @Description Create a song in the catalog for later inclusion in a release
// @Tags Songs
// @Accept json
// @Produce json
// @Param artistId path string true "Artist ID"
// @Param request body dto.CreateSongRequest true "Song data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateSongResponse} "Song created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/artists/{artistId}/songs [post]
func (h *SongHandler) CreateSong(c fiber.Ctx) error {
	artistID := c.Params("artistId")

	var req dto.CreateSongRequest
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

	result, err := h.flow.CreateSong(createRequestContext(c, "/api/v1/artists/:artistId/songs"), artistID, &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to create song", "SONG_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, fiber.Map{
		"song": result.Song,
	})
}

// GetSong returns a single song
// @Summary Get song
// @Description Retrieve a song by its ID
// @Tags Songs
// @Produce json
// @Param songId path string true "Song ID"
// @Success 200 {object} dto.APIResponse{data=dto.SongDTO} "Song retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Song not found"
// @Router /api/v1/songs/{songId} [get]
func (h *SongHandler) GetSong(c fiber.Ctx) error {
	songID := c.Params("songId")

	song, err := h.flow.GetSong(createRequestContext(c, "/api/v1/songs/:songId"), songID)
	if err != nil {
		if businessflow.IsSongNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Song not found", "SONG_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch song", "SONG_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Song retrieved successfully", fiber.Map{
		"song": song,
	})
}

// SearchSongs forwards a song search to the catalog
// @Summary Search songs
// @Description Search the catalog for songs by title
// @Tags Songs
// @Produce json
// @Param q query string true "Search query"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.SearchSongsResponse} "Search completed successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Router /api/v1/songs [get]
func (h *SongHandler) SearchSongs(c fiber.Ctx) error {
	query := c.Query("q")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	result, err := h.flow.SearchSongs(createRequestContext(c, "/api/v1/songs"), query, page, limit)
	if err != nil {
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to search songs", "SONG_SEARCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Search completed successfully", fiber.Map{
		"songs":      result.Songs,
		"pagination": result.Pagination,
	})
}
