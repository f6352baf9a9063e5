package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// ArtistHandlerInterface defines the contract for artist handlers
type ArtistHandlerInterface interface {
	GetArtist(c fiber.Ctx) error
	GetFollowerCount(c fiber.Ctx) error
}

// ArtistHandler handles artist-related HTTP requests
type ArtistHandler struct {
	flow businessflow.ArtistFlow
}

// NewArtistHandler creates a new artist handler
func NewArtistHandler(flow businessflow.ArtistFlow) *ArtistHandler {
	return &ArtistHandler{flow: flow}
}

func (h *ArtistHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ArtistHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetArtist returns an artist profile
// @Summary Get artist
// @Description Retrieve an artist profile by ID
// @Tags Artists
// @Produce json
// @Param artistId path string true "Artist ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetArtistResponse} "Artist retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Artist not found"
// @Router /api/v1/artists/{artistId} [get]
func (h *ArtistHandler) GetArtist(c fiber.Ctx) error {
	artistID := c.Params("artistId")

	artist, err := h.flow.GetArtist(createRequestContext(c, "/api/v1/artists/:artistId"), artistID)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch artist", "ARTIST_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Artist retrieved successfully", fiber.Map{
		"artist": artist,
	})
}

// GetFollowerCount returns the follower total of an artist's owner account
// @Summary Get follower count
// @Description Retrieve the number of users following an artist
// @Tags Artists
// @Produce json
// @Param artistId path string true "Artist ID"
// @Success 200 {object} dto.APIResponse{data=dto.FollowerCountResponse} "Follower count retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Artist not found"
// @Router /api/v1/artists/{artistId}/followers/count [get]
func (h *ArtistHandler) GetFollowerCount(c fiber.Ctx) error {
	artistID := c.Params("artistId")

	result, err := h.flow.GetFollowerCount(createRequestContext(c, "/api/v1/artists/:artistId/followers/count"), artistID)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch follower count", "FOLLOWER_COUNT_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Follower count retrieved successfully", result)
}
