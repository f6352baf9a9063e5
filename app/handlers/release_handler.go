package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// ReleaseHandlerInterface defines the contract for release handlers
type ReleaseHandlerInterface interface {
	CreateRelease(c fiber.Ctx) error
	GetRelease(c fiber.Ctx) error
	ListReleases(c fiber.Ctx) error
}

// ReleaseHandler handles release-related HTTP requests
type ReleaseHandler struct {
	flow      businessflow.ReleaseFlow
	validator *validator.Validate
}

// NewReleaseHandler creates a new release handler
func NewReleaseHandler(flow businessflow.ReleaseFlow) *ReleaseHandler {
	return &ReleaseHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

func (h *ReleaseHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *ReleaseHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreateRelease publishes a new release for an artist
// @Summary Publish release
// @Description Create a release in the catalog and notify the artist's followers
// @Tags Releases
// @Accept json
// @Produce json
// @Param artistId path string true "Artist ID"
// @Param request body dto.CreateReleaseRequest true "Release data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateReleaseResponse} "Release created successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 502 {object} dto.APIResponse "Catalog service error"
// @Router /api/v1/artists/{artistId}/releases [post]
func (h *ReleaseHandler) CreateRelease(c fiber.Ctx) error {
	artistID := c.Params("artistId")

	var req dto.CreateReleaseRequest
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

	result, err := h.flow.CreateRelease(createRequestContext(c, "/api/v1/artists/:artistId/releases"), artistID, &req, clientMetadata(c))
	if err != nil {
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to create release", "RELEASE_CREATION_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusCreated, result.Message, fiber.Map{
		"release": result.Release,
	})
}

// GetRelease returns a single release
// @Summary Get release
// @Description Retrieve a release by its ID
// @Tags Releases
// @Produce json
// @Param releaseId path string true "Release ID"
// @Success 200 {object} dto.APIResponse{data=dto.ReleaseDTO} "Release retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Release not found"
// @Router /api/v1/releases/{releaseId} [get]
func (h *ReleaseHandler) GetRelease(c fiber.Ctx) error {
	releaseID := c.Params("releaseId")

	release, err := h.flow.GetRelease(createRequestContext(c, "/api/v1/releases/:releaseId"), releaseID)
	if err != nil {
		if businessflow.IsReleaseNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Release not found", "RELEASE_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch release", "RELEASE_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Release retrieved successfully", fiber.Map{
		"release": release,
	})
}

// ListReleases returns a page of an artist's releases
// @Summary List releases
// @Description Retrieve an artist's releases, newest first
// @Tags Releases
// @Produce json
// @Param artistId path string true "Artist ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListReleasesResponse} "Releases retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Artist not found"
// @Router /api/v1/artists/{artistId}/releases [get]
func (h *ReleaseHandler) ListReleases(c fiber.Ctx) error {
	artistID := c.Params("artistId")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	result, err := h.flow.ListReleases(createRequestContext(c, "/api/v1/artists/:artistId/releases"), artistID, page, limit)
	if err != nil {
		if businessflow.IsArtistNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Artist not found", "ARTIST_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to list releases", "RELEASE_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Releases retrieved successfully", fiber.Map{
		"releases":   result.Releases,
		"pagination": result.Pagination,
	})
}
