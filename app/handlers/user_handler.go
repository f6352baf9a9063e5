package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/middleware"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// UserHandlerInterface defines the contract for user handlers
type UserHandlerInterface interface {
	GetProfile(c fiber.Ctx) error
	ListFollowers(c fiber.Ctx) error
}

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	flow businessflow.UserFlow
}

// NewUserHandler creates a new user handler
func NewUserHandler(flow businessflow.UserFlow) *UserHandler {
	return &UserHandler{flow: flow}
}

func (h *UserHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *UserHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// GetProfile returns a user's public profile
// @Summary Get user profile
// @Description Retrieve a user profile by ID
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.GetProfileResponse} "Profile retrieved successfully"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/v1/users/{userId} [get]
func (h *UserHandler) GetProfile(c fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "me" {
		authUserID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required", "AUTH_REQUIRED", nil)
		}
		userID = authUserID
	}

	profile, err := h.flow.GetProfile(createRequestContext(c, "/api/v1/users/:userId"), userID)
	if err != nil {
		if businessflow.IsUserNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to fetch profile", "USER_FETCH_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Profile retrieved successfully", fiber.Map{
		"profile": profile,
	})
}

// ListFollowers returns one page of a user's followers
// @Summary List followers
// @Description Retrieve a page of the user's followers from the social graph
// @Tags Users
// @Produce json
// @Param userId path string true "User ID"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.FollowersPageDTO} "Followers retrieved successfully"
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/v1/users/{userId}/followers [get]
func (h *UserHandler) ListFollowers(c fiber.Ctx) error {
	userID := c.Params("userId")
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	result, err := h.flow.ListFollowers(createRequestContext(c, "/api/v1/users/:userId/followers"), userID, page, limit)
	if err != nil {
		if businessflow.IsUserNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "User not found", "USER_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to list followers", "FOLLOWER_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Followers retrieved successfully", fiber.Map{
		"followers":  result.Followers,
		"pagination": result.Pagination,
	})
}
