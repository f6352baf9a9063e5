package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/middleware"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
)

// NotificationHandlerInterface defines the contract for notification handlers
type NotificationHandlerInterface interface {
	ListNotifications(c fiber.Ctx) error
	MarkRead(c fiber.Ctx) error
}

// NotificationHandler handles notification inbox HTTP requests
type NotificationHandler struct {
	flow businessflow.NotificationFlow
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(flow businessflow.NotificationFlow) *NotificationHandler {
	return &NotificationHandler{flow: flow}
}

func (h *NotificationHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *NotificationHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ListNotifications returns the authenticated user's notification inbox
// @Summary List notifications
// @Description Retrieve a page of the authenticated user's notifications
// @Tags Notifications
// @Produce json
// @Param unread_only query bool false "Only unread notifications"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ListNotificationsResponse} "Notifications retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) ListNotifications(c fiber.Ctx) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}

	unreadOnly := c.Query("unread_only") == "true"
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 0)

	result, err := h.flow.ListNotifications(createRequestContext(c, "/api/v1/notifications"), userID, unreadOnly, page, limit)
	if err != nil {
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to list notifications", "NOTIFICATION_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Notifications retrieved successfully", fiber.Map{
		"notifications": result.Notifications,
		"pagination":    result.Pagination,
	})
}

// MarkRead marks one of the authenticated user's notifications as read
// @Summary Mark notification read
// @Description Mark a single notification as read
// @Tags Notifications
// @Produce json
// @Param notificationId path string true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.MarkNotificationReadResponse} "Notification marked as read"
// @Failure 404 {object} dto.APIResponse "Notification not found"
// @Router /api/v1/notifications/{notificationId}/read [put]
func (h *NotificationHandler) MarkRead(c fiber.Ctx) error {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusUnauthorized, "User ID not found in context", "MISSING_USER_ID", nil)
	}
	notificationID := c.Params("notificationId")

	result, err := h.flow.MarkRead(createRequestContext(c, "/api/v1/notifications/:notificationId/read"), userID, notificationID)
	if err != nil {
		if businessflow.IsNotificationNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", "NOTIFICATION_NOT_FOUND", nil)
		}
		if businessflow.IsValidationError(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", err.Error())
		}
		return h.ErrorResponse(c, fiber.StatusBadGateway, "Failed to mark notification as read", "NOTIFICATION_UPDATE_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, result.Message, nil)
}
