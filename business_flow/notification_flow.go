package businessflow

import (
	"context"
	"strings"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/app/services"
	"github.com/resonatefm/resonate-gateway/utils"
)

// NotificationFlow interface defines the notification inbox business logic
type NotificationFlow interface {
	ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*dto.ListNotificationsResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) (*dto.MarkNotificationReadResponse, error)
}

// NotificationFlowImpl implements the notification inbox business flow
type NotificationFlowImpl struct {
	notifier services.NotificationClient
}

// NewNotificationFlow creates a new notification flow
func NewNotificationFlow(notifier services.NotificationClient) NotificationFlow {
	return &NotificationFlowImpl{notifier: notifier}
}

// ListNotifications fetches one page of a user's stored notifications
func (s *NotificationFlowImpl) ListNotifications(ctx context.Context, userID string, unreadOnly bool, page, limit int) (*dto.ListNotificationsResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewBusinessError("NOTIFICATION_VALIDATION_FAILED", "Notification validation failed", ErrUserIDRequired)
	}

	page, limit = normalizePage(page, limit, utils.DefaultFollowerPageSize)
	notifications, err := s.notifier.ListNotifications(ctx, userID, unreadOnly, page, limit)
	if err != nil {
		return nil, NewBusinessError("NOTIFICATION_LIST_FAILED", "Failed to list notifications", err)
	}
	return notifications, nil
}

// MarkRead marks one of the user's notifications as read
func (s *NotificationFlowImpl) MarkRead(ctx context.Context, userID, notificationID string) (*dto.MarkNotificationReadResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewBusinessError("NOTIFICATION_VALIDATION_FAILED", "Notification validation failed", ErrUserIDRequired)
	}
	if strings.TrimSpace(notificationID) == "" {
		return nil, NewBusinessError("NOTIFICATION_VALIDATION_FAILED", "Notification validation failed", ErrNotificationIDRequired)
	}

	if err := s.notifier.MarkRead(ctx, userID, notificationID); err != nil {
		if services.IsNotFound(err) {
			return nil, NewBusinessError("NOTIFICATION_NOT_FOUND", "Notification not found", ErrNotificationNotFound)
		}
		return nil, NewBusinessError("NOTIFICATION_UPDATE_FAILED", "Failed to mark notification as read", err)
	}

	return &dto.MarkNotificationReadResponse{
		Message: "Notification marked as read",
	}, nil
}
