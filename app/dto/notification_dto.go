package dto

// NotificationDTO represents a stored notification returned by the notification service
type NotificationDTO struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt string         `json:"created_at,omitempty"`
}

// ListNotificationsRequest represents the request to list a user's notifications
type ListNotificationsRequest struct {
	UserID     string `json:"-" validate:"required"`
	UnreadOnly bool   `json:"-"`
	Page       int    `json:"-" validate:"omitempty,gte=1"`
	Limit      int    `json:"-" validate:"omitempty,gte=1,lte=100"`
}

// ListNotificationsResponse represents a page of a user's notifications
type ListNotificationsResponse struct {
	Notifications []NotificationDTO `json:"notifications"`
	Pagination    PaginationDTO     `json:"pagination"`
}

// MarkNotificationReadRequest represents the request to mark one notification as read
type MarkNotificationReadRequest struct {
	UserID         string `json:"-" validate:"required"`
	NotificationID string `json:"-" validate:"required"`
}

// MarkNotificationReadResponse represents the response to a mark-as-read call
type MarkNotificationReadResponse struct {
	Message string `json:"message"`
}
