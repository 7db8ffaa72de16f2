package domain

import (
	"time"
)

var (
	MessageSuccessGetNotifications   = "notifications retrieved successfully"
	MessageSuccessMarkNotification   = "notification marked as read"
	MessageSuccessMarkAllRead        = "all notifications marked as read"
	MessageSuccessDeleteNotification = "notification deleted successfully"
	MessageSuccessClearNotifications = "notifications cleared successfully"

	MessageFailedGetNotifications   = "failed to retrieve notifications"
	MessageFailedMarkNotification   = "failed to mark notification as read"
	MessageFailedDeleteNotification = "failed to delete notification"
	MessageFailedClearNotifications = "failed to clear notifications"

	ErrNotificationNotFound = NewNotFoundError("Notification not found")
)

// NotificationChannel is the pub/sub channel a user's notifications fan out on.
func NotificationChannel(userID string) string {
	return "notifications:" + userID
}

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
