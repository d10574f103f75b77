package notificationRepo

import (
	"context"

	"horselink/models"
)

// NotificationRepository is the storage contract for in-app notifications.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}
