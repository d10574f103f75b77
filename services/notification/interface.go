package notification

import (
	"context"
	"fmt"
	"time"

	notificationRepo "horselink/database/repository/notification"
	"horselink/models"

	"github.com/google/uuid"
)

// NotificationService creates and lists in-app notifications.
type NotificationService interface {
	CreateNotification(ctx context.Context, input models.NotificationInput) error
	ListNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (s *DefaultNotificationService) CreateNotification(ctx context.Context, input models.NotificationInput) error {
	if input.UserID == "" {
		return fmt.Errorf("notification requires a userId")
	}
	n := models.Notification{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Type:      input.Type,
		Message:   input.Message,
		LinkURL:   input.LinkURL,
		Metadata:  input.Metadata,
		CreatedAt: time.Now(),
	}
	if err := s.Repo.CreateNotification(ctx, &n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) ListNotifications(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.Repo.MarkRead(ctx, notificationID)
}
