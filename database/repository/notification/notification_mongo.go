package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"horselink/database"
	"horselink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	notificationColl *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() NotificationRepository {
	return &MongoNotificationRepo{
		notificationColl: database.DB().Collection("notifications"),
	}
}

func (repo *MongoNotificationRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.notificationColl.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

func (repo *MongoNotificationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := repo.notificationColl.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return notifications, nil
}

func (repo *MongoNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.notificationColl.UpdateOne(ctx,
		bson.M{"id": notificationID},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found", notificationID)
	}
	return nil
}
