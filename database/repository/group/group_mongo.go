package groupRepo

import (
	"context"
	"fmt"
	"time"

	"horselink/database"
	"horselink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoGroupRepo implements GroupRepository using MongoDB.
type MongoGroupRepo struct {
	groupColl *mongo.Collection
}

// NewMongoGroupRepo constructs a new instance of MongoGroupRepo.
func NewMongoGroupRepo() GroupRepository {
	return &MongoGroupRepo{
		groupColl: database.DB().Collection("group_bookings"),
	}
}

func (repo *MongoGroupRepo) CreateRequest(ctx context.Context, request *models.GroupBookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.groupColl.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to insert group booking request: %w", err)
	}
	return nil
}

func (repo *MongoGroupRepo) GetRequestByID(ctx context.Context, requestID string) (*models.GroupBookingRequest, error) {
	return repo.findRequest(ctx, bson.M{"id": requestID})
}

func (repo *MongoGroupRepo) GetRequestByInviteCode(ctx context.Context, inviteCode string) (*models.GroupBookingRequest, error) {
	return repo.findRequest(ctx, bson.M{"inviteCode": inviteCode})
}

func (repo *MongoGroupRepo) findRequest(ctx context.Context, filter bson.M) (*models.GroupBookingRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var request models.GroupBookingRequest
	if err := repo.groupColl.FindOne(ctx, filter).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching group booking request: %w", err)
	}
	return &request, nil
}

func (repo *MongoGroupRepo) UpdateRequest(ctx context.Context, request *models.GroupBookingRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	request.UpdatedAt = time.Now()
	res, err := repo.groupColl.ReplaceOne(ctx, bson.M{"id": request.ID}, request)
	if err != nil {
		return fmt.Errorf("failed to update group booking request: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("group booking request %s not found", request.ID)
	}
	return nil
}
