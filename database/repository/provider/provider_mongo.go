package providerRepo

import (
	"context"
	"fmt"
	"time"

	"horselink/database"
	"horselink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	providerColl *mongo.Collection
}

// NewMongoProviderRepo constructs a new instance of MongoProviderRepo.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{
		providerColl: database.DB().Collection("providers"),
	}
}

func (repo *MongoProviderRepo) GetProviderByID(ctx context.Context, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.Provider
	filter := bson.M{"id": providerID}
	if err := repo.providerColl.FindOne(ctx, filter).Decode(&provider); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching provider with id %s: %w", providerID, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) UpdateWeeklyHours(ctx context.Context, providerID string, hours map[string]models.DayHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"weeklyHours": hours,
		"updatedAt":   time.Now(),
	}}
	res, err := repo.providerColl.UpdateOne(ctx, bson.M{"id": providerID}, update)
	if err != nil {
		return fmt.Errorf("failed to update weekly hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", providerID)
	}
	return nil
}
