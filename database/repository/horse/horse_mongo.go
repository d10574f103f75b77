package horseRepo

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

// MongoHorseRepo implements HorseRepository using MongoDB.
type MongoHorseRepo struct {
	horseColl    *mongo.Collection
	serviceColl  *mongo.Collection
	overrideColl *mongo.Collection
}

// NewMongoHorseRepo constructs a new instance of MongoHorseRepo.
func NewMongoHorseRepo() HorseRepository {
	db := database.DB()
	return &MongoHorseRepo{
		horseColl:    db.Collection("horses"),
		serviceColl:  db.Collection("care_services"),
		overrideColl: db.Collection("interval_overrides"),
	}
}

func (repo *MongoHorseRepo) GetHorseByID(ctx context.Context, horseID string) (*models.Horse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var horse models.Horse
	if err := repo.horseColl.FindOne(ctx, bson.M{"id": horseID}).Decode(&horse); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching horse with id %s: %w", horseID, err)
	}
	return &horse, nil
}

func (repo *MongoHorseRepo) GetHorsesByOwner(ctx context.Context, ownerID string) ([]models.Horse, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.horseColl.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("error fetching horses for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var horses []models.Horse
	if err := cursor.All(ctx, &horses); err != nil {
		return nil, fmt.Errorf("error decoding horses: %w", err)
	}
	return horses, nil
}

func (repo *MongoHorseRepo) GetCareService(ctx context.Context, serviceID string) (*models.CareService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.CareService
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching care service %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (repo *MongoHorseRepo) ListCareServices(ctx context.Context) ([]models.CareService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing care services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.CareService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding care services: %w", err)
	}
	return services, nil
}

func (repo *MongoHorseRepo) GetHorseOverride(ctx context.Context, horseID, serviceID string) (*models.IntervalOverride, error) {
	return repo.findOverride(ctx, bson.M{"horseId": horseID, "serviceId": serviceID})
}

func (repo *MongoHorseRepo) GetCustomerOverride(ctx context.Context, customerID, serviceID string) (*models.IntervalOverride, error) {
	return repo.findOverride(ctx, bson.M{"customerId": customerID, "serviceId": serviceID, "horseId": bson.M{"$exists": false}})
}

func (repo *MongoHorseRepo) findOverride(ctx context.Context, filter bson.M) (*models.IntervalOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var override models.IntervalOverride
	if err := repo.overrideColl.FindOne(ctx, filter).Decode(&override); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching interval override: %w", err)
	}
	return &override, nil
}

func (repo *MongoHorseRepo) UpsertOverride(ctx context.Context, override *models.IntervalOverride) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"serviceId": override.ServiceID}
	if override.HorseID != "" {
		filter["horseId"] = override.HorseID
	} else {
		filter["customerId"] = override.CustomerID
		filter["horseId"] = bson.M{"$exists": false}
	}
	override.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := repo.overrideColl.ReplaceOne(ctx, filter, override, opts); err != nil {
		return fmt.Errorf("failed to upsert interval override: %w", err)
	}
	return nil
}
