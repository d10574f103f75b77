package customerRepo

import (
	"context"
	"fmt"
	"time"

	"horselink/database"
	"horselink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCustomerRepo implements CustomerRepository using MongoDB.
type MongoCustomerRepo struct {
	customerColl *mongo.Collection
}

// NewMongoCustomerRepo constructs a new instance of MongoCustomerRepo.
func NewMongoCustomerRepo() CustomerRepository {
	return &MongoCustomerRepo{
		customerColl: database.DB().Collection("customers"),
	}
}

func (repo *MongoCustomerRepo) GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := repo.customerColl.FindOne(ctx, bson.M{"id": customerID}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching customer with id %s: %w", customerID, err)
	}
	return &customer, nil
}
