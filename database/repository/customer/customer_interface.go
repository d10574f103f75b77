package customerRepo

import (
	"context"

	"horselink/models"
)

// CustomerRepository is the storage contract for customer records.
type CustomerRepository interface {
	GetCustomerByID(ctx context.Context, customerID string) (*models.Customer, error)
}
