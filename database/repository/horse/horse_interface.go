package horseRepo

import (
	"context"

	"horselink/models"
)

// HorseRepository is the storage contract for horses, the care-service
// catalogue and interval-override records.
type HorseRepository interface {
	GetHorseByID(ctx context.Context, horseID string) (*models.Horse, error)
	GetHorsesByOwner(ctx context.Context, ownerID string) ([]models.Horse, error)

	GetCareService(ctx context.Context, serviceID string) (*models.CareService, error)
	ListCareServices(ctx context.Context) ([]models.CareService, error)

	// GetHorseOverride returns the provider-set override for one horse+service
	// pair, nil when none exists.
	GetHorseOverride(ctx context.Context, horseID, serviceID string) (*models.IntervalOverride, error)
	// GetCustomerOverride returns the customer-wide override for a service,
	// nil when none exists.
	GetCustomerOverride(ctx context.Context, customerID, serviceID string) (*models.IntervalOverride, error)
	UpsertOverride(ctx context.Context, override *models.IntervalOverride) error
}
