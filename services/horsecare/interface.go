package horsecare

import (
	"context"
	"time"

	"horselink/models"
)

// DueForServiceService derives recurring-maintenance reminders from booking
// history and the three-tier interval configuration.
type DueForServiceService interface {
	// ListDueForService computes the due-for-service entries for all of a
	// customer's horses, most overdue first. Horses with no recurrence
	// configured at any tier are excluded.
	ListDueForService(ctx context.Context, customerID string, now time.Time) ([]models.DueForServiceResult, error)
}

// ResultCache is the cache port for derived due-for-service lists. Tests
// substitute an in-memory or no-op implementation.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]models.DueForServiceResult, bool)
	Set(ctx context.Context, key string, results []models.DueForServiceResult)
}

// NopCache satisfies ResultCache without caching anything.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]models.DueForServiceResult, bool) { return nil, false }
func (NopCache) Set(context.Context, string, []models.DueForServiceResult)        {}
