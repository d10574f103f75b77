package providerRepo

import (
	"context"

	"horselink/models"
)

// ProviderRepository is the storage contract for provider records.
type ProviderRepository interface {
	GetProviderByID(ctx context.Context, providerID string) (*models.Provider, error)
	UpdateWeeklyHours(ctx context.Context, providerID string, hours map[string]models.DayHours) error
}
