package groupRepo

import (
	"context"

	"horselink/models"
)

// GroupRepository is the storage contract for group booking requests.
type GroupRepository interface {
	CreateRequest(ctx context.Context, request *models.GroupBookingRequest) error
	GetRequestByID(ctx context.Context, requestID string) (*models.GroupBookingRequest, error)
	GetRequestByInviteCode(ctx context.Context, inviteCode string) (*models.GroupBookingRequest, error)
	// UpdateRequest replaces the stored document; last write wins.
	UpdateRequest(ctx context.Context, request *models.GroupBookingRequest) error
}
