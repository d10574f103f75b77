package group

import (
	"context"
	"time"

	"horselink/models"
)

// GroupBookingService manages group booking requests: creation, joining,
// participant removal and matching with a provider visit.
type GroupBookingService interface {
	CreateRequest(ctx context.Context, input CreateRequestInput) (*models.GroupBookingRequest, error)
	JoinByInviteCode(ctx context.Context, inviteCode string, participant models.GroupParticipant) (*models.GroupBookingRequest, error)
	RemoveParticipant(ctx context.Context, requestID, targetUserID, actorID string) (*models.GroupBookingRequest, error)
	UpdateRequestStatus(ctx context.Context, requestID, actorID, newStatus string) (*models.GroupBookingRequest, error)
	// MatchRequest books every joined participant sequentially for one
	// provider visit. Per-participant failures are reported, not fatal.
	MatchRequest(ctx context.Context, input MatchRequestInput) (*MatchResult, error)
}

// CreateRequestInput creates a new open group booking request. The creator
// joins immediately with the given horse.
type CreateRequestInput struct {
	CreatorID       string
	CreatorHorseID  string
	CreatorHorse    string
	ServiceID       string
	LocationName    string
	MaxParticipants int
	JoinDeadline    time.Time
}

// MatchRequestInput assigns a provider visit to an open group request.
type MatchRequestInput struct {
	GroupBookingRequestID  string
	ProviderID             string
	ServiceID              string
	BookingDate            string // "2006-01-02"
	StartTime              string // "HH:MM"
	ServiceDurationMinutes int
}

// MatchResult reports the outcome of a best-effort group match.
type MatchResult struct {
	Success         bool             `json:"success"`
	BookingsCreated []models.Booking `json:"bookingsCreated"`
	Errors          []string         `json:"errors,omitempty"`
}
