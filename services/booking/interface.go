package booking

import (
	"context"
	"time"

	"horselink/models"
)

// SchedulingEngine computes bookable time slots for a provider.
type SchedulingEngine interface {
	// GetDayAvailability returns the candidate slots for one provider, date
	// and service. When the customer's location is known and the provider
	// has travel-time filtering enabled, slots unreachable after the
	// previous visit are marked "travel-time".
	GetDayAvailability(ctx context.Context, providerID, date, serviceID string, customerLocation *models.GeoPoint) ([]models.TimeSlot, error)
}

// LifecycleService governs booking creation and status transitions and emits
// a domain event for every change.
type LifecycleService interface {
	// CreateBooking persists a booking in its initial status (pending, or
	// confirmed for provider-entered manual bookings) and dispatches
	// BOOKING_CREATED.
	CreateBooking(ctx context.Context, booking *models.Booking) error
	// TransitionStatus applies a lifecycle transition on behalf of an actor.
	// Unknown bookings and callers that do not own the booking fail the same
	// way, with NOT_FOUND.
	TransitionStatus(ctx context.Context, input TransitionInput) error
	// RecordPayment dispatches BOOKING_PAYMENT_RECEIVED for a booking.
	RecordPayment(ctx context.Context, bookingID string, amount float64, currency string) error
}

// TransitionInput carries one requested status transition.
type TransitionInput struct {
	BookingID           string
	NewStatus           string
	ActorID             string
	ActorRole           string // models.RoleProvider or models.RoleCustomer
	CancellationMessage string
}

// Clock abstracts time.Now for deterministic tests.
type Clock func() time.Time
