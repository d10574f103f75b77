package bookingRepo

import (
	"context"

	"horselink/models"
)

// CreationFailure records a single booking insert that failed inside a
// best-effort batch.
type CreationFailure struct {
	CustomerID string
	HorseID    string
	Err        error
}

// BookingRepository is the storage contract for booking records.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status, cancellationMessage string) error
	// GetBookingsForProviderDate returns a provider's non-cancelled bookings
	// for a date, ordered by start time.
	GetBookingsForProviderDate(ctx context.Context, providerID, date string) ([]models.Booking, error)
	// GetCompletedBookingsByCustomer returns a customer's completed bookings
	// across all horses, most recent first.
	GetCompletedBookingsByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	// CreateBookingsBestEffort inserts a batch of bookings inside one
	// transaction. Individual insert errors are collected rather than
	// aborting the transaction; the batch commits with partial results.
	// The returned error reports only infrastructure failure of the
	// transaction itself.
	CreateBookingsBestEffort(ctx context.Context, bookings []*models.Booking) (created []models.Booking, failures []CreationFailure, err error)
}
