package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "horselink/database/repository/booking"
	"horselink/models"

	"github.com/google/uuid"
)

// allowedTransitions is the booking state machine. Completed and cancelled
// are terminal.
var allowedTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// TransitionAllowed reports whether the state machine permits old -> new.
func TransitionAllowed(oldStatus, newStatus string) bool {
	for _, next := range allowedTransitions[oldStatus] {
		if next == newStatus {
			return true
		}
	}
	return false
}

// DefaultLifecycleService is the production booking lifecycle.
type DefaultLifecycleService struct {
	Repo       bookingRepo.BookingRepository
	Dispatcher *EventDispatcher
	Now        Clock
}

func (s *DefaultLifecycleService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking persists the booking and dispatches BOOKING_CREATED.
// Manual bookings entered by the provider may start out confirmed; anything
// else starts pending.
func (s *DefaultLifecycleService) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if booking.Status != models.BookingStatusConfirmed {
		booking.Status = models.BookingStatusPending
	}
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = s.now()
	booking.UpdatedAt = booking.CreatedAt

	if err := s.Repo.CreateBooking(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	s.Dispatcher.Dispatch(ctx, models.BookingEvent{
		EventID:    uuid.New().String(),
		EventType:  models.EventBookingCreated,
		OccurredAt: s.now(),
		Payload:    models.BookingCreatedPayload{Booking: *booking},
	})
	return nil
}

// TransitionStatus applies one lifecycle transition. The booking must exist
// and belong to the actor; a missing booking and a foreign one produce the
// same NOT_FOUND failure so callers cannot probe for existence.
func (s *DefaultLifecycleService) TransitionStatus(ctx context.Context, input TransitionInput) error {
	booking, err := s.Repo.GetBookingByID(ctx, input.BookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil || !actorOwnsBooking(booking, input.ActorID, input.ActorRole) {
		return ErrNotFound
	}

	if !TransitionAllowed(booking.Status, input.NewStatus) {
		return NewDomainError(CodeInvalidStatusTransition,
			fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, input.NewStatus))
	}

	oldStatus := booking.Status
	if err := s.Repo.UpdateBookingStatus(ctx, booking.ID, input.NewStatus, input.CancellationMessage); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	booking.Status = input.NewStatus
	booking.CancellationMessage = input.CancellationMessage

	s.Dispatcher.Dispatch(ctx, models.BookingEvent{
		EventID:    uuid.New().String(),
		EventType:  models.EventBookingStatusChanged,
		OccurredAt: s.now(),
		Payload: models.BookingStatusChangedPayload{
			Booking:             *booking,
			OldStatus:           oldStatus,
			NewStatus:           input.NewStatus,
			ActorRole:           input.ActorRole,
			CancellationMessage: input.CancellationMessage,
		},
	})
	return nil
}

// RecordPayment dispatches BOOKING_PAYMENT_RECEIVED for a booking.
func (s *DefaultLifecycleService) RecordPayment(ctx context.Context, bookingID string, amount float64, currency string) error {
	booking, err := s.Repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return ErrNotFound
	}

	s.Dispatcher.Dispatch(ctx, models.BookingEvent{
		EventID:    uuid.New().String(),
		EventType:  models.EventBookingPaymentReceived,
		OccurredAt: s.now(),
		Payload: models.BookingPaymentReceivedPayload{
			Booking:    *booking,
			AmountPaid: amount,
			Currency:   currency,
		},
	})
	return nil
}

func actorOwnsBooking(booking *models.Booking, actorID, actorRole string) bool {
	switch actorRole {
	case models.RoleProvider:
		return booking.ProviderID == actorID
	case models.RoleCustomer:
		return booking.CustomerID == actorID
	default:
		return false
	}
}
