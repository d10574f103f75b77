package models

import "time"

// Booking event types.
const (
	EventBookingCreated         = "BOOKING_CREATED"
	EventBookingStatusChanged   = "BOOKING_STATUS_CHANGED"
	EventBookingPaymentReceived = "BOOKING_PAYMENT_RECEIVED"
)

// BookingEvent is an immutable record of a booking state change, consumed by
// independent, failure-isolated handlers. Events live in-process only; they
// are created once per domain occurrence and never mutated afterwards.
type BookingEvent struct {
	EventID    string    `json:"eventId"`
	EventType  string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// BookingCreatedPayload accompanies EventBookingCreated.
type BookingCreatedPayload struct {
	Booking Booking `json:"booking"`
}

// BookingStatusChangedPayload accompanies EventBookingStatusChanged. ActorRole
// ("provider" or "customer") determines which counter-party gets notified.
type BookingStatusChangedPayload struct {
	Booking             Booking `json:"booking"`
	OldStatus           string  `json:"oldStatus"`
	NewStatus           string  `json:"newStatus"`
	ActorRole           string  `json:"actorRole"`
	CancellationMessage string  `json:"cancellationMessage,omitempty"`
}

// BookingPaymentReceivedPayload accompanies EventBookingPaymentReceived.
type BookingPaymentReceivedPayload struct {
	Booking    Booking `json:"booking"`
	AmountPaid float64 `json:"amountPaid"`
	Currency   string  `json:"currency"`
}
