package booking

import (
	"context"
	"fmt"

	customerRepo "horselink/database/repository/customer"
	"horselink/models"
	"horselink/services/email"
	"horselink/services/notification"
	"horselink/utils"

	"go.uber.org/zap"
)

// RegisterEventHandlers wires the side-effect chains for every booking event
// type. Handler order matters: email first, then the in-app notification,
// then the audit log line. Every handler is failure-isolated by the
// dispatcher, so a dead mail server never blocks a booking.
func RegisterEventHandlers(
	d *EventDispatcher,
	mailer email.Sender,
	notifier notification.NotificationService,
	customers customerRepo.CustomerRepository,
) {
	d.Register(models.EventBookingCreated, createdEmailHandler(mailer, customers))
	d.Register(models.EventBookingCreated, createdNotificationHandler(notifier))
	d.Register(models.EventBookingCreated, auditHandler)

	d.Register(models.EventBookingStatusChanged, statusEmailHandler(mailer, customers))
	d.Register(models.EventBookingStatusChanged, statusNotificationHandler(notifier))
	d.Register(models.EventBookingStatusChanged, auditHandler)

	d.Register(models.EventBookingPaymentReceived, paymentEmailHandler(mailer, customers))
	d.Register(models.EventBookingPaymentReceived, paymentNotificationHandler(notifier))
	d.Register(models.EventBookingPaymentReceived, auditHandler)
}

func createdEmailHandler(mailer email.Sender, customers customerRepo.CustomerRepository) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingCreatedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		to, err := customerEmail(ctx, customers, payload.Booking.CustomerID)
		if err != nil {
			return err
		}
		return mailer.SendBookingConfirmation(ctx, to, payload.Booking)
	}
}

func createdNotificationHandler(notifier notification.NotificationService) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingCreatedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		b := payload.Booking

		message := fmt.Sprintf("New %s booking on %s at %s", b.ServiceName, b.Date, b.StartTime)
		if b.HorseName != "" {
			message = fmt.Sprintf("New %s booking for %s on %s at %s", b.ServiceName, b.HorseName, b.Date, b.StartTime)
		}
		return notifier.CreateNotification(ctx, models.NotificationInput{
			UserID:  b.ProviderID,
			Type:    "booking_created",
			Message: message,
			LinkURL: "/bookings/" + b.ID,
			Metadata: map[string]any{
				"bookingId": b.ID,
				"date":      b.Date,
				"startTime": b.StartTime,
			},
		})
	}
}

func statusEmailHandler(mailer email.Sender, customers customerRepo.CustomerRepository) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingStatusChangedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		// Pending never produces email.
		switch payload.NewStatus {
		case models.BookingStatusConfirmed, models.BookingStatusCancelled, models.BookingStatusCompleted:
		default:
			return nil
		}
		to, err := customerEmail(ctx, customers, payload.Booking.CustomerID)
		if err != nil {
			return err
		}
		return mailer.SendStatusChange(ctx, to, payload.Booking, payload.OldStatus, payload.NewStatus)
	}
}

func statusNotificationHandler(notifier notification.NotificationService) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingStatusChangedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		b := payload.Booking

		// The counter-party of whoever acted gets notified.
		recipient := b.CustomerID
		actor := "The provider"
		if payload.ActorRole == models.RoleCustomer {
			recipient = b.ProviderID
			actor = "The customer"
		}

		message := fmt.Sprintf("%s marked the %s booking on %s as %s", actor, b.ServiceName, b.Date, payload.NewStatus)
		if payload.NewStatus == models.BookingStatusCancelled && payload.CancellationMessage != "" {
			message += ": " + payload.CancellationMessage
		}
		return notifier.CreateNotification(ctx, models.NotificationInput{
			UserID:  recipient,
			Type:    "booking_status_changed",
			Message: message,
			LinkURL: "/bookings/" + b.ID,
			Metadata: map[string]any{
				"bookingId": b.ID,
				"oldStatus": payload.OldStatus,
				"newStatus": payload.NewStatus,
			},
		})
	}
}

func paymentEmailHandler(mailer email.Sender, customers customerRepo.CustomerRepository) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingPaymentReceivedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		to, err := customerEmail(ctx, customers, payload.Booking.CustomerID)
		if err != nil {
			return err
		}
		return mailer.SendPaymentConfirmation(ctx, to, payload.Booking, payload.AmountPaid, payload.Currency)
	}
}

func paymentNotificationHandler(notifier notification.NotificationService) EventHandler {
	return func(ctx context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingPaymentReceivedPayload)
		if !ok {
			return fmt.Errorf("unexpected payload for %s", event.EventType)
		}
		b := payload.Booking
		return notifier.CreateNotification(ctx, models.NotificationInput{
			UserID:  b.ProviderID,
			Type:    "booking_payment_received",
			Message: fmt.Sprintf("Payment of %.2f %s received for the %s booking on %s", payload.AmountPaid, payload.Currency, b.ServiceName, b.Date),
			LinkURL: "/bookings/" + b.ID,
			Metadata: map[string]any{
				"bookingId": b.ID,
				"amount":    payload.AmountPaid,
			},
		})
	}
}

func auditHandler(_ context.Context, event models.BookingEvent) error {
	utils.GetLogger().Info("booking event",
		zap.String("eventID", event.EventID),
		zap.String("eventType", event.EventType),
		zap.Time("occurredAt", event.OccurredAt),
		zap.Any("payload", event.Payload))
	return nil
}

func customerEmail(ctx context.Context, customers customerRepo.CustomerRepository, customerID string) (string, error) {
	customer, err := customers.GetCustomerByID(ctx, customerID)
	if err != nil {
		return "", fmt.Errorf("could not look up customer %s: %w", customerID, err)
	}
	if customer == nil || customer.Email == "" {
		return "", fmt.Errorf("customer %s has no email address", customerID)
	}
	return customer.Email, nil
}
