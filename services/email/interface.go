package email

import (
	"context"

	"horselink/models"
	"horselink/utils"

	"go.uber.org/zap"
)

// Sender is the outbound email capability. Each method is independently
// fallible; callers treat failures as best-effort side effects.
type Sender interface {
	SendBookingConfirmation(ctx context.Context, to string, booking models.Booking) error
	SendStatusChange(ctx context.Context, to string, booking models.Booking, oldStatus, newStatus string) error
	SendPaymentConfirmation(ctx context.Context, to string, booking models.Booking, amount float64, currency string) error
}

// LogSender is the development adapter: it writes the email content to the
// structured log instead of delivering it.
type LogSender struct{}

func (LogSender) SendBookingConfirmation(_ context.Context, to string, booking models.Booking) error {
	utils.GetLogger().Info("email: booking confirmation",
		zap.String("to", to),
		zap.String("bookingID", booking.ID),
		zap.String("date", booking.Date),
		zap.String("startTime", booking.StartTime))
	return nil
}

func (LogSender) SendStatusChange(_ context.Context, to string, booking models.Booking, oldStatus, newStatus string) error {
	utils.GetLogger().Info("email: booking status change",
		zap.String("to", to),
		zap.String("bookingID", booking.ID),
		zap.String("oldStatus", oldStatus),
		zap.String("newStatus", newStatus))
	return nil
}

func (LogSender) SendPaymentConfirmation(_ context.Context, to string, booking models.Booking, amount float64, currency string) error {
	utils.GetLogger().Info("email: payment confirmation",
		zap.String("to", to),
		zap.String("bookingID", booking.ID),
		zap.Float64("amount", amount),
		zap.String("currency", currency))
	return nil
}
