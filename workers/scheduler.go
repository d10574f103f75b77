package workers

import (
	"context"
	"fmt"
	"time"

	"horselink/config"
	"horselink/models"
	"horselink/services/booking"
	"horselink/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ReminderScheduler enqueues due-for-service reminder tasks.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleDueCheck enqueues a reminder check for one customer at fireAt.
func (s *ReminderScheduler) ScheduleDueCheck(customerID string, fireAt time.Time) error {
	task, opts, err := NewDueReminderTask(DueReminderPayload{CustomerID: customerID}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// dueCheckLeadTime is how long after a completed service the first reminder
// check fires. The worker recomputes the real due status at fire time, so
// the horizon only has to be earlier than any plausible cadence.
const dueCheckLeadTime = 4 * 7 * 24 * time.Hour

// CompletedBookingReminderHandler schedules a due-service check for the
// customer whenever one of their bookings completes.
func CompletedBookingReminderHandler(scheduler *ReminderScheduler) booking.EventHandler {
	return func(_ context.Context, event models.BookingEvent) error {
		payload, ok := event.Payload.(models.BookingStatusChangedPayload)
		if !ok || payload.NewStatus != models.BookingStatusCompleted {
			return nil
		}
		if err := scheduler.ScheduleDueCheck(payload.Booking.CustomerID, time.Now().Add(dueCheckLeadTime)); err != nil {
			utils.GetLogger().Warn("failed to schedule due-service check",
				zap.String("customerID", payload.Booking.CustomerID),
				zap.Error(err))
		}
		return nil
	}
}
