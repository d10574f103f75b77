package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"horselink/config"
	"horselink/models"
	"horselink/services/horsecare"
	"horselink/services/notification"

	"github.com/hibiken/asynq"
)

const TypeDueServiceReminder = "reminder:due-service"

// DueReminderPayload identifies the customer whose herd should be checked.
type DueReminderPayload struct {
	CustomerID string `json:"customerId"`
}

// NewDueReminderTask builds a scheduled reminder task for one customer.
func NewDueReminderTask(payload DueReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDueServiceReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}
	return task, opts, nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(dueSvc horsecare.DueForServiceService, notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeDueServiceReminder, handleDueReminderTask(dueSvc, notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

// handleDueReminderTask recomputes the due list for one customer and sends a
// notification for every overdue or upcoming service.
func handleDueReminderTask(dueSvc horsecare.DueForServiceService, notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload DueReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid reminder payload: %w", err)
		}

		results, err := dueSvc.ListDueForService(ctx, payload.CustomerID, time.Now())
		if err != nil {
			return fmt.Errorf("due-for-service lookup failed: %w", err)
		}

		for _, r := range results {
			if r.Status == models.DueStatusOK {
				continue
			}
			message := fmt.Sprintf("%s is due for %s in %d days", r.HorseName, r.ServiceName, r.DaysUntilDue)
			if r.Status == models.DueStatusOverdue {
				message = fmt.Sprintf("%s is overdue for %s by %d days", r.HorseName, r.ServiceName, -r.DaysUntilDue)
			}
			// Reminder delivery is best effort; one failure must not drop the rest.
			_ = notifSvc.CreateNotification(ctx, models.NotificationInput{
				UserID:  payload.CustomerID,
				Type:    "due_for_service",
				Message: message,
				LinkURL: "/horses/" + r.HorseID,
				Metadata: map[string]any{
					"horseId":   r.HorseID,
					"serviceId": r.ServiceID,
					"status":    r.Status,
				},
			})
		}
		return nil
	}
}
