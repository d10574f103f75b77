package booking

import (
	"context"
	"sync"

	"horselink/models"
	"horselink/utils"

	"go.uber.org/zap"
)

// EventHandler consumes one booking event. Handlers are side-effect domains
// (email, notification, audit log); their errors are logged and dropped.
type EventHandler func(ctx context.Context, event models.BookingEvent) error

// EventDispatcher fans booking events out to an ordered list of independent
// handlers per event type. Dispatch never fails: a handler that returns an
// error or panics does not prevent later handlers from running and nothing
// propagates to the caller.
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

// NewEventDispatcher constructs an empty dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

// Register appends a handler for an event type. Handlers run in registration
// order.
func (d *EventDispatcher) Register(eventType string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}

// Dispatch invokes all handlers registered for the event's type. Each handler
// is isolated: panics are recovered and errors logged, then the next handler
// runs.
func (d *EventDispatcher) Dispatch(ctx context.Context, event models.BookingEvent) {
	d.mu.RLock()
	handlers := d.handlers[event.EventType]
	d.mu.RUnlock()

	logger := utils.GetLogger()
	for _, handler := range handlers {
		d.invoke(ctx, event, handler, logger)
	}
}

func (d *EventDispatcher) invoke(ctx context.Context, event models.BookingEvent, handler EventHandler, logger *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("event handler panicked",
				zap.String("eventType", event.EventType),
				zap.String("eventID", event.EventID),
				zap.Any("recover", r))
		}
	}()

	if err := handler(ctx, event); err != nil {
		logger.Warn("event handler failed",
			zap.String("eventType", event.EventType),
			zap.String("eventID", event.EventID),
			zap.Error(err))
	}
}
