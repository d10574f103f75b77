package booking

import (
	"context"
	"errors"
	"testing"

	"horselink/models"

	"github.com/stretchr/testify/assert"
)

func TestDispatchRunsHandlersInRegistrationOrder(t *testing.T) {
	d := NewEventDispatcher()
	var order []string
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		order = append(order, "first")
		return nil
	})
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		order = append(order, "second")
		return nil
	})

	d.Dispatch(context.Background(), models.BookingEvent{EventType: "TEST_EVENT"})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestDispatchIsolatesFailingHandler(t *testing.T) {
	d := NewEventDispatcher()
	var ran bool
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		return errors.New("mail server down")
	})
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		ran = true
		return nil
	})

	d.Dispatch(context.Background(), models.BookingEvent{EventType: "TEST_EVENT"})

	assert.True(t, ran, "a failing handler must not block the next one")
}

func TestDispatchRecoversPanickingHandler(t *testing.T) {
	d := NewEventDispatcher()
	var ran bool
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		panic("boom")
	})
	d.Register("TEST_EVENT", func(context.Context, models.BookingEvent) error {
		ran = true
		return nil
	})

	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), models.BookingEvent{EventType: "TEST_EVENT"})
	})
	assert.True(t, ran, "a panicking handler must not block the next one")
}

func TestDispatchUnknownEventTypeIsANoop(t *testing.T) {
	d := NewEventDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(context.Background(), models.BookingEvent{EventType: "NOBODY_LISTENS"})
	})
}

func TestDispatchOnlyInvokesMatchingEventType(t *testing.T) {
	d := NewEventDispatcher()
	var calls int
	d.Register("EVENT_A", func(context.Context, models.BookingEvent) error {
		calls++
		return nil
	})

	d.Dispatch(context.Background(), models.BookingEvent{EventType: "EVENT_B"})
	d.Dispatch(context.Background(), models.BookingEvent{EventType: "EVENT_A"})

	assert.Equal(t, 1, calls)
}
