package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "horselink/database/repository/booking"
	"horselink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	failIDs   map[string]bool
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *b
	f.bookings[b.ID] = &clone
	return nil
}

func (f *fakeBookingRepo) GetBookingByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(_ context.Context, id, status, cancellationMessage string) error {
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	b.CancellationMessage = cancellationMessage
	return nil
}

func (f *fakeBookingRepo) GetBookingsForProviderDate(_ context.Context, providerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID && b.Date == date && b.Status != models.BookingStatusCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetCompletedBookingsByCustomer(_ context.Context, customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID && b.Status == models.BookingStatusCompleted {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CreateBookingsBestEffort(ctx context.Context, bookings []*models.Booking) ([]models.Booking, []bookingRepo.CreationFailure, error) {
	if f.createErr != nil {
		return nil, nil, f.createErr
	}
	var created []models.Booking
	var failures []bookingRepo.CreationFailure
	for _, b := range bookings {
		if f.failIDs[b.CustomerID] {
			failures = append(failures, bookingRepo.CreationFailure{
				CustomerID: b.CustomerID,
				HorseID:    b.HorseID,
				Err:        errors.New("duplicate booking"),
			})
			continue
		}
		clone := *b
		f.bookings[b.ID] = &clone
		created = append(created, clone)
	}
	return created, failures, nil
}

// eventRecorder captures dispatched events for assertions.
func eventRecorder(events *[]models.BookingEvent) EventHandler {
	return func(_ context.Context, event models.BookingEvent) error {
		*events = append(*events, event)
		return nil
	}
}

func testClock() Clock {
	return func() time.Time {
		return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	}
}

func newTestLifecycle(repo *fakeBookingRepo, events *[]models.BookingEvent) *DefaultLifecycleService {
	d := NewEventDispatcher()
	d.Register(models.EventBookingCreated, eventRecorder(events))
	d.Register(models.EventBookingStatusChanged, eventRecorder(events))
	d.Register(models.EventBookingPaymentReceived, eventRecorder(events))
	return &DefaultLifecycleService{Repo: repo, Dispatcher: d, Now: testClock()}
}

func TestCreateBookingDefaultsToPending(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1", Date: "2026-03-10", StartTime: "10:00", EndTime: "10:30"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))

	assert.Equal(t, models.BookingStatusPending, b.Status)
	assert.NotEmpty(t, b.ID)

	require.Len(t, events, 1)
	assert.Equal(t, models.EventBookingCreated, events[0].EventType)
	payload, ok := events[0].Payload.(models.BookingCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, b.ID, payload.Booking.ID)
}

func TestCreateBookingKeepsConfirmedForManualEntries(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1", Status: models.BookingStatusConfirmed}
	require.NoError(t, svc.CreateBooking(context.Background(), b))

	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
}

func TestTransitionAllowedTable(t *testing.T) {
	cases := []struct {
		from, to string
		allowed  bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, TransitionAllowed(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionStatusHappyPath(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))
	events = nil

	err := svc.TransitionStatus(context.Background(), TransitionInput{
		BookingID: b.ID,
		NewStatus: models.BookingStatusConfirmed,
		ActorID:   "prov-1",
		ActorRole: models.RoleProvider,
	})
	require.NoError(t, err)

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)

	require.Len(t, events, 1)
	payload, ok := events[0].Payload.(models.BookingStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, models.BookingStatusPending, payload.OldStatus)
	assert.Equal(t, models.BookingStatusConfirmed, payload.NewStatus)
	assert.Equal(t, models.RoleProvider, payload.ActorRole)
}

func TestTransitionStatusRejectsInvalidTransition(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))
	events = nil

	err := svc.TransitionStatus(context.Background(), TransitionInput{
		BookingID: b.ID,
		NewStatus: models.BookingStatusCompleted,
		ActorID:   "prov-1",
		ActorRole: models.RoleProvider,
	})

	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidStatusTransition, de.Code)
	assert.Empty(t, events, "a rejected transition dispatches nothing")
}

func TestTransitionStatusConflatesMissingAndForeignBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))

	missingErr := svc.TransitionStatus(context.Background(), TransitionInput{
		BookingID: "does-not-exist",
		NewStatus: models.BookingStatusConfirmed,
		ActorID:   "prov-1",
		ActorRole: models.RoleProvider,
	})
	foreignErr := svc.TransitionStatus(context.Background(), TransitionInput{
		BookingID: b.ID,
		NewStatus: models.BookingStatusConfirmed,
		ActorID:   "someone-else",
		ActorRole: models.RoleProvider,
	})

	// A caller probing for existence sees the same failure either way.
	assert.Equal(t, ErrNotFound, missingErr)
	assert.Equal(t, ErrNotFound, foreignErr)
}

func TestTransitionStatusCustomerCancellationCarriesMessage(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))
	events = nil

	err := svc.TransitionStatus(context.Background(), TransitionInput{
		BookingID:           b.ID,
		NewStatus:           models.BookingStatusCancelled,
		ActorID:             "cust-1",
		ActorRole:           models.RoleCustomer,
		CancellationMessage: "horse is lame, sorry",
	})
	require.NoError(t, err)

	stored, err := repo.GetBookingByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "horse is lame, sorry", stored.CancellationMessage)

	require.Len(t, events, 1)
	payload := events[0].Payload.(models.BookingStatusChangedPayload)
	assert.Equal(t, "horse is lame, sorry", payload.CancellationMessage)
}

func TestRecordPaymentDispatchesEvent(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	b := &models.Booking{ProviderID: "prov-1", CustomerID: "cust-1"}
	require.NoError(t, svc.CreateBooking(context.Background(), b))
	events = nil

	require.NoError(t, svc.RecordPayment(context.Background(), b.ID, 45.50, "EUR"))

	require.Len(t, events, 1)
	assert.Equal(t, models.EventBookingPaymentReceived, events[0].EventType)
	payload, ok := events[0].Payload.(models.BookingPaymentReceivedPayload)
	require.True(t, ok)
	assert.Equal(t, 45.50, payload.AmountPaid)
	assert.Equal(t, "EUR", payload.Currency)
}

func TestRecordPaymentUnknownBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	var events []models.BookingEvent
	svc := newTestLifecycle(repo, &events)

	err := svc.RecordPayment(context.Background(), "nope", 10, "EUR")
	assert.Equal(t, ErrNotFound, err)
	assert.Empty(t, events)
}
