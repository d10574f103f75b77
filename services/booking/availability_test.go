package booking

import (
	"context"
	"testing"
	"time"

	"horselink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProviderRepo struct {
	providers map[string]*models.Provider
}

func (f *fakeProviderRepo) GetProviderByID(_ context.Context, id string) (*models.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProviderRepo) UpdateWeeklyHours(_ context.Context, id string, hours map[string]models.DayHours) error {
	if p, ok := f.providers[id]; ok {
		p.WeeklyHours = hours
	}
	return nil
}

func testProvider(travelTime bool) *models.Provider {
	return &models.Provider{
		ID:          "prov-1",
		Name:        "Hoofworks",
		ServiceType: "farrier",
		Services: []models.ProviderService{
			{ServiceID: "svc-trim", Name: "Hoof trim", DurationMinutes: 30, Price: 45},
		},
		WeeklyHours: map[string]models.DayHours{
			// 2026-03-02 is a Monday.
			"monday": {OpeningTime: "09:00", ClosingTime: "12:00"},
			"sunday": {Closed: true},
		},
		TravelTimeEnabled: travelTime,
	}
}

func newTestEngine(provider *models.Provider, repo *fakeBookingRepo) *DefaultSchedulingEngine {
	return &DefaultSchedulingEngine{
		ProviderRepo: &fakeProviderRepo{providers: map[string]*models.Provider{provider.ID: provider}},
		BookingRepo:  repo,
		Now: func() time.Time {
			return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
		},
	}
}

func TestGetDayAvailabilityFullDay(t *testing.T) {
	engine := newTestEngine(testProvider(false), newFakeBookingRepo())

	slots, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-02", "svc-trim", nil)
	require.NoError(t, err)

	require.Len(t, slots, 6)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestGetDayAvailabilityReflectsExistingBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID: "b1", ProviderID: "prov-1", CustomerID: "cust-9",
		Date: "2026-03-02", StartTime: "10:00", EndTime: "10:30",
		Status: models.BookingStatusConfirmed,
	}
	engine := newTestEngine(testProvider(false), repo)

	slots, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-02", "svc-trim", nil)
	require.NoError(t, err)

	require.Len(t, slots, 6)
	for _, s := range slots {
		if s.StartTime == "10:00" {
			assert.Equal(t, models.SlotReasonBooked, s.UnavailableReason)
		} else {
			assert.True(t, s.Available)
		}
	}
}

func TestGetDayAvailabilityClosedDay(t *testing.T) {
	engine := newTestEngine(testProvider(false), newFakeBookingRepo())

	// 2026-03-08 is a Sunday, configured closed.
	slots, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-08", "svc-trim", nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGetDayAvailabilityUnknownProvider(t *testing.T) {
	engine := newTestEngine(testProvider(false), newFakeBookingRepo())

	_, err := engine.GetDayAvailability(context.Background(), "prov-unknown", "2026-03-02", "svc-trim", nil)
	assert.Equal(t, ErrNotFound, err)
}

func TestGetDayAvailabilityUnknownService(t *testing.T) {
	engine := newTestEngine(testProvider(false), newFakeBookingRepo())

	_, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-02", "svc-dentistry", nil)
	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, de.Code)
}

func TestGetDayAvailabilityAppliesTravelTimeWhenOptedIn(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID: "b1", ProviderID: "prov-1", CustomerID: "cust-9",
		Date: "2026-03-02", StartTime: "09:00", EndTime: "09:30",
		Status:   models.BookingStatusConfirmed,
		Location: geoPoint(0, 0),
	}
	engine := newTestEngine(testProvider(true), repo)

	// The customer is about 167 driving minutes from the 09:00 visit, so
	// every later slot of the morning is unreachable.
	slots, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-02", "svc-trim", geoPoint(0, 1))
	require.NoError(t, err)

	require.Len(t, slots, 6)
	assert.Equal(t, models.SlotReasonBooked, slots[0].UnavailableReason)
	for _, s := range slots[1:] {
		assert.Equal(t, models.SlotReasonTravelTime, s.UnavailableReason, "slot %s", s.StartTime)
	}
}

func TestGetDayAvailabilitySkipsTravelTimeWithoutLocation(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["b1"] = &models.Booking{
		ID: "b1", ProviderID: "prov-1", CustomerID: "cust-9",
		Date: "2026-03-02", StartTime: "09:00", EndTime: "09:30",
		Status:   models.BookingStatusConfirmed,
		Location: geoPoint(0, 0),
	}
	engine := newTestEngine(testProvider(true), repo)

	slots, err := engine.GetDayAvailability(context.Background(), "prov-1", "2026-03-02", "svc-trim", nil)
	require.NoError(t, err)

	require.Len(t, slots, 6)
	for _, s := range slots[1:] {
		assert.True(t, s.Available, "slot %s must stay open without the customer's location", s.StartTime)
	}
}
