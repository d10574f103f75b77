package booking

import (
	"testing"
	"time"

	"horselink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureTime(t *testing.T) time.Time {
	t.Helper()
	// Well before any slot on the test dates, so nothing is marked past.
	return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
}

func TestCalculateAvailableSlotsGeneratesFullDay(t *testing.T) {
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "09:00",
		ClosingTime: "12:00",
	}

	slots := CalculateAvailableSlots(day, 30, futureTime(t))

	require.Len(t, slots, 6)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "11:30", slots[5].StartTime)
	assert.Equal(t, "12:00", slots[5].EndTime)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be free", s.StartTime)
		assert.Empty(t, s.UnavailableReason)
	}
}

func TestCalculateAvailableSlotsMarksBookedOverlap(t *testing.T) {
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "09:00",
		ClosingTime: "12:00",
		BookedSlots: []models.Interval{
			{StartTime: "10:00", EndTime: "10:30"},
		},
	}

	slots := CalculateAvailableSlots(day, 30, futureTime(t))

	require.Len(t, slots, 6)
	for _, s := range slots {
		if s.StartTime == "10:00" {
			assert.False(t, s.Available)
			assert.Equal(t, models.SlotReasonBooked, s.UnavailableReason)
		} else {
			assert.True(t, s.Available, "slot %s should be free", s.StartTime)
		}
	}
}

func TestCalculateAvailableSlotsPartialOverlapBlocksBothSlots(t *testing.T) {
	// A booking from 10:15 to 10:45 touches the 10:00 and 10:30 slots.
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "10:00",
		ClosingTime: "11:30",
		BookedSlots: []models.Interval{
			{StartTime: "10:15", EndTime: "10:45"},
		},
	}

	slots := CalculateAvailableSlots(day, 30, futureTime(t))

	require.Len(t, slots, 3)
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestCalculateAvailableSlotsBackToBackBookingDoesNotBlockNeighbour(t *testing.T) {
	// End-exclusive: a booking ending 10:00 leaves the 10:00 slot free.
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "09:00",
		ClosingTime: "11:00",
		BookedSlots: []models.Interval{
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}

	slots := CalculateAvailableSlots(day, 60, futureTime(t))

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestCalculateAvailableSlotsMarksPastOnCurrentDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "09:00",
		ClosingTime: "12:00",
	}

	slots := CalculateAvailableSlots(day, 30, now)

	require.Len(t, slots, 6)
	// 09:00, 09:30, 10:00 started before 10:15.
	for i, s := range slots {
		if i < 3 {
			assert.False(t, s.Available, "slot %s started in the past", s.StartTime)
			assert.Equal(t, models.SlotReasonPast, s.UnavailableReason)
		} else {
			assert.True(t, s.Available, "slot %s is still ahead", s.StartTime)
		}
	}
}

func TestCalculateAvailableSlotsDropsOverrunningFinalSlot(t *testing.T) {
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "09:00",
		ClosingTime: "10:45",
	}

	slots := CalculateAvailableSlots(day, 30, futureTime(t))

	// 09:00, 09:30, 10:00 fit; a 10:30 slot would overrun 10:45.
	require.Len(t, slots, 3)
	assert.Equal(t, "10:30", slots[2].EndTime)
}

func TestCalculateAvailableSlotsEmptyCases(t *testing.T) {
	now := futureTime(t)

	assert.Empty(t, CalculateAvailableSlots(models.DayAvailability{
		Date: "2026-03-02", Closed: true, OpeningTime: "09:00", ClosingTime: "17:00",
	}, 30, now), "closed day")

	assert.Empty(t, CalculateAvailableSlots(models.DayAvailability{
		Date: "2026-03-02",
	}, 30, now), "no configured hours")

	assert.Empty(t, CalculateAvailableSlots(models.DayAvailability{
		Date: "2026-03-02", OpeningTime: "09:00", ClosingTime: "12:00",
	}, 0, now), "zero duration")

	assert.Empty(t, CalculateAvailableSlots(models.DayAvailability{
		Date: "2026-03-02", OpeningTime: "17:00", ClosingTime: "09:00",
	}, 30, now), "closing before opening")
}

func TestCalculateAvailableSlotsAreOrderedAndNonOverlapping(t *testing.T) {
	day := models.DayAvailability{
		Date:        "2026-03-02",
		OpeningTime: "08:00",
		ClosingTime: "18:00",
	}

	slots := CalculateAvailableSlots(day, 45, futureTime(t))

	require.NotEmpty(t, slots)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].EndTime, slots[i].StartTime,
			"slot %d should start where slot %d ended", i, i-1)
	}
}
