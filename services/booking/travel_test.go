package booking

import (
	"testing"

	"horselink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geoPoint(lon, lat float64) *models.GeoPoint {
	return &models.GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func TestEstimateTravelMinutesWithoutLocations(t *testing.T) {
	assert.Equal(t, 0, EstimateTravelMinutes(nil, nil))
	assert.Equal(t, 0, EstimateTravelMinutes(geoPoint(0, 0), nil))
	assert.Equal(t, 0, EstimateTravelMinutes(nil, geoPoint(0, 0)))
	assert.Equal(t, 0, EstimateTravelMinutes(&models.GeoPoint{Type: "Point"}, geoPoint(0, 0)))
}

func TestEstimateTravelMinutesSamePoint(t *testing.T) {
	p := geoPoint(6.57, 53.21)
	assert.Equal(t, 0, EstimateTravelMinutes(p, p))
}

func TestEstimateTravelMinutesKnownDistance(t *testing.T) {
	// One degree of latitude is roughly 111.2 km; at the 40 km/h default
	// that is 167 minutes after rounding up.
	minutes := EstimateTravelMinutes(geoPoint(0, 0), geoPoint(0, 1))
	assert.Equal(t, 167, minutes)
}

func TestApplyTravelTimeMarksUnreachableSlot(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00", Available: true},
		{StartTime: "13:00", EndTime: "14:00", Available: true},
	}
	visits := []models.BookedVisit{
		{
			Interval: models.Interval{StartTime: "09:00", EndTime: "10:00"},
			Location: geoPoint(0, 0),
		},
	}
	// 167 minutes away from the previous visit.
	target := geoPoint(0, 1)

	filtered := ApplyTravelTime(slots, visits, target)

	require.Len(t, filtered, 2)
	assert.False(t, filtered[0].Available, "no gap to travel before 10:00")
	assert.Equal(t, models.SlotReasonTravelTime, filtered[0].UnavailableReason)
	assert.True(t, filtered[1].Available, "the 180 minute gap before 13:00 is enough")

	// The input slice is left untouched.
	assert.True(t, slots[0].Available)
}

func TestApplyTravelTimeSkipsVisitsWithoutLocation(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00", Available: true},
	}
	visits := []models.BookedVisit{
		{Interval: models.Interval{StartTime: "09:00", EndTime: "10:00"}},
	}

	filtered := ApplyTravelTime(slots, visits, geoPoint(0, 1))

	assert.True(t, filtered[0].Available)
}

func TestApplyTravelTimeWithoutTargetLocation(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00", Available: true},
	}
	visits := []models.BookedVisit{
		{
			Interval: models.Interval{StartTime: "09:00", EndTime: "10:00"},
			Location: geoPoint(0, 0),
		},
	}

	filtered := ApplyTravelTime(slots, visits, nil)

	assert.True(t, filtered[0].Available, "travel time is never enforced without the customer's location")
}

func TestApplyTravelTimeLeavesBookedSlotsAlone(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "10:00", EndTime: "11:00", Available: false, UnavailableReason: models.SlotReasonBooked},
	}
	visits := []models.BookedVisit{
		{
			Interval: models.Interval{StartTime: "09:00", EndTime: "10:00"},
			Location: geoPoint(0, 0),
		},
	}

	filtered := ApplyTravelTime(slots, visits, geoPoint(0, 1))

	assert.Equal(t, models.SlotReasonBooked, filtered[0].UnavailableReason)
}

func TestApplyTravelTimeUsesLatestPrecedingVisit(t *testing.T) {
	slots := []models.TimeSlot{
		{StartTime: "14:00", EndTime: "15:00", Available: true},
	}
	// The morning visit is far away but the later one is at the target
	// itself, so the slot stays reachable.
	visits := []models.BookedVisit{
		{
			Interval: models.Interval{StartTime: "09:00", EndTime: "10:00"},
			Location: geoPoint(0, 0),
		},
		{
			Interval: models.Interval{StartTime: "12:00", EndTime: "13:00"},
			Location: geoPoint(0, 1),
		},
	}

	filtered := ApplyTravelTime(slots, visits, geoPoint(0, 1))

	assert.True(t, filtered[0].Available)
}
