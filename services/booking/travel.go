package booking

import (
	"math"

	"horselink/config"
	"horselink/models"
	"horselink/utils"
)

// haversine returns the great-circle distance in km between two coordinates.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// EstimateTravelMinutes estimates driving time between two points using the
// configured average road speed. Returns 0 when either location is missing,
// so travel time is never enforced without location data.
func EstimateTravelMinutes(from, to *models.GeoPoint) int {
	if from == nil || to == nil ||
		len(from.Coordinates) < 2 || len(to.Coordinates) < 2 {
		return 0
	}
	speed := config.AppConfig.TravelSpeedKmh
	if speed <= 0 {
		speed = 40
	}
	km := haversine(from.Coordinates[1], from.Coordinates[0], to.Coordinates[1], to.Coordinates[0])
	return int(math.Ceil(km / speed * 60))
}

// ApplyTravelTime marks slots that cannot be reached in time after the
// provider's previous visit of the day. For each still-available slot it
// finds the latest booked visit ending at or before the slot start; if that
// visit has a location and the estimated travel time to the target exceeds
// the gap, the slot is marked "travel-time" (distinct from "booked" so the
// caller can explain why the slot is blocked). Visits or targets without
// location data never block a slot.
func ApplyTravelTime(slots []models.TimeSlot, visits []models.BookedVisit, target *models.GeoPoint) []models.TimeSlot {
	if target == nil || len(visits) == 0 {
		return slots
	}

	filtered := make([]models.TimeSlot, len(slots))
	copy(filtered, slots)

	for i, slot := range filtered {
		if !slot.Available {
			continue
		}
		slotStart, err := utils.ParseHHMM(slot.StartTime)
		if err != nil {
			continue
		}

		prev, ok := previousVisit(visits, slotStart)
		if !ok || prev.Location == nil {
			continue
		}
		prevEnd, err := utils.ParseHHMM(prev.EndTime)
		if err != nil {
			continue
		}

		travel := EstimateTravelMinutes(prev.Location, target)
		if slotStart-prevEnd < travel {
			filtered[i].Available = false
			filtered[i].UnavailableReason = models.SlotReasonTravelTime
		}
	}
	return filtered
}

// previousVisit returns the visit with the latest end at or before slotStart.
func previousVisit(visits []models.BookedVisit, slotStart int) (models.BookedVisit, bool) {
	var best models.BookedVisit
	bestEnd := -1
	for _, v := range visits {
		end, err := utils.ParseHHMM(v.EndTime)
		if err != nil || end > slotStart {
			continue
		}
		if end > bestEnd {
			bestEnd = end
			best = v
		}
	}
	return best, bestEnd >= 0
}
