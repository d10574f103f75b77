package booking

import (
	"time"

	"horselink/models"
	"horselink/utils"
)

// CalculateAvailableSlots turns one day's opening hours and existing bookings
// into an ordered list of fixed-length candidate slots. Slots step from the
// opening time by the service duration; a final slot that would overrun the
// closing time is dropped rather than truncated. Each slot is marked either
// available or unavailable with a reason:
//
//	"past"   - the slot start is before now (only possible on the current day)
//	"booked" - the slot overlaps an existing booking (half-open overlap)
//
// A closed day or one without configured opening hours yields an empty list.
func CalculateAvailableSlots(day models.DayAvailability, serviceDurationMinutes int, now time.Time) []models.TimeSlot {
	if day.Closed || day.OpeningTime == "" || day.ClosingTime == "" || serviceDurationMinutes <= 0 {
		return nil
	}

	openMin, err := utils.ParseHHMM(day.OpeningTime)
	if err != nil {
		return nil
	}
	closeMin, err := utils.ParseHHMM(day.ClosingTime)
	if err != nil || closeMin <= openMin {
		return nil
	}

	type bookedInterval struct{ start, end int }
	var booked []bookedInterval
	for _, b := range day.BookedSlots {
		s, err1 := utils.ParseHHMM(b.StartTime)
		e, err2 := utils.ParseHHMM(b.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}
		booked = append(booked, bookedInterval{start: s, end: e})
	}

	var slots []models.TimeSlot
	for start := openMin; start+serviceDurationMinutes <= closeMin; start += serviceDurationMinutes {
		end := start + serviceDurationMinutes

		slot := models.TimeSlot{
			StartTime: utils.FormatHHMM(start),
			EndTime:   utils.FormatHHMM(end),
			Available: true,
		}

		if slotStart, err := utils.CombineDateTime(day.Date, start, now.Location()); err == nil && slotStart.Before(now) {
			slot.Available = false
			slot.UnavailableReason = models.SlotReasonPast
		} else {
			for _, b := range booked {
				if start < b.end && end > b.start {
					slot.Available = false
					slot.UnavailableReason = models.SlotReasonBooked
					break
				}
			}
		}

		slots = append(slots, slot)
	}
	return slots
}
