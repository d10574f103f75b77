package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "horselink/database/repository/booking"
	providerRepo "horselink/database/repository/provider"
	"horselink/models"
	"horselink/utils"

	"go.uber.org/zap"
)

// DefaultSchedulingEngine is the production scheduling engine.
type DefaultSchedulingEngine struct {
	ProviderRepo providerRepo.ProviderRepository
	BookingRepo  bookingRepo.BookingRepository
	Now          Clock
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// GetDayAvailability assembles the day's configuration and bookings and runs
// the slot calculator, then layers travel-time filtering on top when the
// provider opted in and the customer shared a location. Without location
// data travel time is never enforced; the provider can still reject.
func (se *DefaultSchedulingEngine) GetDayAvailability(
	ctx context.Context,
	providerID, date, serviceID string,
	customerLocation *models.GeoPoint,
) ([]models.TimeSlot, error) {
	logger := utils.GetLogger()

	provider, err := se.ProviderRepo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider: %w", err)
	}
	if provider == nil {
		return nil, ErrNotFound
	}

	service, ok := provider.ServiceByID(serviceID)
	if !ok {
		return nil, NewDomainError(CodeNotFound, "service not offered by provider")
	}

	bookings, err := se.BookingRepo.GetBookingsForProviderDate(ctx, providerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	day := buildDayAvailability(provider.HoursFor(date), date, bookings)
	slots := CalculateAvailableSlots(day, service.DurationMinutes, se.now())
	if len(slots) == 0 {
		logger.Debug("no slots for day",
			zap.String("providerID", providerID), zap.String("date", date))
		return slots, nil
	}

	if provider.TravelTimeEnabled && customerLocation != nil {
		slots = ApplyTravelTime(slots, visitsOf(bookings), customerLocation)
	}
	return slots, nil
}

func buildDayAvailability(hours models.DayHours, date string, bookings []models.Booking) models.DayAvailability {
	day := models.DayAvailability{
		Date:        date,
		Closed:      hours.Closed,
		OpeningTime: hours.OpeningTime,
		ClosingTime: hours.ClosingTime,
	}
	for _, b := range bookings {
		day.BookedSlots = append(day.BookedSlots, models.Interval{
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
		})
	}
	return day
}

func visitsOf(bookings []models.Booking) []models.BookedVisit {
	visits := make([]models.BookedVisit, 0, len(bookings))
	for _, b := range bookings {
		visits = append(visits, models.BookedVisit{
			Interval: models.Interval{StartTime: b.StartTime, EndTime: b.EndTime},
			Location: b.Location,
		})
	}
	return visits
}
