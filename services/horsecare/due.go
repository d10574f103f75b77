package horsecare

import (
	"context"
	"fmt"
	"sort"
	"time"

	bookingRepo "horselink/database/repository/booking"
	horseRepo "horselink/database/repository/horse"
	"horselink/models"
	"horselink/utils"

	"go.uber.org/zap"
)

// ResolveInterval picks the recurring-visit cadence for a horse+service pair.
// Precedence: horse-specific override (set by the provider) beats the
// customer-wide preference, which beats the service's recommended default.
// Nil is returned only when every tier is nil; such pairs carry no recurrence
// and are excluded from due-for-service results.
func ResolveInterval(serviceDefaultWeeks, horseOverrideWeeks, customerOverrideWeeks *int) *int {
	if horseOverrideWeeks != nil {
		return horseOverrideWeeks
	}
	if customerOverrideWeeks != nil {
		return customerOverrideWeeks
	}
	return serviceDefaultWeeks
}

// CalculateDueStatus derives how far a horse is from its next visit.
// daysUntilDue = intervalWeeks*7 - days since the last service.
// Negative means overdue; 0..14 days out counts as upcoming.
func CalculateDueStatus(lastServiceDate time.Time, intervalWeeks int, now time.Time) (daysUntilDue int, status string) {
	daysSince := int(now.Sub(lastServiceDate).Hours() / 24)
	daysUntilDue = intervalWeeks*7 - daysSince

	switch {
	case daysUntilDue < 0:
		status = models.DueStatusOverdue
	case daysUntilDue <= 14:
		status = models.DueStatusUpcoming
	default:
		status = models.DueStatusOK
	}
	return daysUntilDue, status
}

// DefaultDueForServiceService is the production implementation.
type DefaultDueForServiceService struct {
	HorseRepo   horseRepo.HorseRepository
	BookingRepo bookingRepo.BookingRepository
	Cache       ResultCache
}

// ListDueForService recomputes the due list from the latest completed booking
// per (horse, service) pair. Older bookings for the same pair are discarded
// by booking date before interval resolution. Results are sorted ascending by
// daysUntilDue, so the most overdue pair comes first.
func (s *DefaultDueForServiceService) ListDueForService(ctx context.Context, customerID string, now time.Time) ([]models.DueForServiceResult, error) {
	cacheKey := "due:" + customerID
	if cached, ok := s.cache().Get(ctx, cacheKey); ok {
		return cached, nil
	}

	horses, err := s.HorseRepo.GetHorsesByOwner(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch horses: %w", err)
	}
	horsesByID := make(map[string]models.Horse, len(horses))
	for _, h := range horses {
		horsesByID[h.ID] = h
	}

	completed, err := s.BookingRepo.GetCompletedBookingsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking history: %w", err)
	}

	latest := latestBookingPerPair(completed)

	var results []models.DueForServiceResult
	logger := utils.GetLogger()
	for _, b := range latest {
		horse, ok := horsesByID[b.HorseID]
		if !ok {
			continue
		}

		interval, err := s.resolveIntervalFor(ctx, customerID, b.HorseID, b.ServiceID)
		if err != nil {
			logger.Warn("skipping pair, interval resolution failed",
				zap.String("horseID", b.HorseID),
				zap.String("serviceID", b.ServiceID),
				zap.Error(err))
			continue
		}
		if interval == nil {
			// No recurrence configured at any tier.
			continue
		}

		lastDate, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			continue
		}

		daysUntilDue, status := CalculateDueStatus(lastDate, *interval, now)
		results = append(results, models.DueForServiceResult{
			HorseID:         b.HorseID,
			HorseName:       horse.Name,
			ServiceID:       b.ServiceID,
			ServiceName:     b.ServiceName,
			LastServiceDate: lastDate,
			IntervalWeeks:   *interval,
			DaysUntilDue:    daysUntilDue,
			Status:          status,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].DaysUntilDue < results[j].DaysUntilDue
	})

	s.cache().Set(ctx, cacheKey, results)
	return results, nil
}

func (s *DefaultDueForServiceService) resolveIntervalFor(ctx context.Context, customerID, horseID, serviceID string) (*int, error) {
	svc, err := s.HorseRepo.GetCareService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	var serviceDefault *int
	if svc != nil {
		serviceDefault = svc.DefaultIntervalWeeks
	}

	var horseWeeks *int
	if horseOverride, err := s.HorseRepo.GetHorseOverride(ctx, horseID, serviceID); err != nil {
		return nil, err
	} else if horseOverride != nil {
		horseWeeks = horseOverride.IntervalWeeks
	}

	var customerWeeks *int
	if customerOverride, err := s.HorseRepo.GetCustomerOverride(ctx, customerID, serviceID); err != nil {
		return nil, err
	} else if customerOverride != nil {
		customerWeeks = customerOverride.IntervalWeeks
	}

	return ResolveInterval(serviceDefault, horseWeeks, customerWeeks), nil
}

// latestBookingPerPair keeps only the booking with the latest date for each
// (horse, service) pair. Ties and ordering are decided by date, not by
// insertion order.
func latestBookingPerPair(bookings []models.Booking) []models.Booking {
	type pairKey struct{ horseID, serviceID string }
	latest := make(map[pairKey]models.Booking)
	for _, b := range bookings {
		if b.HorseID == "" {
			continue
		}
		key := pairKey{b.HorseID, b.ServiceID}
		if existing, ok := latest[key]; !ok || b.Date > existing.Date {
			latest[key] = b
		}
	}
	out := make([]models.Booking, 0, len(latest))
	for _, b := range latest {
		out = append(out, b)
	}
	return out
}

func (s *DefaultDueForServiceService) cache() ResultCache {
	if s.Cache == nil {
		return NopCache{}
	}
	return s.Cache
}
