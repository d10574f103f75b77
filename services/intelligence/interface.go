package intelligence

import (
	"context"
	"fmt"
	"time"

	bookingRepo "horselink/database/repository/booking"
	horseRepo "horselink/database/repository/horse"
	"horselink/models"
	"horselink/services/booking"
)

// InsightGenerator produces structured care insights. GeminiClient is the
// production implementation.
type InsightGenerator interface {
	GenerateCareInsight(ctx context.Context, horse models.Horse, history []models.Booking) (*models.CareInsight, error)
}

// InsightService is the engine-facing surface of the interpretation
// collaborator: it always returns typed, already-validated data.
type InsightService interface {
	GetCareInsight(ctx context.Context, horseID string) (*models.CareInsight, error)
}

// DefaultInsightService assembles horse history and delegates interpretation
// to the generator, recording context per owner.
type DefaultInsightService struct {
	Generator   InsightGenerator
	HorseRepo   horseRepo.HorseRepository
	BookingRepo bookingRepo.BookingRepository
	Context     ContextStore
}

func (s *DefaultInsightService) GetCareInsight(ctx context.Context, horseID string) (*models.CareInsight, error) {
	horse, err := s.HorseRepo.GetHorseByID(ctx, horseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch horse: %w", err)
	}
	if horse == nil {
		return nil, booking.ErrNotFound
	}

	completed, err := s.BookingRepo.GetCompletedBookingsByCustomer(ctx, horse.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking history: %w", err)
	}
	var history []models.Booking
	for _, b := range completed {
		if b.HorseID == horseID {
			history = append(history, b)
		}
	}
	if len(history) == 0 {
		return nil, booking.NewDomainError(booking.CodeNoData, "not enough service history for an insight")
	}

	insight, err := s.Generator.GenerateCareInsight(ctx, *horse, history)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	if s.Context != nil {
		if insightCtx, err := s.Context.Get(ctx, horse.OwnerID); err == nil {
			insightCtx.Entries = append(insightCtx.Entries, insight.Summary)
			insightCtx.UpdatedAt = time.Now()
			_ = s.Context.Set(ctx, horse.OwnerID, insightCtx)
		}
	}
	return insight, nil
}
