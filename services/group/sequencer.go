package group

import (
	"context"
	"fmt"

	"horselink/models"
	"horselink/services/booking"
	"horselink/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchRequest assigns a provider visit to an open group request. Each joined
// participant gets a sequential slot of the service duration: the first
// starts at the requested time, every next one where the previous ended, so
// a single provider visit serves the whole group back to back.
//
// Bookings are materialized best-effort inside one storage transaction:
// individual creation failures become warnings in the result instead of
// aborting sibling bookings. With at least one success the request flips to
// matched and is bound to the provider; with none it stays open. Participant
// notifications go out afterwards and never affect the outcome.
func (s *DefaultGroupBookingService) MatchRequest(ctx context.Context, input MatchRequestInput) (*MatchResult, error) {
	request, err := s.GroupRepo.GetRequestByID(ctx, input.GroupBookingRequestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group booking request: %w", err)
	}
	if request == nil || request.Status != models.GroupStatusOpen {
		return nil, booking.NewDomainError(booking.CodeGroupBookingNotFound, "no open group booking request to match")
	}

	var joined []models.GroupParticipant
	for _, p := range request.Participants {
		if p.Status == models.ParticipantStatusJoined {
			joined = append(joined, p)
		}
	}
	if len(joined) == 0 {
		return nil, booking.NewDomainError(booking.CodeNoActiveParticipants, "the group has no active participants")
	}

	serviceName := input.ServiceID
	var price float64
	if provider, err := s.ProviderRepo.GetProviderByID(ctx, input.ProviderID); err == nil && provider != nil {
		if svc, ok := provider.ServiceByID(input.ServiceID); ok {
			serviceName = svc.Name
			price = svc.Price
		}
	}

	cursor, err := utils.ParseHHMM(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	now := s.now()
	bookings := make([]*models.Booking, 0, len(joined))
	for _, p := range joined {
		end := cursor + input.ServiceDurationMinutes
		bookings = append(bookings, &models.Booking{
			ID:             uuid.New().String(),
			ProviderID:     input.ProviderID,
			CustomerID:     p.UserID,
			HorseID:        p.HorseID,
			HorseName:      p.HorseName,
			ServiceID:      input.ServiceID,
			ServiceName:    serviceName,
			Date:           input.BookingDate,
			StartTime:      utils.FormatHHMM(cursor),
			EndTime:        utils.FormatHHMM(end),
			Status:         models.BookingStatusConfirmed,
			TotalPrice:     price,
			GroupBookingID: request.ID,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		cursor = end
	}

	created, failures, err := s.BookingRepo.CreateBookingsBestEffort(ctx, bookings)
	if err != nil {
		return nil, fmt.Errorf("group booking creation failed: %w", err)
	}

	result := &MatchResult{
		Success:         len(created) > 0,
		BookingsCreated: created,
	}
	for _, f := range failures {
		result.Errors = append(result.Errors,
			fmt.Sprintf("could not book participant %s: %v", f.CustomerID, f.Err))
	}

	if len(created) > 0 {
		bookedUsers := make(map[string]bool, len(created))
		for _, b := range created {
			bookedUsers[b.CustomerID] = true
		}
		for i := range request.Participants {
			p := &request.Participants[i]
			if p.Status == models.ParticipantStatusJoined && bookedUsers[p.UserID] {
				p.Status = models.ParticipantStatusBooked
			}
		}
		request.Status = models.GroupStatusMatched
		request.ProviderID = input.ProviderID
		if err := s.GroupRepo.UpdateRequest(ctx, request); err != nil {
			return nil, fmt.Errorf("failed to update group booking request: %w", err)
		}
	}

	s.notifyParticipants(ctx, request, joined, created, input)

	return result, nil
}

// notifyParticipants tells every joined participant how the match went.
// Notification failures are logged and dropped; booked slots stand either way.
func (s *DefaultGroupBookingService) notifyParticipants(
	ctx context.Context,
	request *models.GroupBookingRequest,
	joined []models.GroupParticipant,
	created []models.Booking,
	input MatchRequestInput,
) {
	if s.Notifier == nil {
		return
	}
	logger := utils.GetLogger()

	slotByUser := make(map[string]models.Booking, len(created))
	for _, b := range created {
		slotByUser[b.CustomerID] = b
	}

	for _, p := range joined {
		var message string
		if b, ok := slotByUser[p.UserID]; ok {
			message = fmt.Sprintf("Your group booking is confirmed: %s on %s at %s", b.ServiceName, b.Date, b.StartTime)
		} else {
			message = fmt.Sprintf("Your group booking for %s could not be completed; please rebook", input.BookingDate)
		}
		err := s.Notifier.CreateNotification(ctx, models.NotificationInput{
			UserID:  p.UserID,
			Type:    "group_booking_matched",
			Message: message,
			LinkURL: "/group-bookings/" + request.ID,
			Metadata: map[string]any{
				"groupBookingId": request.ID,
				"providerId":     input.ProviderID,
			},
		})
		if err != nil {
			logger.Warn("group match notification failed",
				zap.String("userID", p.UserID),
				zap.String("groupBookingID", request.ID),
				zap.Error(err))
		}
	}
}
