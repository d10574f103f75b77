package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "horselink/database/repository/booking"
	groupRepo "horselink/database/repository/group"
	providerRepo "horselink/database/repository/provider"
	"horselink/models"
	"horselink/services/booking"
	"horselink/services/notification"

	"github.com/google/uuid"
)

// groupTransitions mirrors the request state machine: open can be matched or
// cancelled, matched can complete, nothing else moves.
var groupTransitions = map[string][]string{
	models.GroupStatusOpen:    {models.GroupStatusMatched, models.GroupStatusCancelled},
	models.GroupStatusMatched: {models.GroupStatusCompleted},
}

func transitionAllowed(oldStatus, newStatus string) bool {
	for _, next := range groupTransitions[oldStatus] {
		if next == newStatus {
			return true
		}
	}
	return false
}

// DefaultGroupBookingService is the production implementation.
type DefaultGroupBookingService struct {
	GroupRepo    groupRepo.GroupRepository
	BookingRepo  bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	Notifier     notification.NotificationService
	Now          booking.Clock
}

func (s *DefaultGroupBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultGroupBookingService) CreateRequest(ctx context.Context, input CreateRequestInput) (*models.GroupBookingRequest, error) {
	if input.MaxParticipants < 2 {
		return nil, booking.NewDomainError(booking.CodeGroupFull, "a group needs room for at least two participants")
	}

	now := s.now()
	request := &models.GroupBookingRequest{
		ID:              uuid.New().String(),
		CreatorID:       input.CreatorID,
		ServiceID:       input.ServiceID,
		LocationName:    input.LocationName,
		Status:          models.GroupStatusOpen,
		MaxParticipants: input.MaxParticipants,
		JoinDeadline:    input.JoinDeadline,
		InviteCode:      newInviteCode(),
		Participants: []models.GroupParticipant{{
			UserID:    input.CreatorID,
			HorseID:   input.CreatorHorseID,
			HorseName: input.CreatorHorse,
			Status:    models.ParticipantStatusJoined,
			JoinedAt:  now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.GroupRepo.CreateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create group booking request: %w", err)
	}
	return request, nil
}

func (s *DefaultGroupBookingService) JoinByInviteCode(ctx context.Context, inviteCode string, participant models.GroupParticipant) (*models.GroupBookingRequest, error) {
	request, err := s.GroupRepo.GetRequestByInviteCode(ctx, inviteCode)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group booking request: %w", err)
	}
	if request == nil {
		return nil, booking.NewDomainError(booking.CodeGroupBookingNotFound, "no group booking found for this invite code")
	}
	if request.Status != models.GroupStatusOpen {
		return nil, booking.NewDomainError(booking.CodeGroupNotOpen, "this group booking is no longer open")
	}
	if !request.JoinDeadline.IsZero() && s.now().After(request.JoinDeadline) {
		return nil, booking.NewDomainError(booking.CodeJoinDeadlinePassed, "the join deadline for this group has passed")
	}
	if request.HasParticipant(participant.UserID) {
		return nil, booking.NewDomainError(booking.CodeAlreadyJoined, "you already joined this group booking")
	}
	if len(request.ActiveParticipants()) >= request.MaxParticipants {
		return nil, booking.NewDomainError(booking.CodeGroupFull, "this group booking is full")
	}

	participant.Status = models.ParticipantStatusJoined
	participant.JoinedAt = s.now()
	request.Participants = append(request.Participants, participant)

	if err := s.GroupRepo.UpdateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update group booking request: %w", err)
	}
	return request, nil
}

// RemoveParticipant marks a participant removed. Only the creator or the
// participant themself may do this. Removing the last active participant
// auto-cancels the request; an open group never lingers with nobody in it.
func (s *DefaultGroupBookingService) RemoveParticipant(ctx context.Context, requestID, targetUserID, actorID string) (*models.GroupBookingRequest, error) {
	request, err := s.GroupRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group booking request: %w", err)
	}
	if request == nil {
		return nil, booking.NewDomainError(booking.CodeGroupBookingNotFound, "group booking not found")
	}
	if actorID != request.CreatorID && actorID != targetUserID {
		return nil, booking.NewDomainError(booking.CodeUnauthorized, "only the creator or the participant can remove a participant")
	}

	found := false
	for i := range request.Participants {
		p := &request.Participants[i]
		if p.UserID == targetUserID && p.Status != models.ParticipantStatusRemoved {
			p.Status = models.ParticipantStatusRemoved
			found = true
			break
		}
	}
	if !found {
		return nil, booking.NewDomainError(booking.CodeNotFound, "participant not found in this group")
	}

	if len(request.ActiveParticipants()) == 0 {
		request.Status = models.GroupStatusCancelled
	}

	if err := s.GroupRepo.UpdateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update group booking request: %w", err)
	}
	return request, nil
}

func (s *DefaultGroupBookingService) UpdateRequestStatus(ctx context.Context, requestID, actorID, newStatus string) (*models.GroupBookingRequest, error) {
	request, err := s.GroupRepo.GetRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch group booking request: %w", err)
	}
	if request == nil {
		return nil, booking.NewDomainError(booking.CodeGroupBookingNotFound, "group booking not found")
	}
	if actorID != request.CreatorID {
		return nil, booking.NewDomainError(booking.CodeUnauthorized, "only the creator can update the group booking")
	}
	if !transitionAllowed(request.Status, newStatus) {
		return nil, booking.NewDomainError(booking.CodeInvalidStatusTransition,
			fmt.Sprintf("cannot transition group from %s to %s", request.Status, newStatus))
	}

	request.Status = newStatus
	if err := s.GroupRepo.UpdateRequest(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to update group booking request: %w", err)
	}
	return request, nil
}

func newInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
}
