package group

import (
	"context"
	"testing"

	"horselink/models"
	"horselink/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchInput(requestID string) MatchRequestInput {
	return MatchRequestInput{
		GroupBookingRequestID:  requestID,
		ProviderID:             "prov-1",
		ServiceID:              "svc-trim",
		BookingDate:            "2026-03-09",
		StartTime:              "10:00",
		ServiceDurationMinutes: 60,
	}
}

func TestMatchRequestSequencesParticipantsBackToBack(t *testing.T) {
	repo := newFakeGroupRepo()
	bookings := &fakeGroupBookingRepo{}
	notifier := &recordingNotifier{}
	svc := newTestGroupService(repo, bookings, notifier)

	request := createOpenRequest(t, svc, 3)
	_, err := svc.JoinByInviteCode(context.Background(), request.InviteCode, models.GroupParticipant{
		UserID: "cust-2", HorseID: "horse-2", HorseName: "Storm",
	})
	require.NoError(t, err)

	result, err := svc.MatchRequest(context.Background(), matchInput(request.ID))
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Empty(t, result.Errors)
	require.Len(t, result.BookingsCreated, 2)

	first, second := result.BookingsCreated[0], result.BookingsCreated[1]
	assert.Equal(t, "10:00", first.StartTime)
	assert.Equal(t, "11:00", first.EndTime)
	assert.Equal(t, "11:00", second.StartTime)
	assert.Equal(t, "12:00", second.EndTime)
	for _, b := range result.BookingsCreated {
		assert.Equal(t, models.BookingStatusConfirmed, b.Status)
		assert.Equal(t, "Hoof trim", b.ServiceName)
		assert.Equal(t, 45.0, b.TotalPrice)
		assert.Equal(t, request.ID, b.GroupBookingID)
	}

	stored, err := repo.GetRequestByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusMatched, stored.Status)
	assert.Equal(t, "prov-1", stored.ProviderID)
	for _, p := range stored.Participants {
		assert.Equal(t, models.ParticipantStatusBooked, p.Status)
	}

	require.Len(t, notifier.notifications, 2)
	for _, n := range notifier.notifications {
		assert.Contains(t, n.Message, "confirmed")
	}
}

func TestMatchRequestPartialFailureStillMatches(t *testing.T) {
	repo := newFakeGroupRepo()
	bookings := &fakeGroupBookingRepo{failCustomers: map[string]bool{"cust-2": true}}
	notifier := &recordingNotifier{}
	svc := newTestGroupService(repo, bookings, notifier)

	request := createOpenRequest(t, svc, 3)
	_, err := svc.JoinByInviteCode(context.Background(), request.InviteCode, models.GroupParticipant{
		UserID: "cust-2", HorseID: "horse-2",
	})
	require.NoError(t, err)

	result, err := svc.MatchRequest(context.Background(), matchInput(request.ID))
	require.NoError(t, err)

	assert.True(t, result.Success, "one booked participant is enough to match")
	require.Len(t, result.BookingsCreated, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cust-2")

	stored, err := repo.GetRequestByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusMatched, stored.Status)

	statuses := map[string]string{}
	for _, p := range stored.Participants {
		statuses[p.UserID] = p.Status
	}
	assert.Equal(t, models.ParticipantStatusBooked, statuses["cust-1"])
	assert.Equal(t, models.ParticipantStatusJoined, statuses["cust-2"], "the failed participant stays joined")

	// The failed participant is told to rebook.
	require.Len(t, notifier.notifications, 2)
	byUser := map[string]string{}
	for _, n := range notifier.notifications {
		byUser[n.UserID] = n.Message
	}
	assert.Contains(t, byUser["cust-1"], "confirmed")
	assert.Contains(t, byUser["cust-2"], "could not be completed")
}

func TestMatchRequestTotalFailureLeavesRequestOpen(t *testing.T) {
	repo := newFakeGroupRepo()
	bookings := &fakeGroupBookingRepo{failCustomers: map[string]bool{"cust-1": true}}
	svc := newTestGroupService(repo, bookings, &recordingNotifier{})

	request := createOpenRequest(t, svc, 3)

	result, err := svc.MatchRequest(context.Background(), matchInput(request.ID))
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Empty(t, result.BookingsCreated)
	require.Len(t, result.Errors, 1)

	stored, err := repo.GetRequestByID(context.Background(), request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusOpen, stored.Status, "with no bookings the request stays open")
	assert.Empty(t, stored.ProviderID)
}

func TestMatchRequestSkipsRemovedParticipants(t *testing.T) {
	repo := newFakeGroupRepo()
	bookings := &fakeGroupBookingRepo{}
	svc := newTestGroupService(repo, bookings, &recordingNotifier{})

	request := createOpenRequest(t, svc, 3)
	_, err := svc.JoinByInviteCode(context.Background(), request.InviteCode, models.GroupParticipant{
		UserID: "cust-2", HorseID: "horse-2",
	})
	require.NoError(t, err)
	_, err = svc.RemoveParticipant(context.Background(), request.ID, "cust-2", "cust-2")
	require.NoError(t, err)

	result, err := svc.MatchRequest(context.Background(), matchInput(request.ID))
	require.NoError(t, err)

	require.Len(t, result.BookingsCreated, 1)
	assert.Equal(t, "cust-1", result.BookingsCreated[0].CustomerID)
}

func TestMatchRequestRequiresOpenRequest(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := newTestGroupService(repo, &fakeGroupBookingRepo{}, &recordingNotifier{})

	_, err := svc.MatchRequest(context.Background(), matchInput("missing"))
	de, _ := booking.AsDomainError(err)
	assert.Equal(t, booking.CodeGroupBookingNotFound, de.Code)

	request := createOpenRequest(t, svc, 3)
	_, err = svc.UpdateRequestStatus(context.Background(), request.ID, "cust-1", models.GroupStatusCancelled)
	require.NoError(t, err)

	_, err = svc.MatchRequest(context.Background(), matchInput(request.ID))
	de, _ = booking.AsDomainError(err)
	assert.Equal(t, booking.CodeGroupBookingNotFound, de.Code)
}

func TestMatchRequestWithNoActiveParticipants(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := newTestGroupService(repo, &fakeGroupBookingRepo{}, &recordingNotifier{})

	request := createOpenRequest(t, svc, 3)
	// Force the only participant out without the auto-cancel, mirroring a
	// request whose bookings already went through once.
	stored := repo.requests[request.ID]
	stored.Participants[0].Status = models.ParticipantStatusBooked

	_, err := svc.MatchRequest(context.Background(), matchInput(request.ID))
	de, _ := booking.AsDomainError(err)
	assert.Equal(t, booking.CodeNoActiveParticipants, de.Code)
}
