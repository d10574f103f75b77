package models

import "time"

// Group booking request status values.
const (
	GroupStatusOpen      = "open"
	GroupStatusMatched   = "matched"
	GroupStatusCancelled = "cancelled"
	GroupStatusCompleted = "completed"
)

// Group participant status values.
const (
	ParticipantStatusJoined  = "joined"
	ParticipantStatusBooked  = "booked"
	ParticipantStatusRemoved = "removed"
)

// GroupParticipant is one horse owner taking part in a group booking request.
type GroupParticipant struct {
	UserID    string    `bson:"userId" json:"userId"`
	HorseID   string    `bson:"horseId" json:"horseId"`
	HorseName string    `bson:"horseName" json:"horseName"`
	Status    string    `bson:"status" json:"status"`
	JoinedAt  time.Time `bson:"joinedAt" json:"joinedAt"`
}

// GroupBookingRequest is a customer-initiated request for multiple
// participants to be served by the same provider visit.
type GroupBookingRequest struct {
	ID              string             `bson:"id" json:"id"`
	CreatorID       string             `bson:"creatorId" json:"creatorId"`
	ServiceID       string             `bson:"serviceId" json:"serviceId"`
	LocationName    string             `bson:"locationName,omitempty" json:"locationName,omitempty"`
	Status          string             `bson:"status" json:"status"`
	MaxParticipants int                `bson:"maxParticipants" json:"maxParticipants"`
	JoinDeadline    time.Time          `bson:"joinDeadline" json:"joinDeadline"`
	InviteCode      string             `bson:"inviteCode" json:"inviteCode"`
	Participants    []GroupParticipant `bson:"participants" json:"participants"`
	// ProviderID is bound once the request has been matched.
	ProviderID string    `bson:"providerId,omitempty" json:"providerId,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ActiveParticipants returns participants with status joined or booked.
func (g GroupBookingRequest) ActiveParticipants() []GroupParticipant {
	var active []GroupParticipant
	for _, p := range g.Participants {
		if p.Status == ParticipantStatusJoined || p.Status == ParticipantStatusBooked {
			active = append(active, p)
		}
	}
	return active
}

// HasParticipant reports whether the user already takes part (joined or booked).
func (g GroupBookingRequest) HasParticipant(userID string) bool {
	for _, p := range g.Participants {
		if p.UserID == userID && p.Status != ParticipantStatusRemoved {
			return true
		}
	}
	return false
}
