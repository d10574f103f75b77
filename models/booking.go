package models

import "time"

// Booking status values. Completed and cancelled are terminal.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Actor roles for lifecycle transitions; the role decides which side of the
// booking gets notified.
const (
	RoleProvider = "provider"
	RoleCustomer = "customer"
)

// Booking represents a booking record.
type Booking struct {
	ID          string  `bson:"id" json:"id"`
	ProviderID  string  `bson:"providerId" json:"providerId"`
	CustomerID  string  `bson:"customerId" json:"customerId"`
	HorseID     string  `bson:"horseId,omitempty" json:"horseId,omitempty"`
	HorseName   string  `bson:"horseName,omitempty" json:"horseName,omitempty"`
	ServiceID   string  `bson:"serviceId" json:"serviceId"`
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	Date        string  `bson:"date" json:"date"`           // "2006-01-02"
	StartTime   string  `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string  `bson:"endTime" json:"endTime"`     // "HH:MM"
	Status      string  `bson:"status" json:"status"`
	TotalPrice  float64 `bson:"totalPrice" json:"totalPrice"`
	// Location is the visit address when the customer shared one; used for
	// travel-time estimation between consecutive visits.
	Location            *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	GroupBookingID      string    `bson:"groupBookingId,omitempty" json:"groupBookingId,omitempty"`
	CancellationMessage string    `bson:"cancellationMessage,omitempty" json:"cancellationMessage,omitempty"`
	CreatedAt           time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time `bson:"updatedAt" json:"updatedAt"`
}
