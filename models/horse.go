package models

import "time"

// Horse is a customer-owned animal receiving recurring services.
type Horse struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"ownerId" json:"ownerId"`
	Name      string    `bson:"name" json:"name"`
	Breed     string    `bson:"breed,omitempty" json:"breed,omitempty"`
	BirthYear int       `bson:"birthYear,omitempty" json:"birthYear,omitempty"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CareService is a catalogue entry for a recurring service with its
// recommended default cadence. A nil DefaultIntervalWeeks means the
// service carries no recommended recurrence.
type CareService struct {
	ID                   string `bson:"id" json:"id"`
	Name                 string `bson:"name" json:"name"`
	DefaultIntervalWeeks *int   `bson:"defaultIntervalWeeks,omitempty" json:"defaultIntervalWeeks,omitempty"`
}

// IntervalOverride stores a cadence override for a service, either for one
// horse (set by the provider) or for a whole customer. Horse-level overrides
// win over customer-level ones, which win over the service default.
type IntervalOverride struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	HorseID       string    `bson:"horseId,omitempty" json:"horseId,omitempty"`
	CustomerID    string    `bson:"customerId,omitempty" json:"customerId,omitempty"`
	IntervalWeeks *int      `bson:"intervalWeeks,omitempty" json:"intervalWeeks,omitempty"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}
