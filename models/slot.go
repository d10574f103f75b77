package models

// Reasons a generated slot can be unavailable.
const (
	SlotReasonBooked     = "booked"
	SlotReasonTravelTime = "travel-time"
	SlotReasonPast       = "past"
)

// TimeSlot is a fixed-duration candidate appointment window. Slots are
// recomputed on every availability query and never persisted.
type TimeSlot struct {
	StartTime         string `json:"startTime"` // "HH:MM"
	EndTime           string `json:"endTime"`   // "HH:MM"
	Available         bool   `json:"isAvailable"`
	UnavailableReason string `json:"unavailableReason,omitempty"`
}

// Interval is a start/end time pair scoped to one calendar day.
// Invariant: StartTime < EndTime.
type Interval struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DayAvailability describes one calendar day of a provider's schedule:
// configured opening hours plus the intervals already taken by bookings.
type DayAvailability struct {
	Date        string     `json:"date"` // "2006-01-02"
	Closed      bool       `json:"isClosed"`
	OpeningTime string     `json:"openingTime,omitempty"` // "HH:MM"
	ClosingTime string     `json:"closingTime,omitempty"` // "HH:MM"
	BookedSlots []Interval `json:"bookedSlots"`
}

// BookedVisit is a booking projected onto a provider's day route: its
// occupied interval plus the visit location when the customer shared one.
type BookedVisit struct {
	Interval
	Location *GeoPoint `json:"location,omitempty"`
}
