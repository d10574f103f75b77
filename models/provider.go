package models

import "time"

// GeoPoint is a GeoJSON point, [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"` // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// DayHours holds a provider's configured opening hours for one weekday.
// A closed day carries Closed=true and empty times.
type DayHours struct {
	Closed      bool   `bson:"closed" json:"closed"`
	OpeningTime string `bson:"openingTime,omitempty" json:"openingTime,omitempty"` // "HH:MM"
	ClosingTime string `bson:"closingTime,omitempty" json:"closingTime,omitempty"` // "HH:MM"
}

// ProviderService is one service a provider offers (trim, vaccination, ...).
type ProviderService struct {
	ServiceID       string  `bson:"serviceId" json:"serviceId"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
}

// Provider represents a horse-service provider (farrier, vet, groomer).
type Provider struct {
	ID          string            `bson:"id" json:"id"`
	Name        string            `bson:"name" json:"name"`
	Email       string            `bson:"email" json:"email"`
	ServiceType string            `bson:"serviceType" json:"serviceType"` // "farrier", "vet", "groomer"
	Services    []ProviderService `bson:"services" json:"services"`
	// WeeklyHours is keyed by lowercase weekday name ("monday".."sunday").
	WeeklyHours map[string]DayHours `bson:"weeklyHours" json:"weeklyHours"`
	LocationGeo *GeoPoint           `bson:"locationGeo,omitempty" json:"locationGeo,omitempty"`
	// TravelTimeEnabled switches on travel-time filtering between visits.
	TravelTimeEnabled bool      `bson:"travelTimeEnabled" json:"travelTimeEnabled"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceByID returns the provider's catalogue entry for a service.
func (p Provider) ServiceByID(serviceID string) (ProviderService, bool) {
	for _, s := range p.Services {
		if s.ServiceID == serviceID {
			return s, true
		}
	}
	return ProviderService{}, false
}

// HoursFor returns the configured hours for a date ("2006-01-02").
func (p Provider) HoursFor(date string) DayHours {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return DayHours{Closed: true}
	}
	hours, ok := p.WeeklyHours[weekdayKey(day.Weekday())]
	if !ok {
		return DayHours{Closed: true}
	}
	return hours
}

func weekdayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
