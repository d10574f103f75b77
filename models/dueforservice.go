package models

import "time"

// Due-for-service status values.
const (
	DueStatusOverdue  = "overdue"
	DueStatusUpcoming = "upcoming"
	DueStatusOK       = "ok"
)

// DueForServiceResult is a derived recurring-maintenance reminder for one
// (horse, service) pair. It is recomputed from the latest completed booking
// and never stored.
type DueForServiceResult struct {
	HorseID         string    `json:"horseId"`
	HorseName       string    `json:"horseName"`
	ServiceID       string    `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	LastServiceDate time.Time `json:"lastServiceDate"`
	IntervalWeeks   int       `json:"intervalWeeks"`
	DaysUntilDue    int       `json:"daysUntilDue"`
	Status          string    `json:"status"`
}
