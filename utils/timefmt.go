package utils

import (
	"fmt"
	"time"
)

// ParseHHMM converts a "HH:MM" wall-clock string to minutes from midnight.
func ParseHHMM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHHMM converts minutes from midnight to a "HH:MM" string.
// Minute arithmetic past midnight rolls over (e.g. 1500 -> "01:00").
func FormatHHMM(minutes int) string {
	minutes = ((minutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CombineDateTime resolves a "2006-01-02" date plus minutes from midnight
// into an absolute timestamp in the given location.
func CombineDateTime(date string, minutes int, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// FormatBookingDateTime renders a human-readable date/time for notifications.
func FormatBookingDateTime(date string, minutes int) (string, error) {
	t, err := CombineDateTime(date, minutes, time.UTC)
	if err != nil {
		return "", err
	}
	return t.Format("2 January, 3:04 PM"), nil
}
