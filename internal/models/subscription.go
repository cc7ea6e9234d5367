package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for subscription start and end dates
const DateLayout = "2006-01-02"

// Subscription is a paid plan held by a client.
// Dates are stored as YYYY-MM-DD strings; no ordering between them is enforced.
type Subscription struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	ClientID  string  `json:"clientId"`
}

// GetID returns the subscription identifier
func (s Subscription) GetID() string {
	return s.ID
}

// DaysRemaining returns the number of whole days from now until the end date.
// The result is negative once the subscription has lapsed.
func (s Subscription) DaysRemaining(now time.Time) (int, error) {
	end, err := time.ParseInLocation(DateLayout, s.EndDate, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid end date %q: %w", s.EndDate, err)
	}
	return daysBetween(now, end), nil
}

// calendarDay maps t's local date onto UTC midnight so days are always 24h long
func calendarDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(start, end time.Time) int {
	return int(calendarDay(end).Sub(calendarDay(start)).Hours() / 24)
}
