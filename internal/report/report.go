package report

import (
	"time"
)

const DateLayout = "2006-01-02"

const (
	AlertHigh   = "high"
	AlertMedium = "medium"
	AlertLow    = "low"

	highThresholdDays   = 7
	mediumThresholdDays = 14
)

// Filter is a conjunctive set of optional report filters; a nil field
// applies no constraint.
type Filter struct {
	StartDate     *time.Time
	EndDate       *time.Time
	SupplierID    *int64
	CategoryID    *int64
	PaymentMethod *string
	Status        *string
}

// AlertLevel classifies a pending payable by days remaining until due.
// Boundaries are inclusive and checked from most urgent down.
func AlertLevel(daysUntilDue int) string {
	if daysUntilDue <= highThresholdDays {
		return AlertHigh
	}
	if daysUntilDue <= mediumThresholdDays {
		return AlertMedium
	}
	return AlertLow
}

// DaysUntil counts whole calendar days from today to due.
func DaysUntil(today, due time.Time) int {
	t := truncateToDate(today)
	d := truncateToDate(due)
	return int(d.Sub(t).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
