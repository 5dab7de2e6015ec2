package timesheet

import (
	"fmt"
	"time"
)

const (
	// Lunch breaks of at least this many minutes deduct half an hour from
	// the worked total.
	lunchDeductionThreshold = 30
	lunchDeductionHours     = 0.5

	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

// DailyEntry is one clock-in/clock-out record. At most one row exists per
// (employee, date); re-recording overwrites the clock fields in place.
type DailyEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	EmployeeID   int64     `json:"employee_id" gorm:"uniqueIndex:idx_employee_date;not null"`
	Date         time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_employee_date;not null"`
	EntryTime    string    `json:"entry_time" gorm:"type:time;not null"`
	ExitTime     string    `json:"exit_time" gorm:"type:time;not null"`
	LunchMinutes int       `json:"lunch_minutes" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (DailyEntry) TableName() string {
	return "daily_entries"
}

// WorkedHours derives the payable hours for the entry: exit minus entry in
// hours, less half an hour when the lunch break reached 30 minutes.
// Entries are same-day only; an exit at or before the entry time is an
// error (cross-midnight shifts are not modeled).
func (e *DailyEntry) WorkedHours() (float64, error) {
	entryMin, err := clockMinutes(e.EntryTime)
	if err != nil {
		return 0, err
	}
	exitMin, err := clockMinutes(e.ExitTime)
	if err != nil {
		return 0, err
	}
	if exitMin <= entryMin {
		return 0, fmt.Errorf("exit time %s is not after entry time %s", e.ExitTime, e.EntryTime)
	}

	hours := float64(exitMin-entryMin) / 60.0
	if e.LunchMinutes >= lunchDeductionThreshold {
		hours -= lunchDeductionHours
	}
	return hours, nil
}

// clockMinutes converts an HH:MM wall-clock string to minutes since midnight.
func clockMinutes(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
