package timesheet

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal"
)

type RecordEntryDTO struct {
	EmployeeID   int64  `json:"employee_id"`
	Date         string `json:"date"`
	EntryTime    string `json:"entry_time"`
	ExitTime     string `json:"exit_time"`
	LunchMinutes int    `json:"lunch_minutes"`
}

// Validate parses the boundary strings and enforces the same-day clock
// invariants before anything reaches storage.
func (d *RecordEntryDTO) Validate() (time.Time, error) {
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return time.Time{}, internal.NewValidationError("date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	entryMin, err := clockMinutes(d.EntryTime)
	if err != nil {
		return time.Time{}, internal.NewValidationError("entry_time must be formatted HH:MM", internal.ErrCodeInvalidTime)
	}
	exitMin, err := clockMinutes(d.ExitTime)
	if err != nil {
		return time.Time{}, internal.NewValidationError("exit_time must be formatted HH:MM", internal.ErrCodeInvalidTime)
	}
	if exitMin <= entryMin {
		return time.Time{}, internal.NewValidationError("exit_time must be after entry_time on the same day", internal.ErrCodeInvalidTimeRange)
	}

	if d.LunchMinutes < 0 {
		return time.Time{}, internal.NewValidationError("lunch_minutes must not be negative", internal.ErrCodeValidationFailed)
	}

	return date, nil
}

type EntryResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	Date         string  `json:"date"`
	EntryTime    string  `json:"entry_time"`
	ExitTime     string  `json:"exit_time"`
	LunchMinutes int     `json:"lunch_minutes"`
	WorkedHours  float64 `json:"worked_hours"`
}

type EntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

func toResponse(e *DailyEntry) EntryResponse {
	// Stored entries always satisfy exit > entry, so the derivation cannot
	// fail here; a zero value would indicate a corrupted row.
	hours, _ := e.WorkedHours()
	return EntryResponse{
		ID:           e.ID,
		EmployeeID:   e.EmployeeID,
		Date:         e.Date.Format(DateLayout),
		EntryTime:    e.EntryTime,
		ExitTime:     e.ExitTime,
		LunchMinutes: e.LunchMinutes,
		WorkedHours:  hours,
	}
}
