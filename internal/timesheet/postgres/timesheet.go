package postgres

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal/timesheet"
	"gorm.io/gorm"
)

type TimesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) timesheet.RepositoryAPI {
	return &TimesheetRepository{db: db}
}

func (r *TimesheetRepository) GetByEmployeeAndDate(employeeID int64, date time.Time) (*timesheet.DailyEntry, error) {
	var entry timesheet.DailyEntry
	err := r.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Save persists the entry, inserting or updating depending on whether it
// already carries a primary key. The unique (employee_id, date) index backs
// the one-row-per-day invariant against concurrent writers.
func (r *TimesheetRepository) Save(entry *timesheet.DailyEntry) error {
	return r.db.Save(entry).Error
}

func (r *TimesheetRepository) ListByEmployeeAndRange(employeeID int64, start, end time.Time) ([]*timesheet.DailyEntry, error) {
	var entries []*timesheet.DailyEntry
	err := r.db.Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, start, end).
		Order("date ASC").
		Find(&entries).Error
	return entries, err
}
