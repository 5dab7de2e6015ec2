package timesheet

import (
	"log/slog"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	GetByEmployeeAndDate(employeeID int64, date time.Time) (*DailyEntry, error)
	Save(entry *DailyEntry) error
	ListByEmployeeAndRange(employeeID int64, start, end time.Time) ([]*DailyEntry, error)
}

// EmployeeDirectory answers referential checks without pulling in the whole
// employee service surface.
type EmployeeDirectory interface {
	Exists(id int64) (bool, error)
}

type Service struct {
	repo      RepositoryAPI
	employees EmployeeDirectory
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, employees EmployeeDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		employees: employees,
		logger:    logger,
	}
}

// RecordEntry upserts the daily entry for (employee, date). A second call
// for the same pair overwrites all three clock fields, last write wins.
func (s *Service) RecordEntry(dto RecordEntryDTO) (*DailyEntry, error) {
	date, err := dto.Validate()
	if err != nil {
		return nil, err
	}

	exists, err := s.employees.Exists(dto.EmployeeID)
	if err != nil {
		s.logger.Error("failed to check employee", "employee_id", dto.EmployeeID, "error", err)
		return nil, internal.NewInternalError("failed to check employee", err)
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	entry, err := s.repo.GetByEmployeeAndDate(dto.EmployeeID, date)
	if err != nil {
		s.logger.Error("failed to load daily entry", "employee_id", dto.EmployeeID, "error", err)
		return nil, internal.NewInternalError("failed to load daily entry", err)
	}

	now := time.Now()
	if entry == nil {
		entry = &DailyEntry{
			EmployeeID: dto.EmployeeID,
			Date:       date,
			CreatedAt:  now,
		}
	}
	entry.EntryTime = dto.EntryTime
	entry.ExitTime = dto.ExitTime
	entry.LunchMinutes = dto.LunchMinutes
	entry.UpdatedAt = now

	if err := s.repo.Save(entry); err != nil {
		s.logger.Error("failed to save daily entry", "employee_id", dto.EmployeeID, "date", dto.Date, "error", err)
		return nil, internal.NewInternalError("failed to save daily entry", err)
	}

	s.logger.Info("daily entry recorded",
		"entry_id", entry.ID,
		"employee_id", entry.EmployeeID,
		"date", dto.Date)

	return entry, nil
}

// EntriesForPeriod lists the employee's entries in [start, end].
func (s *Service) EntriesForPeriod(employeeID int64, start, end time.Time) ([]*DailyEntry, error) {
	exists, err := s.employees.Exists(employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employee", err)
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	entries, err := s.repo.ListByEmployeeAndRange(employeeID, start, end)
	if err != nil {
		s.logger.Error("failed to list daily entries", "employee_id", employeeID, "error", err)
		return nil, internal.NewInternalError("failed to list daily entries", err)
	}
	return entries, nil
}

// HoursForPeriod sums worked hours over [start, end]. Payroll rows are not
// cross-checked against this figure; it exists for the reporting side.
func (s *Service) HoursForPeriod(employeeID int64, start, end time.Time) (float64, error) {
	entries, err := s.EntriesForPeriod(employeeID, start, end)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range entries {
		hours, err := e.WorkedHours()
		if err != nil {
			s.logger.Warn("skipping uncomputable entry", "entry_id", e.ID, "error", err)
			continue
		}
		total += hours
	}
	return total, nil
}
