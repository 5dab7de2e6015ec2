package payroll

import (
	"log/slog"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	Create(payroll *Payroll) error
	ListByPeriodEndDesc(limit int) ([]*Payroll, error)
	ListByEmployee(employeeID int64) ([]*Payroll, error)
}

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

// CreatePayroll records one pay period. Hours, amount and deductions come
// from the caller as-is; the service never derives them from the timesheet.
func (s *Service) CreatePayroll(dto CreatePayrollDTO) (*Payroll, error) {
	parsed, err := dto.Validate()
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

	p := &Payroll{
		EmployeeID:    dto.EmployeeID,
		PeriodStart:   parsed.periodStart,
		PeriodEnd:     parsed.periodEnd,
		TotalHours:    dto.TotalHours,
		PaymentMethod: dto.PaymentMethod,
		AmountPaid:    parsed.amountPaid,
		Deductions:    parsed.deductions,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create payroll", "employee_id", dto.EmployeeID, "error", err)
		return nil, internal.NewInternalError("failed to create payroll", err)
	}

	s.logger.Info("payroll created",
		"payroll_id", p.ID,
		"employee_id", p.EmployeeID,
		"period_end", dto.PeriodEnd,
		"amount_paid", p.AmountPaid.StringFixed(2))

	return p, nil
}

func (s *Service) ListPayrolls() ([]PayrollResponse, error) {
	payrolls, err := s.repo.ListByPeriodEndDesc(0)
	if err != nil {
		s.logger.Error("failed to list payrolls", "error", err)
		return nil, internal.NewInternalError("failed to list payrolls", err)
	}

	responses := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}

func (s *Service) ListForEmployee(employeeID int64) ([]PayrollResponse, error) {
	exists, err := s.employees.Exists(employeeID)
	if err != nil {
		return nil, internal.NewInternalError("failed to check employee", err)
	}
	if !exists {
		return nil, internal.ErrEmployeeNotFound
	}

	payrolls, err := s.repo.ListByEmployee(employeeID)
	if err != nil {
		s.logger.Error("failed to list payrolls", "employee_id", employeeID, "error", err)
		return nil, internal.NewInternalError("failed to list payrolls", err)
	}

	responses := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toResponse(p))
	}
	return responses, nil
}
