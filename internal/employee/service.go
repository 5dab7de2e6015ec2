package employee

import (
	"log/slog"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(employee *Employee) error
	Update(employee *Employee) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllEmployees() ([]EmployeeResponse, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to list employees", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func (s *Service) GetEmployee(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	if e == nil {
		return nil, internal.ErrEmployeeNotFound
	}
	return e, nil
}

func (s *Service) CreateEmployee(dto CreateEmployeeDTO) (*Employee, error) {
	rate, err := dto.Validate()
	if err != nil {
		return nil, err
	}

	e := NewEmployee(dto.Name, rate)
	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to create employee", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create employee", err)
	}

	s.logger.Info("employee created", "employee_id", e.ID, "name", e.Name)
	return e, nil
}

func (s *Service) UpdateHourlyRate(id int64, dto UpdateRateDTO) (*Employee, error) {
	rate, err := ParseRate(dto.HourlyRate)
	if err != nil {
		return nil, err
	}

	e, err := s.GetEmployee(id)
	if err != nil {
		return nil, err
	}

	e.SetHourlyRate(rate)
	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update hourly rate", "employee_id", id, "error", err)
		return nil, internal.NewInternalError("failed to update hourly rate", err)
	}

	s.logger.Info("hourly rate updated", "employee_id", id, "rate", rate.StringFixed(2))
	return e, nil
}

// Exists reports whether the employee id references a stored employee.
// Used by the timesheet and payroll services for referential checks.
func (s *Service) Exists(id int64) (bool, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return e != nil, nil
}
