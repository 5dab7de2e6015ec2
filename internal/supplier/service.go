package supplier

import (
	"log/slog"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*Supplier, error)
	GetByID(id int64) (*Supplier, error)
	Create(supplier *Supplier) error
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

func (s *Service) GetAllSuppliers() ([]SupplierResponse, error) {
	suppliers, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list suppliers", "error", err)
		return nil, internal.NewInternalError("failed to list suppliers", err)
	}

	responses := make([]SupplierResponse, 0, len(suppliers))
	for _, sp := range suppliers {
		responses = append(responses, toResponse(sp))
	}
	return responses, nil
}

func (s *Service) CreateSupplier(dto CreateSupplierDTO) (*Supplier, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sp := NewSupplier(dto.Name, dto.Contact)
	if err := s.repo.Create(sp); err != nil {
		s.logger.Error("failed to create supplier", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create supplier", err)
	}

	s.logger.Info("supplier created", "supplier_id", sp.ID, "name", sp.Name)
	return sp, nil
}

func (s *Service) Exists(id int64) (bool, error) {
	sp, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return sp != nil, nil
}
