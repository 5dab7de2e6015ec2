package category

import (
	"log/slog"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	GetAll() ([]*ExpenseCategory, error)
	GetByID(id int64) (*ExpenseCategory, error)
	GetByName(name string) (*ExpenseCategory, error)
	Create(category *ExpenseCategory) error
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

func (s *Service) GetAllCategories() ([]CategoryResponse, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list categories", "error", err)
		return nil, internal.NewInternalError("failed to list categories", err)
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, toResponse(c))
	}
	return responses, nil
}

func (s *Service) CreateCategory(dto CreateCategoryDTO) (*ExpenseCategory, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		s.logger.Error("failed to check category name", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to check category name", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateCategory
	}

	cat := NewExpenseCategory(dto.Name, dto.Description)
	if err := s.repo.Create(cat); err != nil {
		s.logger.Error("failed to create category", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create category", err)
	}

	s.logger.Info("category created", "category_id", cat.ID, "name", cat.Name)
	return cat, nil
}

// Exists reports whether the category id references a stored category.
func (s *Service) Exists(id int64) (bool, error) {
	cat, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	return cat != nil, nil
}
