package ledger

import (
	"log/slog"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
)

type RepositoryAPI interface {
	CreatePayable(payable *AccountsPayable) error
	GetPayableByID(id int64) (*AccountsPayable, error)
	// Settle atomically flips the payable to Paid and inserts its paid row.
	// Returns internal.ErrPayableNotFound or internal.ErrPayableAlreadyPaid
	// without touching either table.
	Settle(payableID int64, paymentDate time.Time) (*AccountsPaid, error)
	CreatePaid(paid *AccountsPaid) error
	CreateMonthlyExpense(expense *MonthlyExpense) error
}

type SupplierDirectory interface {
	Exists(id int64) (bool, error)
}

type CategoryDirectory interface {
	Exists(id int64) (bool, error)
}

// FileStore persists uploaded receipt bytes and returns an opaque reference.
type FileStore interface {
	Save(data []byte, suggestedName string) (string, error)
}

type Service struct {
	repo       RepositoryAPI
	suppliers  SupplierDirectory
	categories CategoryDirectory
	files      FileStore
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, suppliers SupplierDirectory, categories CategoryDirectory, files FileStore, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		suppliers:  suppliers,
		categories: categories,
		files:      files,
		logger:     logger,
	}
}

func (s *Service) checkDimensions(supplierID, categoryID int64) error {
	if supplierID != 0 {
		ok, err := s.suppliers.Exists(supplierID)
		if err != nil {
			return internal.NewInternalError("failed to check supplier", err)
		}
		if !ok {
			return internal.ErrSupplierNotFound
		}
	}
	ok, err := s.categories.Exists(categoryID)
	if err != nil {
		return internal.NewInternalError("failed to check category", err)
	}
	if !ok {
		return internal.ErrCategoryNotFound
	}
	return nil
}

func (s *Service) CreatePayable(dto CreatePayableDTO) (*AccountsPayable, error) {
	parsed, err := dto.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkDimensions(dto.SupplierID, dto.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &AccountsPayable{
		SupplierID:    dto.SupplierID,
		CategoryID:    dto.CategoryID,
		Description:   dto.Description,
		Amount:        parsed.amount,
		IssueDate:     parsed.issueDate,
		DueDate:       parsed.dueDate,
		PaymentMethod: dto.PaymentMethod,
		Status:        StatusPending,
		Notes:         dto.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreatePayable(p); err != nil {
		s.logger.Error("failed to create payable", "supplier_id", dto.SupplierID, "error", err)
		return nil, internal.NewInternalError("failed to create payable", err)
	}

	s.logger.Info("payable created",
		"payable_id", p.ID,
		"supplier_id", p.SupplierID,
		"amount", p.Amount.StringFixed(2),
		"due_date", dto.DueDate)

	return p, nil
}

// MarkPaid settles a pending payable: its status flips to Paid and exactly
// one paid row is synthesized, both inside one storage transaction. A second
// call for the same payable fails with PAYABLE_ALREADY_PAID.
func (s *Service) MarkPaid(payableID int64) (*AccountsPaid, error) {
	paid, err := s.repo.Settle(payableID, today())
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, err
		}
		s.logger.Error("settlement failed", "payable_id", payableID, "error", err)
		return nil, internal.NewInternalError("settlement failed", err)
	}

	s.logger.Info("payable settled",
		"payable_id", payableID,
		"paid_id", paid.ID,
		"amount", paid.Amount.StringFixed(2))

	return paid, nil
}

// CreatePaid records a settlement entered directly, outside the payable
// workflow. An optional receipt is stored first and referenced on the row.
func (s *Service) CreatePaid(dto CreatePaidDTO, receipt []byte, receiptName string) (*AccountsPaid, error) {
	parsed, err := dto.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkDimensions(dto.SupplierID, dto.CategoryID); err != nil {
		return nil, err
	}

	details := PaymentDetails{
		Method:      dto.PaymentMethod,
		CheckNumber: dto.CheckNumber,
		BankName:    dto.BankName,
	}
	details.Normalize()

	var receiptRef *string
	if len(receipt) > 0 {
		ref, err := s.files.Save(receipt, receiptName)
		if err != nil {
			s.logger.Error("failed to store receipt", "name", receiptName, "error", err)
			return nil, internal.NewInternalError("failed to store receipt", err)
		}
		receiptRef = &ref
	}

	p := &AccountsPaid{
		SupplierID:    dto.SupplierID,
		CategoryID:    dto.CategoryID,
		Description:   dto.Description,
		Amount:        parsed.amount,
		PaymentDate:   parsed.paymentDate,
		PaymentMethod: details.Method,
		CheckNumber:   details.CheckNumber,
		BankName:      details.BankName,
		ReceiptRef:    receiptRef,
		Notes:         dto.Notes,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreatePaid(p); err != nil {
		s.logger.Error("failed to create paid entry", "supplier_id", dto.SupplierID, "error", err)
		return nil, internal.NewInternalError("failed to create paid entry", err)
	}

	s.logger.Info("paid entry created",
		"paid_id", p.ID,
		"supplier_id", p.SupplierID,
		"amount", p.Amount.StringFixed(2))

	return p, nil
}

func (s *Service) CreateMonthlyExpense(dto CreateMonthlyExpenseDTO) (*MonthlyExpense, error) {
	parsed, err := dto.Validate()
	if err != nil {
		return nil, err
	}
	if err := s.checkDimensions(0, dto.CategoryID); err != nil {
		return nil, err
	}

	m := &MonthlyExpense{
		CategoryID:    dto.CategoryID,
		Description:   dto.Description,
		Amount:        parsed.amount,
		ExpenseDate:   parsed.expenseDate,
		PaymentMethod: dto.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateMonthlyExpense(m); err != nil {
		s.logger.Error("failed to create monthly expense", "category_id", dto.CategoryID, "error", err)
		return nil, internal.NewInternalError("failed to create monthly expense", err)
	}

	s.logger.Info("monthly expense created",
		"expense_id", m.ID,
		"amount", m.Amount.StringFixed(2))

	return m, nil
}

func (s *Service) GetPayable(id int64) (*AccountsPayable, error) {
	p, err := s.repo.GetPayableByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to get payable", err)
	}
	if p == nil {
		return nil, internal.ErrPayableNotFound
	}
	return p, nil
}

// today truncates the current wall clock to its calendar date.
func today() time.Time {
	y, m, d := time.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
