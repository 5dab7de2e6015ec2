package ledger_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/ledger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestLedgerService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Ledger Service Suite")
}

// MockRepository implements ledger.RepositoryAPI for testing
type MockRepository struct {
	payables   map[int64]*ledger.AccountsPayable
	paid       []*ledger.AccountsPaid
	monthly    []*ledger.MonthlyExpense
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		payables: make(map[int64]*ledger.AccountsPayable),
		nextID:   1,
	}
}

func (m *MockRepository) CreatePayable(p *ledger.AccountsPayable) error {
	if m.shouldFail {
		return m.failError
	}
	p.ID = m.nextID
	m.nextID++
	m.payables[p.ID] = p
	return nil
}

func (m *MockRepository) GetPayableByID(id int64) (*ledger.AccountsPayable, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	return m.payables[id], nil
}

func (m *MockRepository) Settle(payableID int64, paymentDate time.Time) (*ledger.AccountsPaid, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	p, ok := m.payables[payableID]
	if !ok {
		return nil, internal.ErrPayableNotFound
	}
	if !p.IsPending() {
		return nil, internal.ErrPayableAlreadyPaid
	}
	p.Status = ledger.StatusPaid
	paid := ledger.SettledFrom(p, paymentDate)
	paid.ID = m.nextID
	m.nextID++
	m.paid = append(m.paid, paid)
	return paid, nil
}

func (m *MockRepository) CreatePaid(p *ledger.AccountsPaid) error {
	if m.shouldFail {
		return m.failError
	}
	p.ID = m.nextID
	m.nextID++
	m.paid = append(m.paid, p)
	return nil
}

func (m *MockRepository) CreateMonthlyExpense(e *ledger.MonthlyExpense) error {
	if m.shouldFail {
		return m.failError
	}
	e.ID = m.nextID
	m.nextID++
	m.monthly = append(m.monthly, e)
	return nil
}

// MockDirectory answers Exists for suppliers and categories
type MockDirectory struct {
	known map[int64]bool
}

func (m *MockDirectory) Exists(id int64) (bool, error) {
	return m.known[id], nil
}

// MockFileStore implements ledger.FileStore
type MockFileStore struct {
	saved      map[string][]byte
	shouldFail bool
}

func (m *MockFileStore) Save(data []byte, suggestedName string) (string, error) {
	if m.shouldFail {
		return "", errors.New("disk full")
	}
	ref := "stored/" + suggestedName
	m.saved[ref] = data
	return ref, nil
}

func strPtr(s string) *string { return &s }

var _ = Describe("Ledger Service", func() {
	var (
		mockRepo   *MockRepository
		suppliers  *MockDirectory
		categories *MockDirectory
		files      *MockFileStore
		service    *ledger.Service
		logger     *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		suppliers = &MockDirectory{known: map[int64]bool{1: true}}
		categories = &MockDirectory{known: map[int64]bool{1: true, 2: true}}
		files = &MockFileStore{saved: make(map[string][]byte)}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = ledger.NewService(mockRepo, suppliers, categories, files, logger)
	})

	validPayable := func() ledger.CreatePayableDTO {
		return ledger.CreatePayableDTO{
			SupplierID:    1,
			CategoryID:    1,
			Description:   "drywall sheets",
			Amount:        "750.00",
			IssueDate:     "2025-03-01",
			DueDate:       "2025-03-20",
			PaymentMethod: ledger.MethodTransfer,
		}
	}

	Describe("CreatePayable", func() {
		It("should create a pending payable", func() {
			p, err := service.CreatePayable(validPayable())
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Status).To(Equal(ledger.StatusPending))
			Expect(p.Amount.StringFixed(2)).To(Equal("750.00"))
		})

		It("should reject a zero amount", func() {
			dto := validPayable()
			dto.Amount = "0"
			_, err := service.CreatePayable(dto)
			Expect(err).To(HaveOccurred())

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeValidation))
		})

		It("should reject a negative amount", func() {
			dto := validPayable()
			dto.Amount = "-10.00"
			_, err := service.CreatePayable(dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a due date before the issue date", func() {
			dto := validPayable()
			dto.DueDate = "2025-02-20"
			_, err := service.CreatePayable(dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown payment method", func() {
			dto := validPayable()
			dto.PaymentMethod = "Barter"
			_, err := service.CreatePayable(dto)
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown supplier", func() {
			dto := validPayable()
			dto.SupplierID = 42
			_, err := service.CreatePayable(dto)
			Expect(err).To(Equal(internal.ErrSupplierNotFound))
		})

		It("should reject an unknown category", func() {
			dto := validPayable()
			dto.CategoryID = 42
			_, err := service.CreatePayable(dto)
			Expect(err).To(Equal(internal.ErrCategoryNotFound))
		})
	})

	Describe("MarkPaid", func() {
		var payableID int64

		BeforeEach(func() {
			p, err := service.CreatePayable(validPayable())
			Expect(err).NotTo(HaveOccurred())
			payableID = p.ID
		})

		It("should settle the payable into a paid entry", func() {
			paid, err := service.MarkPaid(payableID)
			Expect(err).NotTo(HaveOccurred())
			Expect(paid.SupplierID).To(Equal(int64(1)))
			Expect(paid.Amount.StringFixed(2)).To(Equal("750.00"))
			Expect(paid.Notes).To(ContainSubstring("generated from payable"))

			stored, _ := service.GetPayable(payableID)
			Expect(stored.Status).To(Equal(ledger.StatusPaid))
		})

		It("should refuse to settle the same payable twice", func() {
			_, err := service.MarkPaid(payableID)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.MarkPaid(payableID)
			Expect(err).To(Equal(internal.ErrPayableAlreadyPaid))
			Expect(mockRepo.paid).To(HaveLen(1))
		})

		It("should return not found for an unknown payable", func() {
			_, err := service.MarkPaid(999)
			Expect(err).To(Equal(internal.ErrPayableNotFound))
		})
	})

	Describe("CreatePaid", func() {
		validPaid := func() ledger.CreatePaidDTO {
			return ledger.CreatePaidDTO{
				SupplierID:    1,
				CategoryID:    1,
				Description:   "paint order",
				Amount:        "120.50",
				PaymentDate:   "2025-03-05",
				PaymentMethod: ledger.MethodCheck,
				CheckNumber:   strPtr("0042"),
				BankName:      strPtr("First National"),
			}
		}

		It("should keep check fields for check payments", func() {
			p, err := service.CreatePaid(validPaid(), nil, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.CheckNumber).To(Equal(strPtr("0042")))
			Expect(p.BankName).To(Equal(strPtr("First National")))
		})

		It("should drop the check number for transfers but keep the bank", func() {
			dto := validPaid()
			dto.PaymentMethod = ledger.MethodTransfer
			p, err := service.CreatePaid(dto, nil, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.CheckNumber).To(BeNil())
			Expect(p.BankName).To(Equal(strPtr("First National")))
		})

		It("should drop both fields for cash payments", func() {
			dto := validPaid()
			dto.PaymentMethod = ledger.MethodCash
			p, err := service.CreatePaid(dto, nil, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.CheckNumber).To(BeNil())
			Expect(p.BankName).To(BeNil())
		})

		It("should store the receipt and reference it on the row", func() {
			receipt := []byte("%PDF-1.4 receipt")
			p, err := service.CreatePaid(validPaid(), receipt, "receipt.pdf")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ReceiptRef).NotTo(BeNil())
			Expect(files.saved).To(HaveKey(*p.ReceiptRef))
		})

		It("should fail before writing the row when receipt storage fails", func() {
			files.shouldFail = true
			_, err := service.CreatePaid(validPaid(), []byte("x"), "receipt.pdf")
			Expect(err).To(HaveOccurred())
			Expect(mockRepo.paid).To(BeEmpty())
		})

		It("should leave the receipt reference empty without an upload", func() {
			p, err := service.CreatePaid(validPaid(), nil, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(p.ReceiptRef).To(BeNil())
		})
	})

	Describe("CreateMonthlyExpense", func() {
		It("should create the expense without a supplier check", func() {
			m, err := service.CreateMonthlyExpense(ledger.CreateMonthlyExpenseDTO{
				CategoryID:    2,
				Description:   "office rent",
				Amount:        "900.00",
				ExpenseDate:   "2025-03-01",
				PaymentMethod: ledger.MethodTransfer,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.ID).NotTo(BeZero())
		})

		It("should reject an unknown category", func() {
			_, err := service.CreateMonthlyExpense(ledger.CreateMonthlyExpenseDTO{
				CategoryID:    42,
				Amount:        "900.00",
				ExpenseDate:   "2025-03-01",
				PaymentMethod: ledger.MethodCash,
			})
			Expect(err).To(Equal(internal.ErrCategoryNotFound))
		})
	})
})
