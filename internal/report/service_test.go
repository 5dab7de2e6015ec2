package report_test

import (
	"log/slog"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/mauriciopaint/backoffice/internal/ledger"
	"github.com/mauriciopaint/backoffice/internal/report"
	"github.com/shopspring/decimal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestReportService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Report Service Suite")
}

// MockRepository implements report.RepositoryAPI over in-memory slices,
// applying the same conjunctive filter semantics as the SQL queries.
type MockRepository struct {
	payables []*ledger.AccountsPayable
	paid     []*ledger.AccountsPaid
	monthly  []*ledger.MonthlyExpense
	payrolls []report.RecentPayroll
	invoices []report.RecentInvoice
}

func (m *MockRepository) ListPayables(f report.Filter) ([]*ledger.AccountsPayable, error) {
	var result []*ledger.AccountsPayable
	for _, p := range m.payables {
		if f.StartDate != nil && p.DueDate.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && p.DueDate.After(*f.EndDate) {
			continue
		}
		if f.SupplierID != nil && p.SupplierID != *f.SupplierID {
			continue
		}
		if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
			continue
		}
		if f.PaymentMethod != nil && p.PaymentMethod != *f.PaymentMethod {
			continue
		}
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *MockRepository) ListPaid(f report.Filter) ([]*ledger.AccountsPaid, error) {
	return m.paid, nil
}

func (m *MockRepository) ListMonthlyExpenses(f report.Filter) ([]*ledger.MonthlyExpense, error) {
	return m.monthly, nil
}

func (m *MockRepository) PendingPayablesDueBetween(start, end time.Time) ([]*ledger.AccountsPayable, error) {
	var result []*ledger.AccountsPayable
	for _, p := range m.payables {
		if p.Status != ledger.StatusPending {
			continue
		}
		if p.DueDate.Before(start) || p.DueDate.After(end) {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (m *MockRepository) PayrollTotalSince(date time.Time) (decimal.Decimal, error) {
	return decimal.RequireFromString("1234.50"), nil
}

func (m *MockRepository) ProjectCount() (int64, error) {
	return 2, nil
}

func (m *MockRepository) RecentPayrolls(limit int) ([]report.RecentPayroll, error) {
	return m.payrolls, nil
}

func (m *MockRepository) RecentInvoices(limit int) ([]report.RecentInvoice, error) {
	return m.invoices, nil
}

func payableDue(id int64, due time.Time, status string) *ledger.AccountsPayable {
	return &ledger.AccountsPayable{
		ID:            id,
		SupplierID:    1,
		CategoryID:    1,
		Amount:        decimal.RequireFromString("100.00"),
		IssueDate:     due.AddDate(0, 0, -20),
		DueDate:       due,
		PaymentMethod: ledger.MethodTransfer,
		Status:        status,
	}
}

var _ = Describe("Report Service", func() {
	var (
		mockRepo *MockRepository
		service  *report.Service
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = &MockRepository{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = report.NewService(mockRepo, 30, logger)
	})

	Describe("AlertLevel", func() {
		It("should classify seven days or less as high", func() {
			Expect(report.AlertLevel(0)).To(Equal(report.AlertHigh))
			Expect(report.AlertLevel(7)).To(Equal(report.AlertHigh))
		})

		It("should classify eight through fourteen days as medium", func() {
			Expect(report.AlertLevel(8)).To(Equal(report.AlertMedium))
			Expect(report.AlertLevel(14)).To(Equal(report.AlertMedium))
		})

		It("should classify beyond fourteen days as low", func() {
			Expect(report.AlertLevel(15)).To(Equal(report.AlertLow))
			Expect(report.AlertLevel(30)).To(Equal(report.AlertLow))
		})
	})

	Describe("PaymentForecast", func() {
		today := func() time.Time {
			y, m, d := time.Now().Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}

		It("should classify items by days until due", func() {
			mockRepo.payables = []*ledger.AccountsPayable{
				payableDue(1, today().AddDate(0, 0, 3), ledger.StatusPending),
				payableDue(2, today().AddDate(0, 0, 10), ledger.StatusPending),
				payableDue(3, today().AddDate(0, 0, 20), ledger.StatusPending),
			}

			forecast, err := service.PaymentForecast()
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.WindowDays).To(Equal(30))
			Expect(forecast.Items).To(HaveLen(3))
			Expect(forecast.Items[0].AlertLevel).To(Equal(report.AlertHigh))
			Expect(forecast.Items[1].AlertLevel).To(Equal(report.AlertMedium))
			Expect(forecast.Items[2].AlertLevel).To(Equal(report.AlertLow))
		})

		It("should exclude settled payables", func() {
			mockRepo.payables = []*ledger.AccountsPayable{
				payableDue(1, today().AddDate(0, 0, 3), ledger.StatusPaid),
				payableDue(2, today().AddDate(0, 0, 5), ledger.StatusPending),
			}

			forecast, err := service.PaymentForecast()
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Items).To(HaveLen(1))
			Expect(forecast.Items[0].ID).To(Equal(int64(2)))
		})

		It("should exclude payables due beyond the window", func() {
			mockRepo.payables = []*ledger.AccountsPayable{
				payableDue(1, today().AddDate(0, 0, 45), ledger.StatusPending),
			}

			forecast, err := service.PaymentForecast()
			Expect(err).NotTo(HaveOccurred())
			Expect(forecast.Items).To(BeEmpty())
		})
	})

	Describe("PayablesReport", func() {
		BeforeEach(func() {
			due := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
			a := payableDue(1, due, ledger.StatusPending)
			b := payableDue(2, due, ledger.StatusPaid)
			b.SupplierID = 2
			b.Amount = decimal.RequireFromString("250.00")
			mockRepo.payables = []*ledger.AccountsPayable{a, b}
		})

		It("should total all matching rows", func() {
			rep, err := service.PayablesReport(report.Filter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Payables).To(HaveLen(2))
			Expect(rep.TotalAmount).To(Equal("350.00"))
		})

		It("should combine filters conjunctively", func() {
			supplierID := int64(2)
			status := ledger.StatusPending
			rep, err := service.PayablesReport(report.Filter{
				SupplierID: &supplierID,
				Status:     &status,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Payables).To(BeEmpty())
			Expect(rep.TotalAmount).To(Equal("0.00"))
		})

		It("should filter on a single dimension", func() {
			status := ledger.StatusPaid
			rep, err := service.PayablesReport(report.Filter{Status: &status})
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Payables).To(HaveLen(1))
			Expect(rep.TotalAmount).To(Equal("250.00"))
		})
	})

	Describe("Dashboard", func() {
		It("should assemble the summary figures", func() {
			mockRepo.payrolls = []report.RecentPayroll{{ID: 1, EmployeeName: "Juan Martinez"}}
			mockRepo.invoices = []report.RecentInvoice{{ID: 1, InvoiceNumber: "INV-001"}}

			summary, err := service.Dashboard()
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalPayrollLast30Days).To(Equal("1234.50"))
			Expect(summary.ActiveProjects).To(Equal(int64(2)))
			Expect(summary.RecentPayrolls).To(HaveLen(1))
			Expect(summary.RecentInvoices).To(HaveLen(1))
		})
	})

	Describe("ParseFilter", func() {
		It("should parse all present parameters", func() {
			q := url.Values{}
			q.Set("start_date", "2025-03-01")
			q.Set("end_date", "2025-03-31")
			q.Set("supplier_id", "3")
			q.Set("payment_method", "Check")
			q.Set("status", "Pending")

			f, err := report.ParseFilter(q)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.StartDate).NotTo(BeNil())
			Expect(f.EndDate).NotTo(BeNil())
			Expect(*f.SupplierID).To(Equal(int64(3)))
			Expect(*f.PaymentMethod).To(Equal("Check"))
			Expect(*f.Status).To(Equal("Pending"))
			Expect(f.CategoryID).To(BeNil())
		})

		It("should leave absent parameters nil", func() {
			f, err := report.ParseFilter(url.Values{})
			Expect(err).NotTo(HaveOccurred())
			Expect(f.StartDate).To(BeNil())
			Expect(f.SupplierID).To(BeNil())
		})

		It("should reject a malformed date", func() {
			q := url.Values{}
			q.Set("start_date", "03/01/2025")
			_, err := report.ParseFilter(q)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a non-numeric supplier id", func() {
			q := url.Values{}
			q.Set("supplier_id", "acme")
			_, err := report.ParseFilter(q)
			Expect(err).To(HaveOccurred())
		})
	})
})
