package report

import (
	"log/slog"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/ledger"
	"github.com/shopspring/decimal"
)

// RepositoryAPI is the read-only query surface over the ledger, payroll and
// invoice tables.
type RepositoryAPI interface {
	ListPayables(f Filter) ([]*ledger.AccountsPayable, error)
	ListPaid(f Filter) ([]*ledger.AccountsPaid, error)
	ListMonthlyExpenses(f Filter) ([]*ledger.MonthlyExpense, error)
	PendingPayablesDueBetween(start, end time.Time) ([]*ledger.AccountsPayable, error)
	PayrollTotalSince(date time.Time) (decimal.Decimal, error)
	ProjectCount() (int64, error)
	RecentPayrolls(limit int) ([]RecentPayroll, error)
	RecentInvoices(limit int) ([]RecentInvoice, error)
}

type Service struct {
	repo               RepositoryAPI
	forecastWindowDays int
	logger             *slog.Logger
}

func NewService(repo RepositoryAPI, forecastWindowDays int, logger *slog.Logger) *Service {
	if forecastWindowDays <= 0 {
		forecastWindowDays = 30
	}
	return &Service{
		repo:               repo,
		forecastWindowDays: forecastWindowDays,
		logger:             logger,
	}
}

func (s *Service) PayablesReport(f Filter) (*PayablesReport, error) {
	payables, err := s.repo.ListPayables(f)
	if err != nil {
		s.logger.Error("failed to query payables report", "error", err)
		return nil, internal.NewInternalError("failed to query payables report", err)
	}

	items := make([]ledger.PayableResponse, 0, len(payables))
	total := decimal.Zero
	for _, p := range payables {
		items = append(items, ledger.ToPayableResponse(p))
		total = total.Add(p.Amount)
	}

	return &PayablesReport{Payables: items, TotalAmount: total.StringFixed(2)}, nil
}

func (s *Service) PaidReport(f Filter) (*PaidReport, error) {
	paid, err := s.repo.ListPaid(f)
	if err != nil {
		s.logger.Error("failed to query paid report", "error", err)
		return nil, internal.NewInternalError("failed to query paid report", err)
	}

	items := make([]ledger.PaidResponse, 0, len(paid))
	total := decimal.Zero
	for _, p := range paid {
		items = append(items, ledger.ToPaidResponse(p))
		total = total.Add(p.Amount)
	}

	return &PaidReport{Paid: items, TotalAmount: total.StringFixed(2)}, nil
}

func (s *Service) MonthlyExpensesReport(f Filter) (*MonthlyExpensesReport, error) {
	expenses, err := s.repo.ListMonthlyExpenses(f)
	if err != nil {
		s.logger.Error("failed to query monthly expenses report", "error", err)
		return nil, internal.NewInternalError("failed to query monthly expenses report", err)
	}

	items := make([]ledger.MonthlyExpenseResponse, 0, len(expenses))
	total := decimal.Zero
	for _, m := range expenses {
		items = append(items, ledger.ToMonthlyExpenseResponse(m))
		total = total.Add(m.Amount)
	}

	return &MonthlyExpensesReport{Expenses: items, TotalAmount: total.StringFixed(2)}, nil
}

// PaymentForecast lists pending payables due within the configured window,
// classified by urgency. Settled payables drop out because the query only
// sees Pending rows.
func (s *Service) PaymentForecast() (*ForecastReport, error) {
	now := time.Now()
	start := truncateToDate(now)
	end := start.AddDate(0, 0, s.forecastWindowDays)

	payables, err := s.repo.PendingPayablesDueBetween(start, end)
	if err != nil {
		s.logger.Error("failed to query payment forecast", "error", err)
		return nil, internal.NewInternalError("failed to query payment forecast", err)
	}

	items := make([]ForecastItem, 0, len(payables))
	for _, p := range payables {
		days := DaysUntil(now, p.DueDate)
		items = append(items, ForecastItem{
			ID:            p.ID,
			SupplierID:    p.SupplierID,
			CategoryID:    p.CategoryID,
			Description:   p.Description,
			Amount:        p.Amount.StringFixed(2),
			DueDate:       p.DueDate.Format(DateLayout),
			PaymentMethod: p.PaymentMethod,
			DaysUntilDue:  days,
			AlertLevel:    AlertLevel(days),
		})
	}

	return &ForecastReport{WindowDays: s.forecastWindowDays, Items: items}, nil
}

// Dashboard aggregates the landing-page numbers: payroll spend over the
// last 30 days, project count and the most recent activity.
func (s *Service) Dashboard() (*DashboardSummary, error) {
	since := truncateToDate(time.Now()).AddDate(0, 0, -30)

	payrollTotal, err := s.repo.PayrollTotalSince(since)
	if err != nil {
		return nil, internal.NewInternalError("failed to sum recent payroll", err)
	}
	projects, err := s.repo.ProjectCount()
	if err != nil {
		return nil, internal.NewInternalError("failed to count projects", err)
	}
	recentPayrolls, err := s.repo.RecentPayrolls(5)
	if err != nil {
		return nil, internal.NewInternalError("failed to list recent payrolls", err)
	}
	recentInvoices, err := s.repo.RecentInvoices(5)
	if err != nil {
		return nil, internal.NewInternalError("failed to list recent invoices", err)
	}

	pendingStatus := ledger.StatusPending
	pending, err := s.repo.ListPayables(Filter{Status: &pendingStatus})
	if err != nil {
		return nil, internal.NewInternalError("failed to list pending payables", err)
	}
	pendingItems := make([]ledger.PayableResponse, 0, len(pending))
	for _, p := range pending {
		pendingItems = append(pendingItems, ledger.ToPayableResponse(p))
	}

	return &DashboardSummary{
		TotalPayrollLast30Days: payrollTotal.StringFixed(2),
		ActiveProjects:         projects,
		RecentPayrolls:         recentPayrolls,
		RecentInvoices:         recentInvoices,
		PendingPayables:        pendingItems,
	}, nil
}
