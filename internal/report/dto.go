package report

import (
	"net/url"
	"strconv"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/ledger"
)

// ParseFilter reads the optional report filters from query parameters,
// rejecting malformed values instead of silently ignoring them.
func ParseFilter(q url.Values) (Filter, error) {
	var f Filter

	if raw := q.Get("start_date"); raw != "" {
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return f, internal.NewValidationError("start_date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		f.StartDate = &d
	}
	if raw := q.Get("end_date"); raw != "" {
		d, err := time.Parse(DateLayout, raw)
		if err != nil {
			return f, internal.NewValidationError("end_date must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		f.EndDate = &d
	}
	if raw := q.Get("supplier_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, internal.NewValidationError("supplier_id must be an integer", internal.ErrCodeValidationFailed)
		}
		f.SupplierID = &id
	}
	if raw := q.Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, internal.NewValidationError("category_id must be an integer", internal.ErrCodeValidationFailed)
		}
		f.CategoryID = &id
	}
	if raw := q.Get("payment_method"); raw != "" {
		method := raw
		f.PaymentMethod = &method
	}
	if raw := q.Get("status"); raw != "" {
		status := raw
		f.Status = &status
	}

	return f, nil
}

type PayablesReport struct {
	Payables    []ledger.PayableResponse `json:"payables"`
	TotalAmount string                   `json:"total_amount"`
}

type PaidReport struct {
	Paid        []ledger.PaidResponse `json:"paid"`
	TotalAmount string                `json:"total_amount"`
}

type MonthlyExpensesReport struct {
	Expenses    []ledger.MonthlyExpenseResponse `json:"expenses"`
	TotalAmount string                          `json:"total_amount"`
}

type ForecastItem struct {
	ID            int64  `json:"id"`
	SupplierID    int64  `json:"supplier_id"`
	CategoryID    int64  `json:"category_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	DueDate       string `json:"due_date"`
	PaymentMethod string `json:"payment_method"`
	DaysUntilDue  int    `json:"days_until_due"`
	AlertLevel    string `json:"alert_level"`
}

type ForecastReport struct {
	WindowDays int            `json:"window_days"`
	Items      []ForecastItem `json:"items"`
}

type DashboardSummary struct {
	TotalPayrollLast30Days string                   `json:"total_payroll_last_30_days"`
	ActiveProjects         int64                    `json:"active_projects"`
	RecentPayrolls         []RecentPayroll          `json:"recent_payrolls"`
	RecentInvoices         []RecentInvoice          `json:"recent_invoices"`
	PendingPayables        []ledger.PayableResponse `json:"pending_payables"`
}

type RecentPayroll struct {
	ID           int64  `json:"id"`
	EmployeeName string `json:"employee_name"`
	PeriodEnd    string `json:"period_end"`
	AmountPaid   string `json:"amount_paid"`
}

type RecentInvoice struct {
	ID            int64  `json:"id"`
	InvoiceNumber string `json:"invoice_number"`
	ProjectName   string `json:"project_name"`
	IssueDate     string `json:"issue_date"`
	TotalAmount   string `json:"total_amount"`
}
