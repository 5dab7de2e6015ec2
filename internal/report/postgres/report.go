package postgres

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal/ledger"
	"github.com/mauriciopaint/backoffice/internal/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.RepositoryAPI {
	return &ReportRepository{db: db}
}

// applyPayableFilter chains one Where per present filter field; absent
// fields add no constraint, so the filters compose conjunctively.
func applyPayableFilter(q *gorm.DB, f report.Filter, dateColumn string) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where(dateColumn+" >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where(dateColumn+" <= ?", *f.EndDate)
	}
	if f.SupplierID != nil {
		q = q.Where("supplier_id = ?", *f.SupplierID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *f.PaymentMethod)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	return q
}

func (r *ReportRepository) ListPayables(f report.Filter) ([]*ledger.AccountsPayable, error) {
	var payables []*ledger.AccountsPayable
	q := applyPayableFilter(r.db.Model(&ledger.AccountsPayable{}), f, "due_date")
	err := q.Order("due_date ASC").Find(&payables).Error
	return payables, err
}

func (r *ReportRepository) ListPaid(f report.Filter) ([]*ledger.AccountsPaid, error) {
	var paid []*ledger.AccountsPaid
	q := r.db.Model(&ledger.AccountsPaid{})
	if f.StartDate != nil {
		q = q.Where("payment_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("payment_date <= ?", *f.EndDate)
	}
	if f.SupplierID != nil {
		q = q.Where("supplier_id = ?", *f.SupplierID)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *f.PaymentMethod)
	}
	err := q.Order("payment_date DESC").Find(&paid).Error
	return paid, err
}

func (r *ReportRepository) ListMonthlyExpenses(f report.Filter) ([]*ledger.MonthlyExpense, error) {
	var expenses []*ledger.MonthlyExpense
	q := r.db.Model(&ledger.MonthlyExpense{})
	if f.StartDate != nil {
		q = q.Where("expense_date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("expense_date <= ?", *f.EndDate)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.PaymentMethod != nil {
		q = q.Where("payment_method = ?", *f.PaymentMethod)
	}
	err := q.Order("expense_date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *ReportRepository) PendingPayablesDueBetween(start, end time.Time) ([]*ledger.AccountsPayable, error) {
	var payables []*ledger.AccountsPayable
	err := r.db.Where("status = ? AND due_date >= ? AND due_date <= ?", ledger.StatusPending, start, end).
		Order("due_date ASC").
		Find(&payables).Error
	return payables, err
}

func (r *ReportRepository) PayrollTotalSince(date time.Time) (decimal.Decimal, error) {
	var raw *string
	err := r.db.Table("payrolls").
		Select("SUM(amount_paid)").
		Where("period_end >= ?", date).
		Scan(&raw).Error
	if err != nil {
		return decimal.Zero, err
	}
	if raw == nil {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(*raw)
}

func (r *ReportRepository) ProjectCount() (int64, error) {
	var count int64
	err := r.db.Table("projects").Count(&count).Error
	return count, err
}

func (r *ReportRepository) RecentPayrolls(limit int) ([]report.RecentPayroll, error) {
	type row struct {
		ID         int64
		Name       string
		PeriodEnd  time.Time
		AmountPaid decimal.Decimal
	}
	var rows []row
	err := r.db.Table("payrolls").
		Select("payrolls.id, employees.name, payrolls.period_end, payrolls.amount_paid").
		Joins("JOIN employees ON employees.id = payrolls.employee_id").
		Order("payrolls.period_end DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]report.RecentPayroll, 0, len(rows))
	for _, rw := range rows {
		out = append(out, report.RecentPayroll{
			ID:           rw.ID,
			EmployeeName: rw.Name,
			PeriodEnd:    rw.PeriodEnd.Format(report.DateLayout),
			AmountPaid:   rw.AmountPaid.StringFixed(2),
		})
	}
	return out, nil
}

func (r *ReportRepository) RecentInvoices(limit int) ([]report.RecentInvoice, error) {
	type row struct {
		ID            int64
		InvoiceNumber string
		Name          string
		IssueDate     time.Time
		TotalAmount   decimal.Decimal
	}
	var rows []row
	err := r.db.Table("invoices").
		Select("invoices.id, invoices.invoice_number, projects.name, invoices.issue_date, invoices.total_amount").
		Joins("JOIN projects ON projects.id = invoices.project_id").
		Order("invoices.issue_date DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]report.RecentInvoice, 0, len(rows))
	for _, rw := range rows {
		out = append(out, report.RecentInvoice{
			ID:            rw.ID,
			InvoiceNumber: rw.InvoiceNumber,
			ProjectName:   rw.Name,
			IssueDate:     rw.IssueDate.Format(report.DateLayout),
			TotalAmount:   rw.TotalAmount.StringFixed(2),
		})
	}
	return out, nil
}
