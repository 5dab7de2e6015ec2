package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one settled pay period for an employee. Rows are immutable
// once created; there is no update path. Totals are caller-supplied and
// deliberately not recomputed from the timesheet.
type Payroll struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	EmployeeID    int64           `json:"employee_id" gorm:"not null;index"`
	PeriodStart   time.Time       `json:"period_start" gorm:"type:date;not null"`
	PeriodEnd     time.Time       `json:"period_end" gorm:"type:date;not null;index"`
	TotalHours    float64         `json:"total_hours" gorm:"not null"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	AmountPaid    decimal.Decimal `json:"amount_paid" gorm:"type:numeric(10,2);not null"`
	Deductions    decimal.Decimal `json:"deductions" gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Payroll) TableName() string {
	return "payrolls"
}

// NetPay is amount paid minus deductions, derived at read time rather than
// stored.
func (p *Payroll) NetPay() decimal.Decimal {
	return p.AmountPaid.Sub(p.Deductions)
}
