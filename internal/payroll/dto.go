package payroll

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type CreatePayrollDTO struct {
	EmployeeID    int64   `json:"employee_id"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	TotalHours    float64 `json:"total_hours"`
	PaymentMethod string  `json:"payment_method"`
	AmountPaid    string  `json:"amount_paid"`
	Deductions    string  `json:"deductions"`
}

type parsedPayroll struct {
	periodStart time.Time
	periodEnd   time.Time
	amountPaid  decimal.Decimal
	deductions  decimal.Decimal
}

func (d *CreatePayrollDTO) Validate() (*parsedPayroll, error) {
	start, err := time.Parse(DateLayout, d.PeriodStart)
	if err != nil {
		return nil, internal.NewValidationError("period_start must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	end, err := time.Parse(DateLayout, d.PeriodEnd)
	if err != nil {
		return nil, internal.NewValidationError("period_end must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	if end.Before(start) {
		return nil, internal.NewValidationError("period_end must not be before period_start", internal.ErrCodeInvalidPeriod)
	}

	if d.TotalHours < 0 {
		return nil, internal.NewValidationError("total_hours must not be negative", internal.ErrCodeValidationFailed)
	}
	if d.PaymentMethod == "" {
		return nil, internal.NewValidationError("payment_method is required", internal.ErrCodeInvalidMethod)
	}

	amount, err := decimal.NewFromString(d.AmountPaid)
	if err != nil {
		return nil, internal.NewValidationError("amount_paid must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if amount.IsNegative() {
		return nil, internal.NewValidationError("amount_paid must not be negative", internal.ErrCodeInvalidAmount)
	}

	deductions := decimal.Zero
	if d.Deductions != "" {
		deductions, err = decimal.NewFromString(d.Deductions)
		if err != nil {
			return nil, internal.NewValidationError("deductions must be a decimal number", internal.ErrCodeInvalidAmount)
		}
		if deductions.IsNegative() {
			return nil, internal.NewValidationError("deductions must not be negative", internal.ErrCodeInvalidAmount)
		}
	}

	return &parsedPayroll{
		periodStart: start,
		periodEnd:   end,
		amountPaid:  amount,
		deductions:  deductions,
	}, nil
}

type PayrollResponse struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	PeriodStart   string  `json:"period_start"`
	PeriodEnd     string  `json:"period_end"`
	TotalHours    float64 `json:"total_hours"`
	PaymentMethod string  `json:"payment_method"`
	AmountPaid    string  `json:"amount_paid"`
	Deductions    string  `json:"deductions"`
	NetPay        string  `json:"net_pay"`
}

type PayrollsResponse struct {
	Payrolls []PayrollResponse `json:"payrolls"`
}

func toResponse(p *Payroll) PayrollResponse {
	return PayrollResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		PeriodStart:   p.PeriodStart.Format(DateLayout),
		PeriodEnd:     p.PeriodEnd.Format(DateLayout),
		TotalHours:    p.TotalHours,
		PaymentMethod: p.PaymentMethod,
		AmountPaid:    p.AmountPaid.StringFixed(2),
		Deductions:    p.Deductions.StringFixed(2),
		NetPay:        p.NetPay().StringFixed(2),
	}
}
