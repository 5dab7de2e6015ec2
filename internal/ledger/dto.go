package ledger

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, internal.NewValidationError("amount must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, internal.NewValidationError("amount must be greater than zero", internal.ErrCodeInvalidAmount)
	}
	return amount, nil
}

func parseDate(raw, field string) (time.Time, error) {
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, internal.NewValidationError(field+" must be formatted YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return d, nil
}

type CreatePayableDTO struct {
	SupplierID    int64  `json:"supplier_id"`
	CategoryID    int64  `json:"category_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	PaymentMethod string `json:"payment_method"`
	Notes         string `json:"notes"`
}

type parsedPayable struct {
	amount    decimal.Decimal
	issueDate time.Time
	dueDate   time.Time
}

func (d *CreatePayableDTO) Validate() (*parsedPayable, error) {
	amount, err := parseAmount(d.Amount)
	if err != nil {
		return nil, err
	}
	issue, err := parseDate(d.IssueDate, "issue_date")
	if err != nil {
		return nil, err
	}
	due, err := parseDate(d.DueDate, "due_date")
	if err != nil {
		return nil, err
	}
	if due.Before(issue) {
		return nil, internal.NewValidationError("due_date must not be before issue_date", internal.ErrCodeInvalidDate)
	}
	if !ValidMethod(d.PaymentMethod) {
		return nil, internal.NewValidationError("payment_method must be one of Cash, Check, Transfer, Card", internal.ErrCodeInvalidMethod)
	}
	return &parsedPayable{amount: amount, issueDate: issue, dueDate: due}, nil
}

type CreatePaidDTO struct {
	SupplierID    int64   `json:"supplier_id"`
	CategoryID    int64   `json:"category_id"`
	Description   string  `json:"description"`
	Amount        string  `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	CheckNumber   *string `json:"check_number,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	Notes         string  `json:"notes"`
}

type parsedPaid struct {
	amount      decimal.Decimal
	paymentDate time.Time
}

func (d *CreatePaidDTO) Validate() (*parsedPaid, error) {
	amount, err := parseAmount(d.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(d.PaymentDate, "payment_date")
	if err != nil {
		return nil, err
	}
	if !ValidMethod(d.PaymentMethod) {
		return nil, internal.NewValidationError("payment_method must be one of Cash, Check, Transfer, Card", internal.ErrCodeInvalidMethod)
	}
	return &parsedPaid{amount: amount, paymentDate: date}, nil
}

type CreateMonthlyExpenseDTO struct {
	CategoryID    int64  `json:"category_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	ExpenseDate   string `json:"expense_date"`
	PaymentMethod string `json:"payment_method"`
}

type parsedMonthlyExpense struct {
	amount      decimal.Decimal
	expenseDate time.Time
}

func (d *CreateMonthlyExpenseDTO) Validate() (*parsedMonthlyExpense, error) {
	amount, err := parseAmount(d.Amount)
	if err != nil {
		return nil, err
	}
	date, err := parseDate(d.ExpenseDate, "expense_date")
	if err != nil {
		return nil, err
	}
	if !ValidMethod(d.PaymentMethod) {
		return nil, internal.NewValidationError("payment_method must be one of Cash, Check, Transfer, Card", internal.ErrCodeInvalidMethod)
	}
	return &parsedMonthlyExpense{amount: amount, expenseDate: date}, nil
}

type PayableResponse struct {
	ID            int64  `json:"id"`
	SupplierID    int64  `json:"supplier_id"`
	CategoryID    int64  `json:"category_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	IssueDate     string `json:"issue_date"`
	DueDate       string `json:"due_date"`
	PaymentMethod string `json:"payment_method"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func ToPayableResponse(p *AccountsPayable) PayableResponse {
	return PayableResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		Description:   p.Description,
		Amount:        p.Amount.StringFixed(2),
		IssueDate:     p.IssueDate.Format(DateLayout),
		DueDate:       p.DueDate.Format(DateLayout),
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		Notes:         p.Notes,
	}
}

type PaidResponse struct {
	ID            int64   `json:"id"`
	SupplierID    int64   `json:"supplier_id"`
	CategoryID    int64   `json:"category_id"`
	Description   string  `json:"description"`
	Amount        string  `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	CheckNumber   *string `json:"check_number,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	ReceiptRef    *string `json:"receipt_ref,omitempty"`
	Notes         string  `json:"notes"`
}

func ToPaidResponse(p *AccountsPaid) PaidResponse {
	return PaidResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		Description:   p.Description,
		Amount:        p.Amount.StringFixed(2),
		PaymentDate:   p.PaymentDate.Format(DateLayout),
		PaymentMethod: p.PaymentMethod,
		CheckNumber:   p.CheckNumber,
		BankName:      p.BankName,
		ReceiptRef:    p.ReceiptRef,
		Notes:         p.Notes,
	}
}

type MonthlyExpenseResponse struct {
	ID            int64  `json:"id"`
	CategoryID    int64  `json:"category_id"`
	Description   string `json:"description"`
	Amount        string `json:"amount"`
	ExpenseDate   string `json:"expense_date"`
	PaymentMethod string `json:"payment_method"`
}

func ToMonthlyExpenseResponse(m *MonthlyExpense) MonthlyExpenseResponse {
	return MonthlyExpenseResponse{
		ID:            m.ID,
		CategoryID:    m.CategoryID,
		Description:   m.Description,
		Amount:        m.Amount.StringFixed(2),
		ExpenseDate:   m.ExpenseDate.Format(DateLayout),
		PaymentMethod: m.PaymentMethod,
	}
}
