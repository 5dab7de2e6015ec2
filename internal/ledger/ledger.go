package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

const (
	MethodCash     = "Cash"
	MethodCheck    = "Check"
	MethodTransfer = "Transfer"
	MethodCard     = "Card"
)

func ValidMethod(method string) bool {
	switch method {
	case MethodCash, MethodCheck, MethodTransfer, MethodCard:
		return true
	}
	return false
}

// PaymentDetails groups the method with its method-specific fields. Only
// checks carry a check number; only checks and transfers carry a bank name.
type PaymentDetails struct {
	Method      string
	CheckNumber *string
	BankName    *string
}

// Normalize drops fields that are meaningless for the method instead of
// rejecting them. Callers get the retention rule in one place.
func (d *PaymentDetails) Normalize() {
	if d.Method != MethodCheck {
		d.CheckNumber = nil
	}
	if d.Method != MethodCheck && d.Method != MethodTransfer {
		d.BankName = nil
	}
}

// AccountsPayable is an open obligation owed to a supplier. Status moves
// Pending to Paid exactly once and never back; the row is kept after
// settlement as the audit trail.
type AccountsPayable struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	SupplierID    int64           `json:"supplier_id" gorm:"not null;index"`
	CategoryID    int64           `json:"category_id" gorm:"not null;index"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	IssueDate     time.Time       `json:"issue_date" gorm:"type:date;not null"`
	DueDate       time.Time       `json:"due_date" gorm:"type:date;not null;index"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	Status        string          `json:"status" gorm:"not null;default:Pending;index"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (AccountsPayable) TableName() string {
	return "accounts_payable"
}

func (p *AccountsPayable) IsPending() bool {
	return p.Status == StatusPending
}

// AccountsPaid is a recorded settlement: either synthesized from a payable
// via MarkPaid or entered directly.
type AccountsPaid struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	SupplierID    int64           `json:"supplier_id" gorm:"not null;index"`
	CategoryID    int64           `json:"category_id" gorm:"not null;index"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	PaymentDate   time.Time       `json:"payment_date" gorm:"type:date;not null;index"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	CheckNumber   *string         `json:"check_number,omitempty"`
	BankName      *string         `json:"bank_name,omitempty"`
	ReceiptRef    *string         `json:"receipt_ref,omitempty"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (AccountsPaid) TableName() string {
	return "accounts_paid"
}

// SettledFrom builds the paid row for a payable being marked paid. The
// supplier, category, description, amount and method carry over unchanged;
// the note points back at the originating payable.
func SettledFrom(p *AccountsPayable, paymentDate time.Time) *AccountsPaid {
	details := PaymentDetails{Method: p.PaymentMethod}
	details.Normalize()

	return &AccountsPaid{
		SupplierID:    p.SupplierID,
		CategoryID:    p.CategoryID,
		Description:   p.Description,
		Amount:        p.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: p.PaymentMethod,
		CheckNumber:   details.CheckNumber,
		BankName:      details.BankName,
		Notes:         fmt.Sprintf("generated from payable #%d", p.ID),
		CreatedAt:     time.Now(),
	}
}

// MonthlyExpense is a standalone expense outside the payable workflow.
type MonthlyExpense struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	CategoryID    int64           `json:"category_id" gorm:"not null;index"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(10,2);not null"`
	ExpenseDate   time.Time       `json:"expense_date" gorm:"type:date;not null;index"`
	PaymentMethod string          `json:"payment_method" gorm:"not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (MonthlyExpense) TableName() string {
	return "monthly_expenses"
}
