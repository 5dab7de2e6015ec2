package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is a job the business bills for.
type Project struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Name          string          `json:"name" gorm:"not null"`
	MaterialsCost decimal.Decimal `json:"materials_cost" gorm:"type:numeric(10,2);not null;default:0"`
	LaborCost     decimal.Decimal `json:"labor_cost" gorm:"type:numeric(10,2);not null;default:0"`
	AmountCharged decimal.Decimal `json:"amount_charged" gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

// Invoice bills a project. Numbers are unique; the issue date is set at
// creation time.
type Invoice struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	ProjectID     int64           `json:"project_id" gorm:"not null;index"`
	InvoiceNumber string          `json:"invoice_number" gorm:"uniqueIndex;not null"`
	IssueDate     time.Time       `json:"issue_date" gorm:"type:date;not null;index"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:numeric(10,2);not null"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// RenderContext is the data handed to the PDF renderer for one invoice.
type RenderContext struct {
	InvoiceID     int64
	InvoiceNumber string
	IssueDate     string
	ProjectName   string
	MaterialsCost string
	LaborCost     string
	TotalAmount   string
	CompanyName   string
}
