package invoice

import (
	"strings"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func parseCost(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, internal.NewValidationError(field+" must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if d.IsNegative() {
		return decimal.Zero, internal.NewValidationError(field+" must not be negative", internal.ErrCodeInvalidAmount)
	}
	return d, nil
}

type CreateProjectDTO struct {
	Name          string `json:"name"`
	MaterialsCost string `json:"materials_cost"`
	LaborCost     string `json:"labor_cost"`
	AmountCharged string `json:"amount_charged"`
}

type parsedProject struct {
	materials decimal.Decimal
	labor     decimal.Decimal
	charged   decimal.Decimal
}

func (d *CreateProjectDTO) Validate() (*parsedProject, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return nil, internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	materials, err := parseCost(d.MaterialsCost, "materials_cost")
	if err != nil {
		return nil, err
	}
	labor, err := parseCost(d.LaborCost, "labor_cost")
	if err != nil {
		return nil, err
	}
	charged, err := parseCost(d.AmountCharged, "amount_charged")
	if err != nil {
		return nil, err
	}
	return &parsedProject{materials: materials, labor: labor, charged: charged}, nil
}

type CreateInvoiceDTO struct {
	ProjectID     int64  `json:"project_id"`
	InvoiceNumber string `json:"invoice_number"`
	TotalAmount   string `json:"total_amount"`
}

func (d *CreateInvoiceDTO) Validate() (decimal.Decimal, error) {
	d.InvoiceNumber = strings.TrimSpace(d.InvoiceNumber)
	if d.InvoiceNumber == "" {
		return decimal.Zero, internal.NewValidationError("invoice_number is required", internal.ErrCodeValidationFailed)
	}
	amount, err := decimal.NewFromString(d.TotalAmount)
	if err != nil {
		return decimal.Zero, internal.NewValidationError("total_amount must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if !amount.IsPositive() {
		return decimal.Zero, internal.NewValidationError("total_amount must be greater than zero", internal.ErrCodeInvalidAmount)
	}
	return amount, nil
}

type ProjectResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	MaterialsCost string `json:"materials_cost"`
	LaborCost     string `json:"labor_cost"`
	AmountCharged string `json:"amount_charged"`
}

type ProjectsResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func toProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		MaterialsCost: p.MaterialsCost.StringFixed(2),
		LaborCost:     p.LaborCost.StringFixed(2),
		AmountCharged: p.AmountCharged.StringFixed(2),
	}
}

type InvoiceResponse struct {
	ID            int64  `json:"id"`
	ProjectID     int64  `json:"project_id"`
	InvoiceNumber string `json:"invoice_number"`
	IssueDate     string `json:"issue_date"`
	TotalAmount   string `json:"total_amount"`
}

type InvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

func toInvoiceResponse(i *Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		ProjectID:     i.ProjectID,
		InvoiceNumber: i.InvoiceNumber,
		IssueDate:     i.IssueDate.Format(DateLayout),
		TotalAmount:   i.TotalAmount.StringFixed(2),
	}
}
