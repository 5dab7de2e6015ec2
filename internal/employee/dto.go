package employee

import (
	"strings"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/shopspring/decimal"
)

type CreateEmployeeDTO struct {
	Name       string `json:"name"`
	HourlyRate string `json:"hourly_rate"`
}

type UpdateRateDTO struct {
	HourlyRate string `json:"hourly_rate"`
}

// ParseRate validates and converts the form-style rate string. Rates must be
// positive, exact decimals.
func ParseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, internal.NewValidationError("hourly_rate must be a decimal number", internal.ErrCodeInvalidAmount)
	}
	if rate.IsNegative() || rate.IsZero() {
		return decimal.Zero, internal.NewValidationError("hourly_rate must be positive", internal.ErrCodeInvalidAmount)
	}
	return rate, nil
}

func (d *CreateEmployeeDTO) Validate() (decimal.Decimal, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return decimal.Zero, internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return ParseRate(d.HourlyRate)
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	HourlyRate string `json:"hourly_rate"`
}

type EmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

func toResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		HourlyRate: e.HourlyRate.StringFixed(2),
	}
}
