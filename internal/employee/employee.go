package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a worker paid by the hour. The rate is mutable; employees are
// never deleted while timesheet or payroll rows reference them.
type Employee struct {
	ID         int64           `json:"id" gorm:"primaryKey"`
	Name       string          `json:"name" gorm:"not null"`
	HourlyRate decimal.Decimal `json:"hourly_rate" gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func NewEmployee(name string, hourlyRate decimal.Decimal) *Employee {
	now := time.Now()
	return &Employee{
		Name:       name,
		HourlyRate: hourlyRate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (e *Employee) SetHourlyRate(rate decimal.Decimal) {
	e.HourlyRate = rate
	e.UpdatedAt = time.Now()
}
