package postgres

import (
	"github.com/mauriciopaint/backoffice/internal/payroll"
	"gorm.io/gorm"
)

type PayrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) payroll.RepositoryAPI {
	return &PayrollRepository{db: db}
}

func (r *PayrollRepository) Create(p *payroll.Payroll) error {
	return r.db.Create(p).Error
}

func (r *PayrollRepository) ListByPeriodEndDesc(limit int) ([]*payroll.Payroll, error) {
	var payrolls []*payroll.Payroll
	q := r.db.Order("period_end DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&payrolls).Error
	return payrolls, err
}

func (r *PayrollRepository) ListByEmployee(employeeID int64) ([]*payroll.Payroll, error) {
	var payrolls []*payroll.Payroll
	err := r.db.Where("employee_id = ?", employeeID).
		Order("period_end DESC").
		Find(&payrolls).Error
	return payrolls, err
}
