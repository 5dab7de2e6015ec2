package postgres

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Order("name ASC").Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	return r.db.Create(e).Error
}

func (r *EmployeeRepository) Update(e *employee.Employee) error {
	e.UpdatedAt = time.Now()
	return r.db.Save(e).Error
}
