package postgres

import (
	"github.com/mauriciopaint/backoffice/internal/supplier"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) supplier.RepositoryAPI {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) GetAll() ([]*supplier.Supplier, error) {
	var suppliers []*supplier.Supplier
	err := r.db.Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *SupplierRepository) GetByID(id int64) (*supplier.Supplier, error) {
	var sp supplier.Supplier
	err := r.db.Where("id = ?", id).First(&sp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sp, nil
}

func (r *SupplierRepository) Create(sp *supplier.Supplier) error {
	return r.db.Create(sp).Error
}
