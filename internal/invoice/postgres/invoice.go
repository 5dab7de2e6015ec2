package postgres

import (
	"github.com/mauriciopaint/backoffice/internal/invoice"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) invoice.RepositoryAPI {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) CreateProject(p *invoice.Project) error {
	return r.db.Create(p).Error
}

func (r *InvoiceRepository) GetProjectByID(id int64) (*invoice.Project, error) {
	var p invoice.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *InvoiceRepository) ListProjects() ([]*invoice.Project, error) {
	var projects []*invoice.Project
	err := r.db.Order("name ASC").Find(&projects).Error
	return projects, err
}

func (r *InvoiceRepository) CreateInvoice(i *invoice.Invoice) error {
	return r.db.Create(i).Error
}

func (r *InvoiceRepository) GetInvoiceByID(id int64) (*invoice.Invoice, error) {
	var i invoice.Invoice
	err := r.db.Where("id = ?", id).First(&i).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *InvoiceRepository) GetInvoiceByNumber(number string) (*invoice.Invoice, error) {
	var i invoice.Invoice
	err := r.db.Where("invoice_number = ?", number).First(&i).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &i, nil
}

func (r *InvoiceRepository) ListInvoices() ([]*invoice.Invoice, error) {
	var invoices []*invoice.Invoice
	err := r.db.Order("issue_date DESC").Find(&invoices).Error
	return invoices, err
}
