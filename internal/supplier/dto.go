package supplier

import (
	"strings"

	"github.com/mauriciopaint/backoffice/internal"
)

type CreateSupplierDTO struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

func (d *CreateSupplierDTO) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type SupplierResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

type SuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

func toResponse(s *Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
	}
}
