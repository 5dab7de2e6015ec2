package supplier

import (
	"time"
)

// Supplier is a party the business owes money to. Referenced by payables
// and paid entries; never deleted while referenced.
type Supplier struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

func NewSupplier(name, contact string) *Supplier {
	now := time.Now()
	return &Supplier{
		Name:      name,
		Contact:   contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
