package category

import (
	"time"
)

// ExpenseCategory is a reporting dimension shared by payables, paid entries
// and monthly expenses. Names are unique.
type ExpenseCategory struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

func NewExpenseCategory(name, description string) *ExpenseCategory {
	now := time.Now()
	return &ExpenseCategory{
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
