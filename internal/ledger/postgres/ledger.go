package postgres

import (
	"time"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/ledger"
	"gorm.io/gorm"
)

type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) ledger.RepositoryAPI {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) CreatePayable(p *ledger.AccountsPayable) error {
	return r.db.Create(p).Error
}

func (r *LedgerRepository) GetPayableByID(id int64) (*ledger.AccountsPayable, error) {
	var p ledger.AccountsPayable
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Settle runs the payable-to-paid transition in one transaction. The status
// flip is a conditional update on (id, status=Pending) so two concurrent
// settlements cannot both pass; the loser sees zero rows affected and gets
// PAYABLE_ALREADY_PAID. Any failure rolls back both writes.
func (r *LedgerRepository) Settle(payableID int64, paymentDate time.Time) (*ledger.AccountsPaid, error) {
	var paid *ledger.AccountsPaid

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var p ledger.AccountsPayable
		if err := tx.Where("id = ?", payableID).First(&p).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return internal.ErrPayableNotFound
			}
			return err
		}

		res := tx.Model(&ledger.AccountsPayable{}).
			Where("id = ? AND status = ?", payableID, ledger.StatusPending).
			Updates(map[string]interface{}{
				"status":     ledger.StatusPaid,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPayableAlreadyPaid
		}

		paid = ledger.SettledFrom(&p, paymentDate)
		return tx.Create(paid).Error
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

func (r *LedgerRepository) CreatePaid(p *ledger.AccountsPaid) error {
	return r.db.Create(p).Error
}

func (r *LedgerRepository) CreateMonthlyExpense(m *ledger.MonthlyExpense) error {
	return r.db.Create(m).Error
}
