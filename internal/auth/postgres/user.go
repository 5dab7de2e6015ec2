package postgres

import (
	"github.com/mauriciopaint/backoffice/internal/auth"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.UserRepositoryAPI {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(username string) (*auth.User, error) {
	var u auth.User
	err := r.db.Where("username = ?", username).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *auth.User) error {
	return r.db.Create(u).Error
}
