// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	ems_errors "github.com/grootan/ems/api/errors"
	"github.com/grootan/ems/api/model"
)

// UserRepository is the account-store contract consumed by the auth
// pipeline and the employee provisioning flow.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.AppUser, error)
	Create(ctx context.Context, user *model.AppUser) error
}

type UserDAO struct {
	db *gorm.DB
}

var _ UserRepository = &UserDAO{}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// FindByEmail looks up an account by its canonical lowercase email.
func (dao *UserDAO) FindByEmail(ctx context.Context, email string) (*model.AppUser, error) {
	var user model.AppUser
	err := dao.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ems_errors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account %q: %w", email, err)
	}
	return &user, nil
}

func (dao *UserDAO) Create(ctx context.Context, user *model.AppUser) error {
	if err := dao.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create account %q: %w", user.Email, err)
	}
	return nil
}
