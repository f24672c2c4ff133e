package repository

import (
	"errors"

	"github.com/inkwell/inkwell-backend/internal/common"
	"github.com/inkwell/inkwell-backend/internal/domain"
	"gorm.io/gorm"
)

// AuthAccountRepository stores login secrets for the auth collaborator.
// The social core never touches this table.
type AuthAccountRepository interface {
	FindByEmail(email string) (*domain.AuthAccount, error)
	Create(account *domain.AuthAccount) error
}

type authAccountRepository struct {
	db *gorm.DB
}

// NewAuthAccountRepository creates a new AuthAccountRepository
func NewAuthAccountRepository(db *gorm.DB) AuthAccountRepository {
	return &authAccountRepository{db: db}
}

// FindByEmail returns the account for an email, or ErrInvalidCredentials
func (r *authAccountRepository) FindByEmail(email string) (*domain.AuthAccount, error) {
	var account domain.AuthAccount
	err := r.db.Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}
	return &account, nil
}

// Create inserts an account; the unique email index rejects duplicates
func (r *authAccountRepository) Create(account *domain.AuthAccount) error {
	err := r.db.Create(account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrEmailTaken
		}
		return err
	}
	return nil
}
