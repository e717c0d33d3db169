package repositories

import (
	"context"

	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Accounts struct {
	db *gorm.DB
}

func NewAccountsRepository(db *gorm.DB) *Accounts {
	return &Accounts{db: db}
}

func (repo *Accounts) Add(ctx context.Context, account *models.Account) error {
	if err := repo.db.WithContext(ctx).Create(account).Error; err != nil {
		return errors.Wrap(err, "failed to create account")
	}
	return nil
}

// GetByDirectoryID resolves the local profile for a directory user. A
// missing profile is not an error: sign-up is two-step and the second step
// can fail after the directory user exists.
func (repo *Accounts) GetByDirectoryID(ctx context.Context, directoryUserID string) (*models.Account, error) {

	var account models.Account
	err := repo.db.WithContext(ctx).First(&account, "directory_user_id = ?", directoryUserID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get account")
	}
	return &account, nil
}

func (repo *Accounts) GetByID(ctx context.Context, id uint) (*models.Account, error) {

	var account models.Account
	err := repo.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get account")
	}
	return &account, nil
}
