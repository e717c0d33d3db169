package services

import (
	"context"

	"github.com/kmureithi/devfolio/internal/clients/directory"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/forms"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type registrationDirectory interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*directory.User, error)
}

type accountWriter interface {
	Add(ctx context.Context, account *models.Account) error
}

// ErrProfileSetupFailed means the directory user exists but the local
// profile insert failed; the user is told to contact support rather than
// sign up again.
var ErrProfileSetupFailed = errors.New("account created but profile setup failed")

// Registration implements the two-step sign-up: the hosted directory
// creates the credentialed user, then a profile row carrying the account
// type is inserted locally.
type Registration struct {
	directory registrationDirectory
	accounts  accountWriter
}

func NewRegistration(directory registrationDirectory, accounts accountWriter) *Registration {
	return &Registration{directory: directory, accounts: accounts}
}

func (r *Registration) SignUp(ctx context.Context, form *forms.SignupForm) (*models.Account, error) {

	user, err := r.directory.SignUp(ctx, form.Email, form.Password, map[string]string{
		"full_name": form.Name,
	})
	if err != nil {
		return nil, err
	}

	accountType, err := models.ToAccountType(form.AccountType)
	if err != nil {
		return nil, err
	}

	account := models.NewAccount(user.ID, form.Name, form.Email, accountType)
	if err := r.accounts.Add(ctx, account); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("profile creation failed for directory user %v: %v", user.ID, err)
		return nil, ErrProfileSetupFailed
	}

	return account, nil
}
