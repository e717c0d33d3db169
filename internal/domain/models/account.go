package models

import (
	"errors"
	"strings"
	"time"
)

type AccountType string

const (
	Employer AccountType = "employer"
	Employee AccountType = "employee"
	Customer AccountType = "customer"
)

func ToAccountType(s string) (AccountType, error) {
	switch s {
	case string(Employer):
		return Employer, nil
	case string(Employee):
		return Employee, nil
	case string(Customer):
		return Customer, nil
	default:
		return "", errors.New("invalid account type")
	}
}

// Account is the local profile row attached to a directory user. Credentials
// never live here; the hosted directory owns them.
type Account struct {
	ID              uint
	DirectoryUserID string `gorm:"uniqueIndex"`
	Username        string
	FirstName       string
	LastName        string
	Email           string
	AccountType     AccountType
	IsActive        bool `gorm:"default:true"`
	CreatedAt       time.Time
}

func NewAccount(directoryUserID, fullName, email string, accountType AccountType) *Account {

	firstName, lastName := splitFullName(fullName)
	return &Account{
		DirectoryUserID: directoryUserID,
		Username:        usernameFromEmail(email),
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		AccountType:     accountType,
		IsActive:        true,
	}
}

func (a *Account) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

func splitFullName(fullName string) (string, string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}
