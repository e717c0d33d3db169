package models

import "time"

// Application links an employee account to a post it applied to. At most one
// row may exist per (PostID, AccountID); the unique index created during
// migration is the backstop for the check-then-insert in the workflow.
type Application struct {
	ID        uint
	PostID    uint
	AccountID uint
	CreatedAt time.Time
}
