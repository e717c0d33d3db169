package web

import (
	"github.com/kmureithi/devfolio/internal/domain/models"
)

// ApplyState drives the apply button on a job card.
type ApplyState struct {
	Label     string
	Enabled   bool
	LoginLink bool
}

// CardState resolves the apply-button state for one post and one viewer:
//
//	anonymous            -> "Login to Apply" link
//	non-employee account -> disabled "Employers Cannot Apply"
//	employee, applied    -> disabled "Applied"
//	employee, fresh      -> enabled "Apply Now"
func CardState(account *models.Account, postID uint, applied map[uint]struct{}) ApplyState {

	if account == nil {
		return ApplyState{Label: "Login to Apply", LoginLink: true}
	}

	if account.AccountType != models.Employee {
		return ApplyState{Label: "Employers Cannot Apply"}
	}

	if _, alreadyApplied := applied[postID]; alreadyApplied {
		return ApplyState{Label: "Applied"}
	}

	return ApplyState{Label: "Apply Now", Enabled: true}
}
