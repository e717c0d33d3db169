package forms

import "strings"

type SignupForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
	AccountType     string `form:"account_type" validate:"required,oneof=employer employee customer"`
}

var signupMessages = map[string]map[string]string{
	"Name": {
		"required": "Full Name is required.",
	},
	"Email": {
		"required": "Email is required.",
		"email":    "Please enter a valid email address.",
	},
	"Password": {
		"required": "Password is required.",
		"min":      "Password must be at least 8 characters long.",
	},
	"ConfirmPassword": {
		"required": "Please confirm your password.",
		"eqfield":  "Passwords don't match.",
	},
	"AccountType": {
		"required": "Please select an account type.",
		"oneof":    "Please select an account type.",
	},
}

func (f *SignupForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	return firstError(validate.Struct(f), signupMessages, "Please review the form fields.")
}

type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

var loginMessages = map[string]map[string]string{
	"Email": {
		"required": "Email is required.",
		"email":    "Please enter a valid email address.",
	},
	"Password": {
		"required": "Password is required.",
	},
}

func (f *LoginForm) Validate() error {
	f.Email = strings.TrimSpace(f.Email)

	return firstError(validate.Struct(f), loginMessages, "Please review the form fields.")
}
