package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignupForm() SignupForm {
	return SignupForm{
		Name:            "John Doe",
		Email:           "john@example.com",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
		AccountType:     "employee",
	}
}

func Test_SignupForm_ValidFormPasses(t *testing.T) {
	form := validSignupForm()
	assert.NoError(t, form.Validate())
}

func Test_SignupForm_PasswordRules(t *testing.T) {

	form := validSignupForm()
	form.Password = "short"
	form.ConfirmPassword = "short"
	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters long.", err.Error())

	form = validSignupForm()
	form.ConfirmPassword = "something else"
	err = form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Passwords don't match.", err.Error())
}

func Test_SignupForm_EmailIsValidated(t *testing.T) {

	form := validSignupForm()
	form.Email = "not-an-email"
	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid email address.", err.Error())
}

func Test_SignupForm_AccountTypeIsClosed(t *testing.T) {

	form := validSignupForm()
	form.AccountType = "admin"
	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please select an account type.", err.Error())
}

func Test_SignupForm_FirstFailingRuleWins(t *testing.T) {

	// Name and password are both invalid; the name rule comes first.
	form := validSignupForm()
	form.Name = "   "
	form.Password = "short"
	form.ConfirmPassword = "short"

	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Full Name is required.", err.Error())
}

func Test_LoginForm_RequiresCredentials(t *testing.T) {

	form := LoginForm{}
	err := form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Email is required.", err.Error())

	form = LoginForm{Email: "john@example.com"}
	err = form.Validate()
	require.Error(t, err)
	assert.Equal(t, "Password is required.", err.Error())

	form = LoginForm{Email: "john@example.com", Password: "secret"}
	assert.NoError(t, form.Validate())
}
