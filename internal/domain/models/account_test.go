package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewAccount_SplitsFullName(t *testing.T) {

	cases := []struct {
		fullName  string
		firstName string
		lastName  string
	}{
		{"John Doe", "John", "Doe"},
		{"John", "John", ""},
		{"Mary Jane Watson", "Mary", "Jane Watson"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, c := range cases {
		account := NewAccount("user-1", c.fullName, "john@example.com", Employee)
		assert.Equal(t, c.firstName, account.FirstName, "full name %q", c.fullName)
		assert.Equal(t, c.lastName, account.LastName, "full name %q", c.fullName)
	}
}

func Test_NewAccount_DerivesUsernameFromEmail(t *testing.T) {
	account := NewAccount("user-1", "John Doe", "john.doe@example.com", Employee)
	assert.Equal(t, "john.doe", account.Username)
	assert.True(t, account.IsActive)
}

func Test_DisplayName_FallsBackToUsername(t *testing.T) {

	account := NewAccount("user-1", "John Doe", "john@example.com", Employee)
	assert.Equal(t, "John Doe", account.DisplayName())

	account = NewAccount("user-1", "", "john@example.com", Employee)
	assert.Equal(t, "john", account.DisplayName())
}

func Test_ToAccountType_RejectsUnknownValues(t *testing.T) {

	for _, valid := range []string{"employer", "employee", "customer"} {
		_, err := ToAccountType(valid)
		require.NoError(t, err, valid)
	}

	_, err := ToAccountType("admin")
	assert.Error(t, err)
}

func Test_ToLocationType_RejectsUnknownValues(t *testing.T) {

	for _, valid := range []string{"on-site", "hybrid", "remote"} {
		_, err := ToLocationType(valid)
		require.NoError(t, err, valid)
	}

	_, err := ToLocationType("office")
	assert.Error(t, err)
}

func Test_ToEmploymentType_RejectsUnknownValues(t *testing.T) {

	for _, valid := range []string{"full-time", "part-time", "contract", "internship", "temporary"} {
		_, err := ToEmploymentType(valid)
		require.NoError(t, err, valid)
	}

	_, err := ToEmploymentType("freelance")
	assert.Error(t, err)
}
