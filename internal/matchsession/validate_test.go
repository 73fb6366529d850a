package matchsession

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		want     FieldErrors
	}{
		{"valid", "coach@gmail.com", "hunter2", FieldErrors{}},
		{"empty email", "", "hunter2", FieldErrors{"email": "Email is required"}},
		{"malformed email", "not an email", "hunter2", FieldErrors{"email": "Invalid email address"}},
		{"non-gmail blocked", "coach@example.com", "hunter2", FieldErrors{"email": "Only Gmail allowed"}},
		{"empty password", "coach@gmail.com", "", FieldErrors{"password": "Password required"}},
		{"short password", "coach@gmail.com", "abc", FieldErrors{"password": "Min 4 chars"}},
		{"both bad", "", "", FieldErrors{"email": "Email is required", "password": "Password required"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLogin(tt.email, tt.password)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) == 0, got.OK())
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	assert.True(t, ValidateSignUp("Coach Carter", "coach@example.com", "+123456", "hunter2").OK())

	errs := ValidateSignUp("", "", "", "")
	assert.Len(t, errs, 4)
	assert.Equal(t, "Full name is required", errs["fullName"])
	assert.Equal(t, "Phone number is required", errs["phone"])
}

func TestValidateTeamForm(t *testing.T) {
	assert.True(t, ValidateTeamForm("Lions", "Kenya").OK())
	assert.False(t, ValidateTeamForm("", "Kenya").OK())
	assert.False(t, ValidateTeamForm("Lions", "").OK())
	assert.False(t, ValidateTeamForm("   ", "Kenya").OK())
}
