package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		wantField string
	}{
		{"valid", "jane@example.com", "secret6", ""},
		{"missing email", "", "secret6", "email"},
		{"bad email", "not-an-email", "secret6", "email"},
		{"short password", "jane@example.com", "12345", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateRegister(tt.email, tt.password)
			if tt.wantField == "" {
				assert.False(t, errs.HasErrors(), "unexpected errors: %v", errs)
			} else {
				assert.Contains(t, errs, tt.wantField)
			}
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.False(t, ValidateLogin("jane@example.com", "anything").HasErrors())
	assert.Contains(t, ValidateLogin("", "secret6"), "email")
	assert.Contains(t, ValidateLogin("jane@example.com", ""), "password")
}

func TestValidateSwapRequest(t *testing.T) {
	errs := ValidateSwapRequest("some-id", "Go", "Photography")
	assert.False(t, errs.HasErrors())

	errs = ValidateSwapRequest("", " ", "")
	assert.Contains(t, errs, "to_user_id")
	assert.Contains(t, errs, "skill_offered")
	assert.Contains(t, errs, "skill_requested")
}
