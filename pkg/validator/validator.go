package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// ValidateRegister checks the credential fields. The display name is
// optional; the identity store fills in a default when it is blank.
func ValidateRegister(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)
	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidateSwapRequest checks the fields a sender must choose. The message
// is optional; skill labels are free text and only need to be present.
func ValidateSwapRequest(toUserID, skillOffered, skillRequested string) ValidationErrors {
	errs := make(ValidationErrors)

	if toUserID == "" {
		errs.Add("to_user_id", "Recipient is required")
	}
	if strings.TrimSpace(skillOffered) == "" {
		errs.Add("skill_offered", "Select a skill to offer")
	}
	if strings.TrimSpace(skillRequested) == "" {
		errs.Add("skill_requested", "Select a skill to request")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 6 {
		errs.Add("password", "Password must be at least 6 characters")
	}
}
