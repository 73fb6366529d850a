package matchsession

import (
	"regexp"
	"strings"
)

// FieldErrors maps a form field name to the message shown inline for it. An
// empty set means the form may be submitted; a non-empty set blocks the
// action before any network call.
type FieldErrors map[string]string

// OK reports whether the form passed validation.
func (f FieldErrors) OK() bool { return len(f) == 0 }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateLogin checks the login form. Only well-formed Gmail addresses are
// accepted, matching the account rules of the hosted backend.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email address"
	case !strings.HasSuffix(email, "@gmail.com"):
		errs["email"] = "Only Gmail allowed"
	}
	switch {
	case password == "":
		errs["password"] = "Password required"
	case len(password) < 4:
		errs["password"] = "Min 4 chars"
	}
	return errs
}

// ValidateSignUp checks the registration form.
func ValidateSignUp(fullName, email, phone, password string) FieldErrors {
	errs := FieldErrors{}
	if fullName == "" {
		errs["fullName"] = "Full name is required"
	}
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email address"
	}
	if phone == "" {
		errs["phone"] = "Phone number is required"
	}
	switch {
	case password == "":
		errs["password"] = "Password required"
	case len(password) < 4:
		errs["password"] = "Min 4 chars"
	}
	return errs
}

// ValidateTeamForm checks the add/edit team form. Both textual fields are
// required; the logo is optional and validated separately by the upload flow.
func ValidateTeamForm(name, country string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Team name is required"
	}
	if strings.TrimSpace(country) == "" {
		errs["country"] = "Country is required"
	}
	return errs
}
