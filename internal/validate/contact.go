package validate

import (
	"regexp"
	"strings"

	"github.com/mfriesen/discovery/internal/domain"
)

// FieldErrors maps contact field names to a human-readable problem
// description. An empty map means the contact passes.
type FieldErrors map[string]string

// Valid reports whether no field failed.
func (fe FieldErrors) Valid() bool {
	return len(fe) == 0
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phone may contain digits, spaces, and the usual separator characters.
var phoneCharRe = regexp.MustCompile(`^[0-9+()\- ]+$`)

const minPhoneLen = 8

// CheckContact validates the intake form. It is a pure predicate: failures
// come back as field-scoped messages for inline rendering, never as errors.
func CheckContact(c domain.Contact) FieldErrors {
	fe := FieldErrors{}

	if strings.TrimSpace(c.Company) == "" {
		fe["company"] = "company is required"
	}
	if strings.TrimSpace(c.Name) == "" {
		fe["name"] = "name is required"
	}

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		fe["email"] = "email is required"
	case !emailRe.MatchString(email):
		fe["email"] = "enter a valid email address"
	}

	phone := strings.TrimSpace(c.Phone)
	switch {
	case phone == "":
		fe["phone"] = "phone is required"
	case !phoneCharRe.MatchString(phone) || len(phone) < minPhoneLen:
		fe["phone"] = "enter a valid phone number"
	}

	return fe
}

// CheckEmail validates a single email value, for use as a huh field
// validator.
func CheckEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// CheckPhone validates a single phone value, for use as a huh field
// validator.
func CheckPhone(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= minPhoneLen && phoneCharRe.MatchString(s)
}
