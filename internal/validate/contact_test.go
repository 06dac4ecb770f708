package validate

import (
	"testing"

	"github.com/mfriesen/discovery/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validContact() domain.Contact {
	return domain.Contact{
		Company: "Bergmann Dental",
		Name:    "Lena Bergmann",
		Email:   "lena@bergmann-dental.de",
		Phone:   "+49 30 1234567",
	}
}

func TestCheckContact_Valid(t *testing.T) {
	fe := CheckContact(validContact())
	assert.True(t, fe.Valid())
	assert.Empty(t, fe)
}

func TestCheckContact_MissingFields(t *testing.T) {
	fe := CheckContact(domain.Contact{})
	assert.False(t, fe.Valid())
	assert.Len(t, fe, 4)
	assert.Contains(t, fe, "company")
	assert.Contains(t, fe, "name")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "phone")
}

func TestCheckContact_Email(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"lena@bergmann-dental.de", true},
		{"a@b.co", true},
		{"first.last@sub.example.com", true},
		{"no-at-sign.example.com", false},
		{"two@@example.com", false},
		{"missing-domain@", false},
		{"missing-tld@example", false},
		{"spaces in@example.com", false},
	}
	for _, tc := range cases {
		c := validContact()
		c.Email = tc.email
		fe := CheckContact(c)
		if tc.ok {
			assert.NotContains(t, fe, "email", "email %q should pass", tc.email)
		} else {
			assert.Contains(t, fe, "email", "email %q should fail", tc.email)
		}
	}
}

func TestCheckContact_Phone(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+49 30 1234567", true},
		{"(030) 123-4567", true},
		{"12345678", true},
		{"1234567", false},     // too short
		{"12345abc", false},    // letters
		{"0800/123456", false}, // slash not allowed
		{"        ", false},    // blank after trim
	}
	for _, tc := range cases {
		c := validContact()
		c.Phone = tc.phone
		fe := CheckContact(c)
		if tc.ok {
			assert.NotContains(t, fe, "phone", "phone %q should pass", tc.phone)
		} else {
			assert.Contains(t, fe, "phone", "phone %q should fail", tc.phone)
		}
	}
}

func TestCheckContact_TrimsBeforeValidating(t *testing.T) {
	c := validContact()
	c.Email = "  lena@bergmann-dental.de  "
	c.Phone = "  +49 30 1234567  "
	fe := CheckContact(c)
	assert.True(t, fe.Valid())
}
