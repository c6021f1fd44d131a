// Package validate holds the pure field predicates used by signup, password
// change and address forms. Predicates only answer yes or no; callers decide
// which classified error to return.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/storefront-server/internal/model"
)

const passwordSymbols = "#@$%&*!^"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

	// validator.Validate caches struct metadata and is safe for concurrent use.
	structValidator = validator.New()
)

type signupFields struct {
	FirstName     string `validate:"required"`
	Email         string `validate:"required"`
	ContactNumber string `validate:"required"`
	Password      string `validate:"required"`
}

type addressFields struct {
	FlatBuildingName string `validate:"required"`
	Locality         string `validate:"required"`
	City             string `validate:"required"`
	Pincode          string `validate:"required"`
	StateID          string `validate:"required"`
}

// PincodeValid reports whether s is exactly six ASCII digits.
func PincodeValid(s string) bool {
	return digitsOfLen(s, 6)
}

// MobileValid reports whether s is exactly ten ASCII digits.
func MobileValid(s string) bool {
	return digitsOfLen(s, 10)
}

// EmailValid reports whether s looks like local-part@domain.tld.
func EmailValid(s string) bool {
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}

// PasswordStrong reports whether s has at least eight characters including a
// digit, an uppercase letter and one of #@$%&*!^.
func PasswordStrong(s string) bool {
	if utf8.RuneCountInString(s) < 8 {
		return false
	}

	var digit, upper, symbol bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}

	return digit && upper && symbol
}

// RequiredFieldsPresent reports whether every mandatory signup field is
// non-empty. Last name is optional.
func RequiredFieldsPresent(p model.SignupParams) bool {
	return structValidator.Struct(signupFields{
		FirstName:     p.FirstName,
		Email:         p.Email,
		ContactNumber: p.ContactNumber,
		Password:      p.Password,
	}) == nil
}

// AddressFieldsPresent reports whether every address field is non-empty.
func AddressFieldsPresent(p model.SaveAddressParams) bool {
	return structValidator.Struct(addressFields(p)) == nil
}

func digitsOfLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
