package authform

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

const (
	tagRequired       = "required"
	tagLooseEmail     = "loose_email"
	tagStrongPassword = "strong_password"

	// MinPasswordLength is the minimum length of a sign-up password, in
	// UTF-16 code units. A character outside the Basic Multilingual Plane
	// counts twice.
	MinPasswordLength = 8

	// PasswordSymbols is the set of characters that satisfy the
	// special-character rule of the strength policy.
	PasswordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`
)

// nonSpace matches anything that is not whitespace, including the Unicode
// space separators and the byte-order mark.
const nonSpace = `[^\pZ\t\n\x0B\f\r\x{FEFF}]`

var looseEmailRe = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// validate is shared by every submission; the validator caches its rules.
var validate = validator.New()

func init() {
	_ = validate.RegisterValidation(tagLooseEmail, validateLooseEmail)
	_ = validate.RegisterValidation(tagStrongPassword, validateStrongPassword)
}

func validateLooseEmail(fl validator.FieldLevel) bool {
	return LooseEmail(fl.Field().String())
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	return StrongPassword(fl.Field().String())
}

// LooseEmail reports whether s contains something shaped like
// "<nonspace>@<nonspace>.<nonspace>". It is not an RFC 5322 check.
func LooseEmail(s string) bool {
	return looseEmailRe.MatchString(s)
}

// StrongPassword reports whether p satisfies the sign-up strength policy:
// at least MinPasswordLength UTF-16 units, one ASCII uppercase letter, one
// ASCII digit and one character from PasswordSymbols. Line breaks are not
// allowed anywhere in the password.
func StrongPassword(p string) bool {
	if utf16Len(p) < MinPasswordLength {
		return false
	}
	if strings.ContainsAny(p, "\n\r\u2028\u2029") {
		return false
	}
	var upper, digit, symbol bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return upper && digit && symbol
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// check runs a single validator tag against v.
func check(v, tag string) bool {
	return validate.Var(v, tag) == nil
}
