package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[` + regexp.QuoteMeta(PasswordSpecialChars) + `]`)
)

// PasswordRequirement names one of the password policy checks.
type PasswordRequirement string

const (
	PasswordMinLengthRequirement PasswordRequirement = "min_length"
	PasswordNoWhitespace         PasswordRequirement = "no_whitespace"
	PasswordDigitRequirement     PasswordRequirement = "digit"
	PasswordLowercaseRequirement PasswordRequirement = "lowercase"
	PasswordUppercaseRequirement PasswordRequirement = "uppercase"
	PasswordSpecialRequirement   PasswordRequirement = "special"
)

func hasWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// MissingPasswordRequirements lists every policy check s fails, in a stable
// order. An empty result means the password is acceptable.
func MissingPasswordRequirements(s string) []PasswordRequirement {
	var missing []PasswordRequirement
	if charLen(s) < PasswordMinLength {
		missing = append(missing, PasswordMinLengthRequirement)
	}
	if hasWhitespace(s) {
		missing = append(missing, PasswordNoWhitespace)
	}
	if !digitRegex.MatchString(s) {
		missing = append(missing, PasswordDigitRequirement)
	}
	if !lowercaseRegex.MatchString(s) {
		missing = append(missing, PasswordLowercaseRequirement)
	}
	if !uppercaseRegex.MatchString(s) {
		missing = append(missing, PasswordUppercaseRequirement)
	}
	if !specialCharRegex.MatchString(s) {
		missing = append(missing, PasswordSpecialRequirement)
	}
	return missing
}

// IsPasswordValid reports whether s has at least 8 characters, no
// whitespace, and at least one digit, one lowercase letter, one uppercase
// letter and one of @#$%^&+=.
func IsPasswordValid(s string) bool {
	return len(MissingPasswordRequirements(s)) == 0
}

func ValidPassword(field, value string) Rule {
	return newRule(field, value, "validation.password",
		fmt.Sprintf("must be at least %d characters without spaces and contain a digit, a lowercase letter, an uppercase letter and one of %s",
			PasswordMinLength, PasswordSpecialChars),
		IsPasswordValid,
		map[string]any{"min": PasswordMinLength, "special": PasswordSpecialChars})
}

// PasswordRules expands the password policy into one Rule per requirement so
// that each unmet requirement is reported separately.
func PasswordRules(field, value string) []Rule {
	return []Rule{
		MinLen(field, value, PasswordMinLength),
		newRule(field, value, "validation.password_whitespace", "must not contain whitespace",
			func(s string) bool { return !hasWhitespace(s) }, nil),
		newRule(field, value, "validation.password_digit", "must contain at least one digit",
			digitRegex.MatchString, nil),
		newRule(field, value, "validation.password_lowercase", "must contain at least one lowercase letter",
			lowercaseRegex.MatchString, nil),
		newRule(field, value, "validation.password_uppercase", "must contain at least one uppercase letter",
			uppercaseRegex.MatchString, nil),
		newRule(field, value, "validation.password_special",
			fmt.Sprintf("must contain at least one of %s", PasswordSpecialChars),
			specialCharRegex.MatchString,
			map[string]any{"special": PasswordSpecialChars}),
	}
}
