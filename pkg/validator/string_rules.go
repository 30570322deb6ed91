package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Letters of any script plus space, period, apostrophe and hyphen.
var nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

// charLen counts characters rather than bytes so that length limits behave
// the same for "José" and "Jose".
func charLen(s string) int {
	return utf8.RuneCountInString(s)
}

// IsNameValid reports whether s is a personal name: one or more Unicode
// letters, spaces, periods, apostrophes or hyphens. The input is
// NFC-normalized first so decomposed accents ("e" + U+0301) are accepted.
func IsNameValid(s string) bool {
	if s == "" {
		return false
	}
	return nameRegex.MatchString(norm.NFC.String(s))
}

func ValidName(field, value string) Rule {
	return newRule(field, value, "validation.name",
		"must contain only letters, spaces, periods, apostrophes and hyphens",
		IsNameValid, nil)
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return newRule(field, value, "validation.required", "field is required",
		func(s string) bool { return strings.TrimSpace(s) != "" }, nil)
}

func MinLen(field, value string, min int) Rule {
	return newRule(field, value, "validation.min_length",
		fmt.Sprintf("must be at least %d characters long", min),
		func(s string) bool { return charLen(s) >= min },
		map[string]any{"min": min})
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, value, "validation.max_length",
		fmt.Sprintf("must be at most %d characters long", max),
		func(s string) bool { return charLen(s) <= max },
		map[string]any{"max": max})
}

func Len(field, value string, exact int) Rule {
	return newRule(field, value, "validation.exact_length",
		fmt.Sprintf("must be exactly %d characters long", exact),
		func(s string) bool { return charLen(s) == exact },
		map[string]any{"length": exact})
}
