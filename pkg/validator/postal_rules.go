package validator

import (
	"fmt"
	"regexp"
)

// NNNNN or NNNNN-NNNN.
var usaZipcodeRegex = regexp.MustCompile(`^[0-9]{5}(?:-[0-9]{4})?$`)

// IsIndianZipcodeValid reports whether s has the length of an Indian PIN
// code. Only the length is checked.
func IsIndianZipcodeValid(s string) bool {
	return charLen(s) == IndianZipcodeLength
}

// IsUSAZipcodeValid reports whether s is a five digit ZIP code, optionally
// followed by a dash and four digits (ZIP+4).
func IsUSAZipcodeValid(s string) bool {
	return usaZipcodeRegex.MatchString(s)
}

func ValidIndianZipcode(field, value string) Rule {
	return newRule(field, value, "validation.zipcode_in",
		fmt.Sprintf("must be exactly %d characters long", IndianZipcodeLength),
		IsIndianZipcodeValid, map[string]any{"length": IndianZipcodeLength})
}

func ValidUSAZipcode(field, value string) Rule {
	return newRule(field, value, "validation.zipcode_us",
		"must be a ZIP code in the form 12345 or 12345-6789",
		IsUSAZipcodeValid, nil)
}
