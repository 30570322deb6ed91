package validator

import "fmt"

// IsAbnValid reports whether s has the length of an Australian Business
// Number. Only the length is checked; digits and the checksum are not.
func IsAbnValid(s string) bool {
	return charLen(s) == ABNLength
}

// IsAcnValid reports whether s has the length of an Australian Company
// Number. Only the length is checked.
func IsAcnValid(s string) bool {
	return charLen(s) == ACNLength
}

func ValidABN(field, value string) Rule {
	return newRule(field, value, "validation.abn",
		fmt.Sprintf("must be exactly %d characters long", ABNLength),
		IsAbnValid, map[string]any{"length": ABNLength})
}

func ValidACN(field, value string) Rule {
	return newRule(field, value, "validation.acn",
		fmt.Sprintf("must be exactly %d characters long", ACNLength),
		IsAcnValid, map[string]any{"length": ACNLength})
}
