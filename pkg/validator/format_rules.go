package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	// local-part@(sub-domain.)+tld, the TLD being 2-4 letters. No (?i):
	// Unicode case folding would let U+017F and U+212A through.
	emailRegex = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[A-Za-z]{2,4}$`)

	// Schemes that have a registered handler in a standard URL parser.
	knownURLSchemes = []string{"http", "https", "ftp", "file", "jar", "mailto"}
)

// IsEmailValid reports whether s looks like local-part@domain.tld. The local
// part may contain ASCII word characters, dots and hyphens; either letter
// case is accepted. This is a format check, not an RFC 5321 grammar.
func IsEmailValid(s string) bool {
	return emailRegex.MatchString(s)
}

func ValidEmail(field, value string) Rule {
	return newRule(field, value, "validation.email", "must be a valid email address", IsEmailValid, nil)
}

// IsURLValid reports whether s parses as an absolute URL with a known scheme
// and either an authority or a path.
func IsURLValid(s string) bool {
	return isURLWithScheme(s, knownURLSchemes)
}

func isURLWithScheme(s string, schemes []string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if !slices.Contains(schemes, u.Scheme) {
		return false
	}
	// jar:<url>!/<entry>
	if u.Scheme == "jar" && !strings.Contains(u.Opaque, "!/") {
		return false
	}
	return u.Host != "" || u.Opaque != "" || u.Path != ""
}

func ValidURL(field, value string) Rule {
	return newRule(field, value, "validation.url", "must be a valid URL", IsURLValid, nil)
}

// ValidURLWithScheme narrows ValidURL to the given lowercase schemes.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return newRule(field, value, "validation.url_scheme",
		fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
		func(s string) bool { return isURLWithScheme(s, schemes) },
		map[string]any{"schemes": strings.Join(schemes, ", ")})
}

// IsMobileNumberValid reports whether s is 7 to 13 characters long and
// accepted by the default GlobalPhoneChecker. Use a Validator to plug in a
// different checker or length bounds.
func IsMobileNumberValid(s string) bool {
	return defaultValidator.IsMobileNumberValid(s)
}

func ValidMobileNumber(field, value string) Rule {
	return defaultValidator.ValidMobileNumber(field, value)
}
