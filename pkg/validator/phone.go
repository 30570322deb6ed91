package validator

import (
	"errors"
	"fmt"
	"regexp"
)

// DefaultPhonePattern accepts an optional leading plus followed by digits,
// dots and dashes. It approximates the "global phone number" check that
// mobile platforms ship with; it does not know about country plans.
const DefaultPhonePattern = `^\+?[0-9.\-]+$`

var globalPhoneRegex = regexp.MustCompile(DefaultPhonePattern)

// PhoneFormatChecker decides whether a string is a syntactically plausible
// phone number. Length bounds are applied separately by the Validator.
type PhoneFormatChecker interface {
	IsGlobalPhoneNumber(s string) bool
}

// PhoneCheckerFunc adapts a plain function to PhoneFormatChecker.
type PhoneCheckerFunc func(s string) bool

func (f PhoneCheckerFunc) IsGlobalPhoneNumber(s string) bool {
	return f(s)
}

// GlobalPhoneChecker is the default PhoneFormatChecker built on
// DefaultPhonePattern.
type GlobalPhoneChecker struct{}

func (GlobalPhoneChecker) IsGlobalPhoneNumber(s string) bool {
	return s != "" && globalPhoneRegex.MatchString(s)
}

type patternPhoneChecker struct {
	re *regexp.Regexp
}

func (c patternPhoneChecker) IsGlobalPhoneNumber(s string) bool {
	return s != "" && c.re.MatchString(s)
}

// NewPatternPhoneChecker compiles pattern into a PhoneFormatChecker.
func NewPatternPhoneChecker(pattern string) (PhoneFormatChecker, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidPhoneConfig, err)
	}
	return patternPhoneChecker{re: re}, nil
}

// PhoneConfig tunes the mobile number heuristic. The zero value is not
// usable; start from DefaultPhoneConfig or load it from the environment.
type PhoneConfig struct {
	MinLength int    `env:"VALIDATOR_PHONE_MIN_LENGTH" envDefault:"7"`
	MaxLength int    `env:"VALIDATOR_PHONE_MAX_LENGTH" envDefault:"13"`
	Pattern   string `env:"VALIDATOR_PHONE_PATTERN" envDefault:"^\\+?[0-9.\\-]+$"`
}

func DefaultPhoneConfig() PhoneConfig {
	return PhoneConfig{
		MinLength: MobileNumberMinLength,
		MaxLength: MobileNumberMaxLength,
		Pattern:   DefaultPhonePattern,
	}
}

// Validate checks the bounds and compiles the pattern.
func (c PhoneConfig) Validate() error {
	if c.MinLength < 1 || c.MaxLength < c.MinLength {
		return errors.Join(ErrInvalidPhoneConfig,
			fmt.Errorf("length bounds %d..%d", c.MinLength, c.MaxLength))
	}
	if c.Pattern == "" {
		return errors.Join(ErrInvalidPhoneConfig, errors.New("empty pattern"))
	}
	if _, err := regexp.Compile(c.Pattern); err != nil {
		return errors.Join(ErrInvalidPhoneConfig, err)
	}
	return nil
}

// checker returns the PhoneFormatChecker described by c, reusing the
// precompiled default when the pattern is unchanged.
func (c PhoneConfig) checker() (PhoneFormatChecker, error) {
	if c.Pattern == DefaultPhonePattern {
		return GlobalPhoneChecker{}, nil
	}
	return NewPatternPhoneChecker(c.Pattern)
}
