package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/otb/utility/pkg/config"
)

var defaultValidator = New()

// Validator carries the pluggable parts of the package: the phone format
// checker, the mobile number length bounds and a logger. It is immutable
// after New and safe for concurrent use.
type Validator struct {
	phone     PhoneFormatChecker
	minLength int
	maxLength int
	logger    *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithPhoneChecker replaces the default GlobalPhoneChecker. Nil is ignored.
func WithPhoneChecker(c PhoneFormatChecker) Option {
	return func(v *Validator) {
		if c != nil {
			v.phone = c
		}
	}
}

// WithPhoneLength overrides the accepted mobile number length range.
// Invalid ranges are ignored.
func WithPhoneLength(min, max int) Option {
	return func(v *Validator) {
		if min >= 1 && max >= min {
			v.minLength, v.maxLength = min, max
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New returns a Validator with the default phone heuristic and a logger that
// discards everything.
func New(opts ...Option) *Validator {
	v := &Validator{
		phone:     GlobalPhoneChecker{},
		minLength: MobileNumberMinLength,
		maxLength: MobileNumberMaxLength,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewWithPhoneConfig builds a Validator from cfg. Options are applied after
// cfg, so WithPhoneChecker still wins over cfg.Pattern.
func NewWithPhoneConfig(cfg PhoneConfig, opts ...Option) (*Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	checker, err := cfg.checker()
	if err != nil {
		return nil, err
	}
	base := []Option{WithPhoneChecker(checker), WithPhoneLength(cfg.MinLength, cfg.MaxLength)}
	return New(append(base, opts...)...), nil
}

// NewFromEnv loads PhoneConfig from VALIDATOR_PHONE_* environment variables
// (and a .env file, if present) and builds a Validator from it.
func NewFromEnv(opts ...Option) (*Validator, error) {
	var cfg PhoneConfig
	if err := config.Load(&cfg); err != nil {
		return nil, errors.Join(ErrInvalidPhoneConfig, err)
	}
	return NewWithPhoneConfig(cfg, opts...)
}

// IsMobileNumberValid reports whether s is within the configured length
// range and accepted by the configured PhoneFormatChecker. Strings outside
// the range are rejected without consulting the checker.
func (v *Validator) IsMobileNumberValid(s string) bool {
	n := charLen(s)
	if n < v.minLength || n > v.maxLength {
		return false
	}
	return v.phone.IsGlobalPhoneNumber(s)
}

func (v *Validator) ValidMobileNumber(field, value string) Rule {
	return newRule(field, value, "validation.mobile",
		fmt.Sprintf("must be a phone number of %d to %d characters", v.minLength, v.maxLength),
		v.IsMobileNumberValid,
		map[string]any{"min": v.minLength, "max": v.maxLength})
}

// Validate applies rules like Apply and logs rejected fields at debug level.
// Only field names and translation keys are logged, never the values.
func (v *Validator) Validate(ctx context.Context, rules ...Rule) error {
	err := Apply(rules...)
	verrs := ExtractValidationErrors(err)
	if verrs == nil {
		return nil
	}

	v.logger.DebugContext(ctx, "input rejected",
		slog.Int("count", len(verrs)),
		slog.Any("rejected", verrs),
	)
	return err
}
