package validator

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// ValidationError describes a single rejected field. TranslationKey and
// TranslationValues let callers render the message through a catalog.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects every rejected field of one Apply call.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// LogValue renders the rejections as a group of field -> translation key.
// Messages and input values are left out so nothing user-supplied reaches
// the log.
func (ve ValidationErrors) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(ve))
	for _, e := range ve {
		attrs = append(attrs, slog.String(e.Field, e.TranslationKey))
	}
	return slog.GroupValue(attrs...)
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// GetErrors returns the errors recorded for field in insertion order.
func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var out []ValidationError
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}

// Get is GetErrors reduced to the messages.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, e := range ve.GetErrors(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

// Fields lists the distinct rejected fields in the order they first failed.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a Rule around a string predicate. The field name is always
// present in TranslationValues so catalog templates can reference it.
func newRule(field, value, key, message string, pred func(string) bool, extra map[string]any) Rule {
	values := map[string]any{"field": field}
	for k, v := range extra {
		values[k] = v
	}
	return Rule{
		Check: func() bool { return pred(value) },
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// Apply runs every rule and returns ValidationErrors for the ones that failed,
// or nil when all of them pass. A rule with a nil Check counts as failed.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check == nil || !rule.Check() {
			errs.Add(rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors unwraps ValidationErrors from err. It returns nil
// for nil errors and for errors of any other type.
func ExtractValidationErrors(err error) ValidationErrors {
	verrs, _ := asValidationErrors(err)
	return verrs
}

func IsValidationError(err error) bool {
	_, ok := asValidationErrors(err)
	return ok
}

func asValidationErrors(err error) (ValidationErrors, bool) {
	var verrs ValidationErrors
	if err == nil || !errors.As(err, &verrs) {
		return nil, false
	}
	return verrs, true
}
