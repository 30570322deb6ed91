package validator_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otb/utility/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Run("default message when empty", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
		assert.True(t, errs.IsEmpty())
	})

	t.Run("joins field messages", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})
		errs.Add(validator.ValidationError{Field: "zip", Message: "too short"})
		assert.Equal(t, "validation failed: email: is invalid; zip: too short", errs.Error())
	})

	t.Run("field helpers", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})
		errs.Add(validator.ValidationError{Field: "email", Message: "is invalid"})
		errs.Add(validator.ValidationError{Field: "password", Message: "needs a digit"})

		assert.True(t, errs.Has("password"))
		assert.False(t, errs.Has("name"))
		assert.Equal(t, []string{"too short", "needs a digit"}, errs.Get("password"))
		assert.Len(t, errs.GetErrors("password"), 2)
		assert.Nil(t, errs.Get("name"))
		assert.Equal(t, []string{"password", "email"}, errs.Fields())
	})

	t.Run("logs field keys without messages", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "user@bad is invalid", TranslationKey: "validation.email"},
			{Field: "zip", Message: "too short", TranslationKey: "validation.zipcode_us"},
		}

		buf := &bytes.Buffer{}
		slog.New(slog.NewJSONHandler(buf, nil)).Info("rejected", slog.Any("errors", errs))

		var entry struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, map[string]string{
			"email": "validation.email",
			"zip":   "validation.zipcode_us",
		}, entry.Errors)
		assert.NotContains(t, buf.String(), "user@bad")
	})
}

func TestApply(t *testing.T) {
	t.Run("nil when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidEmail("email", "user@example.com"),
			validator.ValidABN("abn", "12345678901"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(
			validator.ValidEmail("email", "bad-email"),
			validator.ValidABN("abn", "12345678901"),
			validator.ValidUSAZipcode("zip", "9021"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "email", verrs[0].Field)
		assert.Equal(t, "validation.email", verrs[0].TranslationKey)
		assert.Equal(t, "zip", verrs[1].Field)
		assert.Equal(t, "validation.zipcode_us", verrs[1].TranslationKey)
		assert.Equal(t, "zip", verrs[1].TranslationValues["field"])
	})

	t.Run("nil check fails", func(t *testing.T) {
		err := validator.Apply(validator.Rule{Error: validator.ValidationError{Field: "x"}})
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("other")))

	err := validator.Apply(validator.ValidACN("acn", "1"))
	wrapped := fmt.Errorf("signup: %w", err)

	assert.True(t, validator.IsValidationError(wrapped))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "acn", verrs[0].Field)
}
