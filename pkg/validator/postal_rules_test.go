package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otb/utility/pkg/validator"
)

func TestIsIndianZipcodeValid(t *testing.T) {
	assert.True(t, validator.IsIndianZipcodeValid("560001"))
	assert.False(t, validator.IsIndianZipcodeValid("56000"))
	assert.False(t, validator.IsIndianZipcodeValid("5600011"))
	assert.False(t, validator.IsIndianZipcodeValid(""))
}

func TestIsUSAZipcodeValid(t *testing.T) {
	valid := []string{"90210", "90210-1234", "00501"}
	for _, zip := range valid {
		assert.True(t, validator.IsUSAZipcodeValid(zip), "zip should be valid: %s", zip)
	}

	invalid := []string{"", "9021", "902101", "90210-123", "90210-12345", "90210 1234", "abcde", "90210-"}
	for _, zip := range invalid {
		assert.False(t, validator.IsUSAZipcodeValid(zip), "zip should be invalid: %s", zip)
	}
}

func TestPostalRules(t *testing.T) {
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidIndianZipcode("pin", "1234"),
		validator.ValidUSAZipcode("zip", "9021"),
	))
	require.Len(t, verrs, 2)
	assert.Equal(t, "validation.zipcode_in", verrs[0].TranslationKey)
	assert.Equal(t, "validation.zipcode_us", verrs[1].TranslationKey)
}
