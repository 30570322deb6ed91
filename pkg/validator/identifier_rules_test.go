package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otb/utility/pkg/validator"
)

func TestIsAbnValid(t *testing.T) {
	assert.True(t, validator.IsAbnValid("12345678901"))
	assert.True(t, validator.IsAbnValid("abcdefghijk"), "only the length is checked")
	assert.False(t, validator.IsAbnValid("1234567890"))
	assert.False(t, validator.IsAbnValid("123456789012"))
	assert.False(t, validator.IsAbnValid(""))
}

func TestIsAcnValid(t *testing.T) {
	assert.True(t, validator.IsAcnValid("123456789"))
	assert.True(t, validator.IsAcnValid("12 345 67"), "only the length is checked")
	assert.False(t, validator.IsAcnValid("12345678"))
	assert.False(t, validator.IsAcnValid("1234567890"))
	assert.False(t, validator.IsAcnValid(""))
}

func TestIdentifierRules(t *testing.T) {
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidABN("abn", "123"),
		validator.ValidACN("acn", "123"),
	))
	require.Len(t, verrs, 2)
	assert.Equal(t, "validation.abn", verrs[0].TranslationKey)
	assert.Equal(t, validator.ABNLength, verrs[0].TranslationValues["length"])
	assert.Equal(t, "validation.acn", verrs[1].TranslationKey)
	assert.Equal(t, validator.ACNLength, verrs[1].TranslationValues["length"])
}
