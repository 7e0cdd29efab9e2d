package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required"`
	URL  string `validate:"omitempty,http_url"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(sample{Name: "x"}))
	require.NoError(t, ValidateStruct(sample{Name: "x", URL: "https://discord.com/api/webhooks/1/abc"}))

	err := ValidateStruct(sample{URL: "not a url"})
	require.Error(t, err)

	errs := TranslateError(err)
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "URL")
}

func TestTranslateErrorNonValidation(t *testing.T) {
	assert.Empty(t, TranslateError(nil))
	assert.Equal(t, map[string]string{"": "boom"}, TranslateError(errors.New("boom")))
}
