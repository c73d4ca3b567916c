package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"ada@example.edu",
		"first.last@sub.example.com",
		"x+tag@example.org",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), "expected %q to be valid", email)
	}

	invalid := []string{
		"",
		"plain",
		"no-domain@",
		"@no-local.com",
		"no-tld@example",
		"two words@example.com",
		"a@b@c.com",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), "expected %q to be invalid", email)
	}
}

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate(), "required empty value")
	assert.True(t, NewStringValidation("").WithRequired(false).Validate(), "optional empty value")
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.True(t, NewStringValidation("abc").WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("abcd").WithMaxLength(3).Validate())
	assert.True(t, NewStringValidation("ada@example.edu").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("nope").WithPattern(CompiledPatterns.Email).Validate())
}
