package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{"field and value", ValidationError{Field: "linksFile", Value: "../links.json", Message: "must be a file name without directories"}, "field 'linksFile': must be a file name without directories (got ../links.json)"},
		{"field only", ValidationError{Field: "output", Message: "unsupported"}, "field 'output': unsupported"},
		{"message only", ValidationError{Message: "bad config"}, "bad config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())

	cfg := GetDefaultConfig()
	cfg.LinksFile = "sub/links.json"
	cfg.Output = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "(got sub/links.json)")
	assert.Contains(t, err.Error(), `"xml"`)
}
