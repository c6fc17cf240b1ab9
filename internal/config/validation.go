package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"linked/internal/formatting"
	"linked/pkg/logging"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	msg := ve.Message
	if ve.Value != nil {
		msg = fmt.Sprintf("%s (got %v)", msg, ve.Value)
	}
	if ve.Field == "" {
		return msg
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, msg)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Validate checks a loaded configuration for values linked cannot use.
func (c LinkedConfig) Validate() error {
	var errs ValidationErrors

	if c.LinksFile != "" {
		if c.LinksFile != filepath.Base(c.LinksFile) || c.LinksFile == "." || c.LinksFile == ".." {
			errs.Add("linksFile", "must be a file name without directories", c.LinksFile)
		} else if c.LinksFile == configFileName {
			errs.Add("linksFile", fmt.Sprintf("cannot be %s", configFileName), c.LinksFile)
		}
	}

	if c.Output != "" {
		if _, err := formatting.ParseFormat(c.Output); err != nil {
			errs.Add("output", err.Error())
		}
	}

	if c.LogLevel != "" {
		if _, err := logging.ParseLevel(c.LogLevel); err != nil {
			errs.Add("logLevel", err.Error())
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
