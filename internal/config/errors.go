package config

import "fmt"

// ConfigurationError represents a failure to resolve or load configuration.
type ConfigurationError struct {
	FilePath  string // Full path to the file or directory that caused the error
	ErrorType string // Type of error (io, parse, validation)
	Message   string // Human-readable error message
	Reason    error  // Underlying error, if any
}

// Error implements the error interface
func (ce *ConfigurationError) Error() string {
	if ce.Reason != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", ce.ErrorType, ce.FilePath, ce.Message, ce.Reason)
	}
	return fmt.Sprintf("[%s] %s: %s", ce.ErrorType, ce.FilePath, ce.Message)
}

func (ce *ConfigurationError) Unwrap() error {
	return ce.Reason
}
