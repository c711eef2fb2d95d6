package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationCategory names the part of the input a validation error
// came from.
//
// Knowing the source lets display code and tests treat config file
// problems, bad flag values, and bad format selections distinctly.
type ValidationCategory string

const (
	// ValidationCategoryConfig indicates a problem in the YAML config file.
	ValidationCategoryConfig ValidationCategory = "config"

	// ValidationCategoryCriteria indicates an invalid filter criterion value.
	ValidationCategoryCriteria ValidationCategory = "criteria"

	// ValidationCategoryOutput indicates an unknown output format selection.
	ValidationCategoryOutput ValidationCategory = "output"
)

// ValidationError represents a configuration or criteria validation failure.
//
// A single type covers config file issues, filter flag issues, and output
// format issues. The Category field distinguishes the source. Validation
// errors map to ExitValidationError so scripts can tell bad input apart
// from dataset failures.
//
// Fields:
//   - Category: Source of validation ("config", "criteria", "output")
//   - Field: Name of the invalid field, flag, or setting
//   - Message: Description of what's wrong
//   - Expected: What the valid value should look like
//   - ValidKeys: List of valid options (for enum-like fields)
//   - DocSection: Link to documentation for this setting
//   - Hint: Actionable hint for fixing the error
//
// Example:
//
//	return &ValidationError{
//	    Category:  ValidationCategoryCriteria,
//	    Field:     "rating",
//	    Message:   "must be between 1 and 5",
//	    Expected:  "an integer star rating from 1 to 5",
//	    ValidKeys: []string{"1", "2", "3", "4", "5"},
//	}
type ValidationError struct {
	// Category names the validation source.
	// Values: "config", "criteria", "output"
	Category ValidationCategory

	// Field is the config key or flag name that failed.
	Field string

	// Message says what is wrong with it.
	Message string

	// Expected sketches a valid value.
	Expected string

	// ValidKeys enumerates the accepted values for enum-like fields.
	ValidKeys []string

	// DocSection is the configuration.md anchor covering this field.
	DocSection string

	// Hint suggests a concrete fix.
	Hint string
}

// Error implements the error interface.
//
// Formats the error message as "field: message" when a field is present,
// otherwise returns the message alone.
//
// Returns:
//   - string: Formatted error message
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// VerboseError renders the error with every optional detail that is set.
//
// Returns:
//   - string: The short message plus expected value, valid keys, doc link, and hint lines
func (e *ValidationError) VerboseError() string {
	var sb strings.Builder

	sb.WriteString(e.Error())

	if e.Expected != "" {
		sb.WriteString(fmt.Sprintf("\n    Expected: %s", e.Expected))
	}

	if len(e.ValidKeys) > 0 {
		sb.WriteString(fmt.Sprintf("\n    Valid keys: %s", strings.Join(e.ValidKeys, ", ")))
	}

	if e.DocSection != "" {
		sb.WriteString(fmt.Sprintf("\n    See: docs/configuration.md#%s", e.DocSection))
	}

	if e.Hint != "" {
		sb.WriteString(fmt.Sprintf("\n    Hint: %s", e.Hint))
	}

	return sb.String()
}

// IsValidationError unwraps err looking for a ValidationError.
//
// Parameters:
//   - err: The error to inspect
//
// Returns:
//   - *ValidationError: The unwrapped error, nil when the type does not match
//   - bool: true when a ValidationError was found
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NewConfigValidationError builds a ValidationError for a config file field.
//
// Parameters:
//   - field: The config key that failed
//   - message: What is wrong with it
//
// Returns:
//   - *ValidationError: New validation error with config category
//
// Example:
//
//	err := errors.NewConfigValidationError("timeout_seconds", "must be a positive integer")
func NewConfigValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryConfig,
		Field:    field,
		Message:  message,
	}
}

// NewCriteriaValidationError creates a ValidationError for filter flag issues.
//
// Parameters:
//   - field: The flag name that failed validation
//   - message: Description of the error
//   - expected: What a valid value should look like
//
// Returns:
//   - *ValidationError: New validation error with criteria category
//
// Example:
//
//	err := errors.NewCriteriaValidationError("rating", "must be between 1 and 5", "an integer from 1 to 5")
func NewCriteriaValidationError(field, message, expected string) *ValidationError {
	return &ValidationError{
		Category: ValidationCategoryCriteria,
		Field:    field,
		Message:  message,
		Expected: expected,
	}
}

// NewOutputValidationError creates a ValidationError for unknown output formats.
//
// Parameters:
//   - value: The format name that was rejected
//   - validKeys: The accepted format names
//
// Returns:
//   - *ValidationError: New validation error with output category
//
// Example:
//
//	err := errors.NewOutputValidationError("tsv", []string{"report", "table", "json", "csv", "xml"})
func NewOutputValidationError(value string, validKeys []string) *ValidationError {
	return &ValidationError{
		Category:  ValidationCategoryOutput,
		Field:     "output",
		Message:   fmt.Sprintf("unknown output format %q", value),
		Expected:  fmt.Sprintf("one of: %s", strings.Join(validKeys, ", ")),
		ValidKeys: validKeys,
	}
}
