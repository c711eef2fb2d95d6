package errors

import (
	"fmt"
	"io"
	"strings"
)

// PrintErrorWithHints prints errors with actionable hints to the writer.
//
// Every command path reports failures through this one function, so
// error text and hint formatting stay consistent across the CLI.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - errs: Slice of errors to display
//   - verbose: If true, includes additional details for validation errors
//
// Output format:
//
//	Error: <error message>
//	  💡 <hint>: <resolution, when a pattern matches>
//
// Example:
//
//	errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose)
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		printSingleError(w, err, verbose)
	}
}

// printSingleError prints a single error with appropriate formatting.
//
// This function determines the error type and dispatches to the appropriate
// formatter. It handles ValidationError, FetchError, ParseError, and
// standard errors differently.
//
// Parameters:
//   - w: Writer to output to
//   - err: The error to print
//   - verbose: If true, includes detailed information
func printSingleError(w io.Writer, err error, verbose bool) {
	if err == nil {
		return
	}

	// Typed errors get their dedicated renderings
	if ve, ok := IsValidationError(err); ok {
		printValidationError(w, ve, verbose)
		return
	}

	if fe, ok := IsFetchError(err); ok {
		printFetchError(w, fe, verbose)
		return
	}

	if pe, ok := IsParseError(err); ok {
		printParseError(w, pe, verbose)
		return
	}

	// Anything else prints as-is, plus a hint when one matches
	enhanced := EnhanceErrorWithHint(err)
	_, _ = fmt.Fprintf(w, "Error: %s\n", enhanced)
}

// printValidationError prints a validation error at the requested
// detail level.
//
// Verbose mode uses VerboseError, which appends the expected value,
// valid keys, and documentation pointers; otherwise only the field and
// message print.
//
// Parameters:
//   - w: Writer to output to
//   - err: The validation error to print
//   - verbose: If true, includes expected values and documentation links
func printValidationError(w io.Writer, err *ValidationError, verbose bool) {
	if verbose {
		_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.VerboseError())
	} else {
		_, _ = fmt.Fprintf(w, "Validation Error: %s\n", err.Error())
	}
}

// printFetchError prints a dataset download failure.
//
// In verbose mode, appends the underlying transport error when present.
// Hints are looked up for both modes so network failures stay actionable.
//
// Parameters:
//   - w: Writer to output to
//   - err: The fetch error to print
//   - verbose: If true, includes the underlying transport error
func printFetchError(w io.Writer, err *FetchError, verbose bool) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	if verbose && err.Err != nil && err.Status != 0 {
		_, _ = fmt.Fprintf(w, "  Cause: %v\n", err.Err)
	}
}

// printParseError prints a dataset parse failure.
//
// In verbose mode, appends the underlying decoding error when present.
//
// Parameters:
//   - w: Writer to output to
//   - err: The parse error to print
//   - verbose: If true, includes the underlying decoding error
func printParseError(w io.Writer, err *ParseError, verbose bool) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	if verbose && err.Err != nil {
		_, _ = fmt.Fprintf(w, "  Cause: %v\n", err.Err)
	}
}

// FormatValidationError renders a single ValidationError with its
// schema hints.
//
// Parameters:
//   - err: The validation error to format, may be nil
//
// Returns:
//   - string: The verbose rendering, or "" for nil
//
// Example output:
//
//	rating: must be between 1 and 5
//	  Expected: a star rating from 1 to 5
func FormatValidationError(err *ValidationError) string {
	if err == nil {
		return ""
	}
	return err.VerboseError()
}

// FormatErrorsWithHints renders multiple errors, each with its hint,
// into one string.
//
// Parameters:
//   - errs: The errors to format
//
// Returns:
//   - string: One line per error prefixed with the error icon, "" when empty
//
// Example output:
//
//	❌ failed to fetch dataset from https://example.com: HTTP 404
//	  💡 Dataset not found at the configured URL: Verify dataset_url ...
func FormatErrorsWithHints(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString("❌ " + EnhanceErrorWithHint(err) + "\n")
	}
	return sb.String()
}

// FormatValidationErrors renders a list of validation errors under a
// single "Validation failed:" heading.
//
// Parameters:
//   - errs: The validation errors to render
//   - verbose: If true, each entry uses its verbose rendering
//
// Returns:
//   - string: The heading plus one indented line per error, "" when empty
func FormatValidationErrors(errs []*ValidationError, verbose bool) string {
	if len(errs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")

	for _, err := range errs {
		msg := err.Error()
		if verbose {
			msg = err.VerboseError()
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", msg))
	}

	return sb.String()
}

// ValidationResult accumulates errors and warnings from a validation pass.
//
// Config file validation and criteria validation both report through this
// type so commands can render errors and warnings uniformly.
type ValidationResult struct {
	// Errors holds every validation error found during the pass.
	Errors []*ValidationError

	// Warnings holds non-fatal messages that should still reach the user.
	Warnings []string
}

// HasErrors reports whether the result carries at least one error.
//
// Returns:
//   - bool: true when the Errors slice is non-empty
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings reports whether the result carries at least one warning.
//
// Returns:
//   - bool: true when the Warnings slice is non-empty
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AddError appends a validation error to the result.
//
// Parameters:
//   - err: The validation error to record
func (r *ValidationResult) AddError(err *ValidationError) {
	r.Errors = append(r.Errors, err)
}

// AddWarning appends a warning message to the result.
//
// Parameters:
//   - msg: The warning text to record
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// ErrorMessage renders all recorded errors in their short form.
//
// Returns:
//   - string: "Validation failed:" plus one line per error, "" when clean
func (r *ValidationResult) ErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// VerboseErrorMessage renders all recorded errors with expected values
// and documentation pointers included.
//
// Returns:
//   - string: The verbose rendering, "" when clean
func (r *ValidationResult) VerboseErrorMessage() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Validation failed:\n")
	for _, err := range r.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.VerboseError()))
	}
	return sb.String()
}

// PrintTo writes warnings first, then errors, to the given writer.
//
// Parameters:
//   - w: Destination writer
//   - verbose: If true, errors render with full detail
func (r *ValidationResult) PrintTo(w io.Writer, verbose bool) {
	for _, warning := range r.Warnings {
		_, _ = fmt.Fprintf(w, "Warning: %s\n", warning)
	}

	if len(r.Errors) > 0 {
		if verbose {
			_, _ = fmt.Fprint(w, r.VerboseErrorMessage())
		} else {
			_, _ = fmt.Fprint(w, r.ErrorMessage())
		}
	}
}

// NewValidationResult returns an empty result ready to collect into.
//
// Both slices are initialized non-nil so callers can append and range
// without nil checks.
//
// Returns:
//   - *ValidationResult: A result with zero errors and zero warnings
//
// Example:
//
//	result := errors.NewValidationResult()
//	result.AddError(validationErr)
//	if result.HasErrors() {
//	    return result
//	}
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		Errors:   make([]*ValidationError, 0),
		Warnings: make([]string, 0),
	}
}
