package errors

import (
	"errors"
	"fmt"
)

// Exit codes, stable for scripting.
// A wrapper script can branch on these to tell bad input from bad data.
const (
	// ExitSuccess indicates the query completed successfully.
	// This includes queries that matched zero helmets and user-initiated
	// interrupts, which are not failures.
	ExitSuccess = 0

	// ExitFailure indicates the dataset could not be produced.
	// This includes: network errors, HTTP error statuses, and payloads the
	// parser could not turn into helmet records.
	ExitFailure = 1

	// ExitValidationError indicates invalid user input.
	// The command could not proceed due to invalid filter criteria,
	// an unknown output format, or a broken configuration file.
	ExitValidationError = 2
)

// ExitError carries the process exit code a failure should produce.
//
// Commands return one of these instead of calling os.Exit deep in the
// call stack, which keeps exits testable.
//
// Fields:
//   - Code: Exit code (use constants ExitSuccess, ExitFailure, ExitValidationError)
//   - Message: Human-readable description of the failure
//   - Err: The error that triggered the exit, may be nil
//
// Example:
//
//	return &ExitError{
//	    Code:    ExitValidationError,
//	    Message: "failed to load config",
//	    Err:     err,
//	}
type ExitError struct {
	// Code is the process exit code.
	// Standard codes: 0=success, 1=data failure, 2=validation error.
	Code int

	// Message describes the failure for the user.
	Message string

	// Err is the error that triggered the exit.
	// May be nil when Message carries the whole story.
	Err error
}

// Error implements the error interface.
//
// Prefers the Message field, falls back to the wrapped error's text,
// and as a last resort names the exit code.
//
// Returns:
//   - string: The error message
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
//
// Returns:
//   - error: The wrapped error, or nil when there is none
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError wraps err with the exit code the process should use.
//
// Parameters:
//   - code: Exit code (use ExitSuccess, ExitFailure, ExitValidationError)
//   - err: The error being wrapped, may be nil
//
// Returns:
//   - *ExitError: New exit error
//
// Example:
//
//	err := errors.NewExitError(errors.ExitValidationError, configErr)
func NewExitError(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

// NewExitErrorf builds an ExitError from a format string.
//
// Parameters:
//   - code: Exit code
//   - format: Printf-style format string
//   - args: Values substituted into the format string
//
// Returns:
//   - *ExitError: New exit error carrying the formatted message
//
// Example:
//
//	err := errors.NewExitErrorf(errors.ExitFailure, "failed to process %s", url)
func NewExitErrorf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// GetExitCode maps any error onto a process exit code.
//
// nil and empty-dataset signals map to ExitSuccess. An ExitError keeps
// its own code. A ValidationError maps to ExitValidationError. Anything
// else maps to ExitFailure.
//
// Parameters:
//   - err: The error to map, may be nil
//
// Returns:
//   - int: Exit code
//
// Example:
//
//	code := errors.GetExitCode(err)
//	os.Exit(code)
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if _, ok := IsValidationError(err); ok {
		return ExitValidationError
	}

	if IsEmptyDataset(err) {
		return ExitSuccess
	}

	return ExitFailure
}

// IsExitError unwraps err looking for an ExitError.
//
// Parameters:
//   - err: The error to inspect
//
// Returns:
//   - *ExitError: The unwrapped error, nil when the type does not match
//   - bool: true when an ExitError was found
//
// Example:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
func IsExitError(err error) (*ExitError, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr, true
	}
	return nil, false
}

// FetchError indicates the dataset could not be downloaded.
//
// This covers transport failures (DNS, refused connections, timeouts) and
// HTTP responses with error statuses. Commands exit with ExitFailure when
// a FetchError reaches them.
//
// Fields:
//   - URL: The dataset URL that was requested
//   - Status: The HTTP status code, 0 when no response arrived
//   - Err: Underlying transport error, may be nil for status failures
//
// Example:
//
//	return &FetchError{
//	    URL:    url,
//	    Status: resp.StatusCode,
//	}
type FetchError struct {
	// URL is the dataset URL that was requested.
	URL string

	// Status is the HTTP status code of the response.
	// Zero means the request never produced a response.
	Status int

	// Err is the underlying transport error.
	// May be nil when the failure is an HTTP error status.
	Err error
}

// Error implements the error interface.
//
// Formats the error message based on available fields. When a status code
// exists, formats as "failed to fetch dataset from URL: HTTP status". When
// only a transport error exists, includes its message instead.
//
// Returns:
//   - string: Formatted error message
func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("failed to fetch dataset from %s: HTTP %d", e.URL, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch dataset from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch dataset from %s", e.URL)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying transport error, or nil if none exists
func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a FetchError with the given details.
//
// Parameters:
//   - url: The dataset URL that was requested
//   - status: HTTP status code, 0 when no response arrived
//   - err: Underlying transport error, may be nil
//
// Returns:
//   - *FetchError: New fetch error
//
// Example:
//
//	err := errors.NewFetchError(url, 0, dialErr)
func NewFetchError(url string, status int, err error) *FetchError {
	return &FetchError{URL: url, Status: status, Err: err}
}

// IsFetchError unwraps err looking for a FetchError.
//
// Parameters:
//   - err: The error to inspect
//
// Returns:
//   - *FetchError: The unwrapped error, nil when the type does not match
//   - bool: true when a FetchError was found
//
// Example:
//
//	if fe, ok := errors.IsFetchError(err); ok {
//	    fmt.Printf("HTTP %d from %s\n", fe.Status, fe.URL)
//	}
func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ParseError indicates the downloaded payload could not become records.
//
// This covers a missing bicycleDataRaw declaration, text that is not valid
// JSON after normalization, and JSON whose shape is not an array of objects.
// Commands exit with ExitFailure when a ParseError reaches them.
//
// Fields:
//   - Reason: What step of parsing failed
//   - Err: Underlying decoding error, may be nil
//
// Example:
//
//	return &ParseError{
//	    Reason: "invalid JSON after normalization",
//	    Err:    err,
//	}
type ParseError struct {
	// Reason explains which parsing step failed.
	Reason string

	// Err is the underlying decoding error.
	// May be nil when the failure is structural rather than syntactic.
	Err error
}

// Error implements the error interface.
//
// Formats the error message as "failed to parse dataset: reason" with the
// underlying error appended when present.
//
// Returns:
//   - string: Formatted error message
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse dataset: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to parse dataset: %s", e.Reason)
}

// Unwrap returns the underlying error for errors.Is/As support.
//
// Returns:
//   - error: The underlying decoding error, or nil if none exists
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a ParseError with the given details.
//
// Parameters:
//   - reason: What step of parsing failed
//   - err: Underlying decoding error, may be nil
//
// Returns:
//   - *ParseError: New parse error
//
// Example:
//
//	err := errors.NewParseError("could not locate bicycleDataRaw", nil)
func NewParseError(reason string, err error) *ParseError {
	return &ParseError{Reason: reason, Err: err}
}

// IsParseError unwraps err looking for a ParseError.
//
// Parameters:
//   - err: The error to inspect
//
// Returns:
//   - *ParseError: The unwrapped error, nil when the type does not match
//   - bool: true when a ParseError was found
//
// Example:
//
//	if pe, ok := errors.IsParseError(err); ok {
//	    fmt.Printf("parse failed: %s\n", pe.Reason)
//	}
func IsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ErrEmptyDataset signals that the dataset parsed successfully but holds
// zero records.
//
// This is not a failure. Callers report it as a warning and continue with
// an empty record set, so the run still exits with ExitSuccess.
var ErrEmptyDataset = errors.New("dataset contains no records")

// IsEmptyDataset checks whether err signals an empty dataset.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true if err is or wraps ErrEmptyDataset
//
// Example:
//
//	if errors.IsEmptyDataset(err) {
//	    warnings.Warn("dataset contains no records")
//	}
func IsEmptyDataset(err error) bool {
	return errors.Is(err, ErrEmptyDataset)
}
