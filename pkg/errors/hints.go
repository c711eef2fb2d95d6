package errors

import (
	"strings"
)

// ErrorHint pairs an error-message pattern with a suggested fix.
//
// Fields:
//   - Pattern: Case-insensitive substring to look for in error text
//   - Hint: Short name for what went wrong
//   - Resolution: What the user can do about it
type ErrorHint struct {
	// Pattern is matched case-insensitively against error text.
	Pattern string

	// Hint names the problem in a few words.
	Hint string

	// Resolution tells the user what to try next.
	Resolution string
}

// CommonErrorHints lists the failure patterns this tool knows how to
// explain. EnhanceErrorWithHint consults it in order, first match wins.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "failed to fetch dataset",
		Hint:       "Dataset download failed",
		Resolution: "Check internet connectivity, or point HELMETSCAN_DATASET_URL at a mirror",
	},
	{
		Pattern:    "could not locate bicycle data",
		Hint:       "Dataset page layout changed",
		Resolution: "Verify the configured URL still serves the bicycleData.js script",
	},
	{
		Pattern:    "failed to parse dataset",
		Hint:       "Dataset format changed",
		Resolution: "Run with --verbose to inspect the response preview",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Run 'helmetscan config --validate' to check it, or 'helmetscan config --init' to create one",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "permission denied",
		Hint:       "Insufficient permissions",
		Resolution: "Check file permissions or run with appropriate privileges",
	},
	{
		Pattern:    "deadline exceeded",
		Hint:       "Request took too long",
		Resolution: "Increase timeout_seconds in .helmetscan.yml or HELMETSCAN_TIMEOUT_SECONDS",
	},
	{
		Pattern:    "timeout",
		Hint:       "Request took too long",
		Resolution: "Increase timeout_seconds in .helmetscan.yml or HELMETSCAN_TIMEOUT_SECONDS",
	},
	{
		Pattern:    "no such host",
		Hint:       "DNS resolution failed",
		Resolution: "Check network connectivity and DNS configuration",
	},
	{
		Pattern:    "connection refused",
		Hint:       "Connection refused by server",
		Resolution: "Check if the dataset host is accessible and not blocked",
	},
	{
		Pattern:    "certificate",
		Hint:       "TLS handshake failed",
		Resolution: "Check system certificates and proxy settings",
	},
	{
		Pattern:    "exceeds the response limit",
		Hint:       "Response larger than the configured cap",
		Resolution: "Raise max_response_bytes in .helmetscan.yml if the dataset legitimately grew",
	},
	{
		Pattern:    "HTTP 403",
		Hint:       "Access forbidden",
		Resolution: "The dataset host rejected the request; try adjusting user_agent in config",
	},
	{
		Pattern:    "HTTP 404",
		Hint:       "Dataset not found at the configured URL",
		Resolution: "Verify dataset_url points at the bicycleData.js script",
	},
	{
		Pattern:    "unknown output format",
		Hint:       "Unsupported --output value",
		Resolution: "Use one of: report, table, json, csv, xml",
	},
}

// GetHint looks up the hint matching the given error, without the
// original error text.
//
// Parameters:
//   - err: The error to look up, may be nil
//
// Returns:
//   - string: "<hint>: <resolution>" for the first matching pattern, "" otherwise
//
// Example:
//
//	hint := errors.GetHint(err)
//	if hint != "" {
//	    fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
//	}
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// RegisterHint appends a pattern to the hint registry at runtime.
//
// Later registrations lose to earlier ones when both patterns match,
// since lookup stops at the first hit.
//
// Parameters:
//   - pattern: Substring to match in error messages
//   - hint: Short name for the problem
//   - resolution: Suggested fix
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint appends a matching hint to the error text.
//
// Parameters:
//   - err: The error to render, may be nil
//
// Returns:
//   - string: The error text, with an indented hint line when a pattern matches
//
// Example:
//
//	enhanced := errors.EnhanceErrorWithHint(err)
//	fmt.Fprintf(os.Stderr, "Error: %s\n", enhanced)
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	for _, hint := range CommonErrorHints {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(hint.Pattern)) {
			return errStr + "\n  \U0001F4A1 " + hint.Hint + ": " + hint.Resolution
		}
	}

	return errStr
}
