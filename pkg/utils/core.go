package utils

import "strings"

// TrimAndSplit splits on a separator and keeps only the trimmed,
// non-empty parts.
//
// It performs the following operations:
//   - Step 1: Short-circuits to an empty slice for empty input
//   - Step 2: Splits on the separator
//   - Step 3: Trims whitespace around each part
//   - Step 4: Drops parts that trimmed to nothing
//
// Parameters:
//   - s: The string to split
//   - sep: The separator to split on
//
// Returns:
//   - []string: The trimmed non-empty parts, never nil
func TrimAndSplit(s string, sep string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Contains reports whether a slice holds an exact string.
//
// Matching is case-sensitive.
//
// Parameters:
//   - slice: The strings to search
//   - item: The string to look for
//
// Returns:
//   - bool: true when item appears in slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// ContainsIgnoreCase reports whether a slice holds a string, ignoring case.
//
// Comparison uses strings.EqualFold, so "MIPS" matches "mips".
//
// Parameters:
//   - slice: The strings to search
//   - item: The string to look for, any casing
//
// Returns:
//   - bool: true when item appears in slice under case folding
func ContainsIgnoreCase(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

// SubstringIgnoreCase checks if a string contains a substring (case-insensitive).
//
// Both values are lowercased before the containment check, so "Spec" is found
// inside "Specialized" and "ROAD" inside "road".
//
// Parameters:
//   - s: The string to search within
//   - substr: The substring to search for
//
// Returns:
//   - bool: true if substr occurs anywhere in s ignoring case, false otherwise
func SubstringIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
