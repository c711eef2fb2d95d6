package display

import (
	"strconv"
	"strings"

	"github.com/velosafe/helmetscan/pkg/constants"
)

// FormatScore returns a display-safe safety score.
//
// Scores print in the shortest decimal form, so 10.9 stays "10.9" and a
// whole-number score like 14 prints without a trailing ".0".
//
// Parameters:
//   - score: The score value, may be nil
//
// Returns:
//   - string: The rendered score or "N/A" when absent
//
// Example:
//
//	display.FormatScore(nil)    // Returns "N/A"
//	display.FormatScore(&score) // Returns "10.9"
func FormatScore(score *float64) string {
	if score == nil {
		return constants.PlaceholderNA
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}

// FormatCost returns a display-safe price.
//
// The dataset carries plain dollar amounts, so the value prints without a
// currency symbol, matching the upstream report.
//
// Parameters:
//   - cost: The cost value, may be nil
//
// Returns:
//   - string: The rendered cost or "N/A" when absent
//
// Example:
//
//	display.FormatCost(nil)   // Returns "N/A"
//	display.FormatCost(&cost) // Returns "99.95"
func FormatCost(cost *float64) string {
	if cost == nil {
		return constants.PlaceholderNA
	}
	return strconv.FormatFloat(*cost, 'f', -1, 64)
}

// FormatRating returns a display-safe star rating.
//
// Parameters:
//   - rating: The rating value, may be nil
//
// Returns:
//   - string: The rendered rating or "N/A" when absent
//
// Example:
//
//	display.FormatRating(nil)     // Returns "N/A"
//	display.FormatRating(&rating) // Returns "4"
func FormatRating(rating *int) string {
	if rating == nil {
		return constants.PlaceholderNA
	}
	return strconv.Itoa(*rating)
}

// SafeName returns a display-safe brand or model name.
//
// If the value is empty or whitespace-only, returns "Unknown" so record
// headings never collapse to a bare dash. Otherwise returns the trimmed value.
//
// Parameters:
//   - val: The name string, may be empty
//
// Returns:
//   - string: The value or "Unknown" if empty
//
// Example:
//
//	display.SafeName("")      // Returns "Unknown"
//	display.SafeName(" Giro") // Returns "Giro"
func SafeName(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return constants.PlaceholderUnknown
	}
	return val
}

// SafeText returns a display-safe text field.
//
// If the value is empty or whitespace-only, returns "N/A" for consistent
// display. Otherwise returns the trimmed value.
//
// Parameters:
//   - val: The text value, may be empty
//
// Returns:
//   - string: The value or "N/A" if empty
//
// Example:
//
//	display.SafeText("")     // Returns "N/A"
//	display.SafeText("Road") // Returns "Road"
func SafeText(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return constants.PlaceholderNA
	}
	return val
}

// FormatCertifications joins certification tokens for display.
//
// Parameters:
//   - certs: The certification list, may be empty
//
// Returns:
//   - string: The tokens joined with ", ", or "" when the list is empty
//
// Example:
//
//	display.FormatCertifications([]string{"CPSC", "MIPS"}) // Returns "CPSC, MIPS"
//	display.FormatCertifications(nil)                      // Returns ""
func FormatCertifications(certs []string) string {
	return strings.Join(certs, ", ")
}
