// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for shared values.
package constants

// Placeholder values for display when data is not available.
const (
	// PlaceholderNA is used when a record field has no value.
	PlaceholderNA = "N/A"

	// PlaceholderUnknown is used when a record is missing its brand or model.
	PlaceholderUnknown = "Unknown"
)

// Report layout constants.
const (
	// RuleWidth is the width of the horizontal rules framing report sections.
	RuleWidth = 60
)

// Star rating bounds accepted by the rating filter.
const (
	// RatingMin is the lowest valid star rating.
	RatingMin = 1

	// RatingMax is the highest valid star rating.
	RatingMax = 5
)

// Icon constants for status display.
// These provide visual indicators for validation results in CLI output.
const (
	// IconCheckmarkBox indicates successful validation (checkmark in box).
	IconCheckmarkBox = "✅"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconLightbulb indicates a hint or suggestion.
	IconLightbulb = "💡"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)
