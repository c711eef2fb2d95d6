// Package constants provides centralized string constants used throughout the application.
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPlaceholderConstants tests the behavior of placeholder constants.
//
// It verifies:
//   - Placeholder constants have the expected string values
//   - Prevents accidental changes to report output
func TestPlaceholderConstants(t *testing.T) {
	assert.Equal(t, "N/A", PlaceholderNA, "PlaceholderNA should be 'N/A'")
	assert.Equal(t, "Unknown", PlaceholderUnknown, "PlaceholderUnknown should be 'Unknown'")
}

// TestLayoutConstants tests the behavior of report layout constants.
//
// It verifies:
//   - RuleWidth matches the classic 60-column report frame
func TestLayoutConstants(t *testing.T) {
	assert.Equal(t, 60, RuleWidth, "RuleWidth should be 60")
}

// TestRatingBounds tests the behavior of the rating bound constants.
//
// It verifies:
//   - RatingMin and RatingMax span the 1-5 star scale
//   - The bounds are ordered
func TestRatingBounds(t *testing.T) {
	assert.Equal(t, 1, RatingMin, "RatingMin should be 1")
	assert.Equal(t, 5, RatingMax, "RatingMax should be 5")
	assert.Less(t, RatingMin, RatingMax, "RatingMin should be below RatingMax")
}

// TestIconConstants tests the behavior of icon constants.
//
// It verifies:
//   - All icon constants are non-empty strings
//   - Icons are properly defined for use in CLI output
func TestIconConstants(t *testing.T) {
	icons := []struct {
		name     string
		constant string
	}{
		{"IconCheckmarkBox", IconCheckmarkBox},
		{"IconError", IconError},
		{"IconLightbulb", IconLightbulb},
		{"IconWarn", IconWarn},
	}

	for _, icon := range icons {
		t.Run(icon.name, func(t *testing.T) {
			assert.NotEmpty(t, icon.constant, "icon %s should not be empty", icon.name)
		})
	}
}
