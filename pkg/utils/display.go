package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the terminal display width of a string.
//
// Table alignment breaks when brand or model names carry characters
// wider than one cell, so widths are measured with Unicode-aware rules:
// CJK characters and emoji count as two cells, combining marks as zero.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to the given display width.
//
// It performs the following operations:
//   - Step 1: Returns the string unchanged when width is <= 0
//   - Step 2: Measures the current display width
//   - Step 3: Returns the string unchanged when it already fills the width
//   - Step 4: Appends spaces until the target width is reached
//
// Values wider than the target are never truncated; the column simply
// overflows, which keeps data visible at the cost of alignment.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string, or the original when no padding applies
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Max returns the largest of the given integers.
//
// An empty argument list yields 0.
//
// Parameters:
//   - values: The integers to compare
//
// Returns:
//   - int: The largest value, or 0 when none are given
func Max(values ...int) int {
	m := 0
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}
