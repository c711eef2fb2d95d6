package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"brand name", "Giro", 4},
		{"model with space", "Register MIPS", 13},
		{"wide characters", "自転車", 6},
		{"mixed ascii and wide", "abc自転", 7},
		{"warning icon", "⚠", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DisplayWidth(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "Road", 0, "Road"},
		{"negative width", "Road", -1, "Road"},
		{"exact width", "Road", 4, "Road"},
		{"wider than column", "Mountain", 4, "Mountain"},
		{"needs padding", "Road", 8, "Road    "},
		{"empty value", "", 4, "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ToWidth(tt.val, tt.width)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		expected int
	}{
		{"empty", []int{}, 0},
		{"single value", []int{7}, 7},
		{"middle is max", []int{2, 9, 4}, 9},
		{"all negative", []int{-2, -9, -4}, -2},
		{"mixed signs", []int{-1, 0, 6, 3}, 6},
		{"first is max", []int{14, 5, 3}, 14},
		{"last is max", []int{1, 2, 12}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Max(tt.values...)
			assert.Equal(t, tt.expected, result)
		})
	}
}
