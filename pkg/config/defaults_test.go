package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestLoadDefaultConfig tests the embedded default configuration.
//
// It verifies that:
//   - The embedded YAML parses into a usable config
//   - Every field carries a sensible default
func TestLoadDefaultConfig(t *testing.T) {
	cfg := loadDefaultConfig()

	assert.Equal(t, "https://www.helmet.beam.vt.edu/js/bicycleData.js", cfg.DatasetURL)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.Positive(t, cfg.MaxResponseBytes)
	assert.Equal(t, "report", cfg.Output)
}

// TestGetDefaultConfig tests the raw default YAML accessor.
//
// It verifies that:
//   - The returned YAML is non-empty and parseable
//   - It mentions every known field
func TestGetDefaultConfig(t *testing.T) {
	raw := GetDefaultConfig()
	require.NotEmpty(t, raw)

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))

	for _, field := range knownFields {
		assert.Contains(t, raw, field, "default.yml should set %s", field)
	}
}

// TestGetTemplateConfig tests the starter template.
//
// It verifies that:
//   - The template is valid YAML (comments only settings)
//   - It documents every known field
//   - Uncommented it would not override anything
func TestGetTemplateConfig(t *testing.T) {
	raw := GetTemplateConfig()
	require.NotEmpty(t, raw)

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(raw), &cfg))
	assert.Equal(t, Config{}, cfg, "template settings should all be commented out")

	for _, field := range knownFields {
		assert.True(t, strings.Contains(raw, field), "template.yml should document %s", field)
	}
}
