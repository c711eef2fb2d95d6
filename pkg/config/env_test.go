package config

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velosafe/helmetscan/pkg/warnings"
)

// TestApplyEnvOverrides tests environment variable overlays.
//
// It verifies that:
//   - Each recognized variable overrides its config field
//   - The applied variable names are reported
//   - Unset variables leave the config untouched
func TestApplyEnvOverrides(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv(EnvDatasetURL, "https://mirror.example.com/data.js")
		t.Setenv(EnvTimeoutSeconds, "12")
		t.Setenv(EnvUserAgent, "env-agent/2.0")
		t.Setenv(EnvMaxResponseBytes, "2048")
		t.Setenv(EnvOutput, "xml")

		cfg := loadDefaultConfig()
		applied := applyEnvOverrides(cfg, "")

		assert.Equal(t, "https://mirror.example.com/data.js", cfg.DatasetURL)
		assert.Equal(t, 12, cfg.TimeoutSeconds)
		assert.Equal(t, "env-agent/2.0", cfg.UserAgent)
		assert.Equal(t, int64(2048), cfg.MaxResponseBytes)
		assert.Equal(t, "xml", cfg.Output)

		assert.ElementsMatch(t, []string{
			EnvDatasetURL, EnvTimeoutSeconds, EnvUserAgent, EnvMaxResponseBytes, EnvOutput,
		}, applied)
	})

	t.Run("nothing set", func(t *testing.T) {
		cfg := loadDefaultConfig()
		before := *cfg

		applied := applyEnvOverrides(cfg, "")

		assert.Empty(t, applied)
		assert.Equal(t, before, *cfg)
	})
}

// TestGetEnvIntRejectsGarbage tests numeric parsing of env values.
//
// It verifies that:
//   - Unparseable values do not apply
//   - A warning is emitted naming the variable
func TestGetEnvIntRejectsGarbage(t *testing.T) {
	t.Setenv(EnvTimeoutSeconds, "a while")

	var buf bytes.Buffer
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	_, ok := getEnvInt(EnvTimeoutSeconds)

	assert.False(t, ok)
	assert.Contains(t, buf.String(), EnvTimeoutSeconds)
	assert.Contains(t, buf.String(), "not a number")
}

// TestGetEnvInt64 tests 64-bit parsing of env values.
//
// It verifies that:
//   - Valid values parse
//   - Empty variables do not apply
func TestGetEnvInt64(t *testing.T) {
	t.Setenv(EnvMaxResponseBytes, "10485760")

	v, ok := getEnvInt64(EnvMaxResponseBytes)
	assert.True(t, ok)
	assert.Equal(t, int64(10485760), v)

	t.Setenv(EnvMaxResponseBytes, "")
	_, ok = getEnvInt64(EnvMaxResponseBytes)
	assert.False(t, ok)
}
