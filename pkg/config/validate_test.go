package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidateConfigFileAcceptsValid tests validation of a correct file.
//
// It verifies that:
//   - All known fields with proper types pass
//   - No warnings are produced for a complete file
func TestValidateConfigFileAcceptsValid(t *testing.T) {
	data := []byte(
		"dataset_url: https://mirror.example.com/data.js\n" +
			"timeout_seconds: 15\n" +
			"user_agent: test-agent/0.1\n" +
			"max_response_bytes: 4096\n" +
			"output: csv\n")

	result := ValidateConfigFile(data)

	assert.False(t, result.HasErrors(), "expected no errors: %s", result.ErrorMessage())
	assert.False(t, result.HasWarnings())
}

// TestValidateConfigFileUnknownField tests unknown field detection.
//
// It verifies that:
//   - Unknown keys are reported as errors
//   - The error lists the valid keys
func TestValidateConfigFileUnknownField(t *testing.T) {
	data := []byte("data_url: https://example.com/data.js\n")

	result := ValidateConfigFile(data)

	require.True(t, result.HasErrors())
	assert.Equal(t, "data_url", result.Errors[0].Field)
	assert.Contains(t, result.Errors[0].Message, "unknown field")
	assert.Contains(t, result.Errors[0].ValidKeys, "dataset_url")
}

// TestValidateConfigFileTypeErrors tests wrong YAML types.
//
// It verifies that:
//   - String values in numeric fields are rejected
//   - Mapping values in string fields are rejected
func TestValidateConfigFileTypeErrors(t *testing.T) {
	t.Run("string timeout", func(t *testing.T) {
		result := ValidateConfigFile([]byte("timeout_seconds: soon\n"))
		require.True(t, result.HasErrors())
		assert.Equal(t, "timeout_seconds", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].Message, "wrong type")
	})

	t.Run("mapping url", func(t *testing.T) {
		result := ValidateConfigFile([]byte("dataset_url:\n  nested: true\n"))
		require.True(t, result.HasErrors())
		assert.Equal(t, "dataset_url", result.Errors[0].Field)
	})
}

// TestValidateConfigFileValueErrors tests value domain checks.
//
// It verifies that:
//   - Non-positive numbers are rejected
//   - Non-http(s) URLs are rejected
//   - Unknown output formats are rejected with the valid list
func TestValidateConfigFileValueErrors(t *testing.T) {
	t.Run("zero timeout", func(t *testing.T) {
		result := ValidateConfigFile([]byte("timeout_seconds: 0\n"))
		require.True(t, result.HasErrors())
		assert.Contains(t, result.Errors[0].Message, "positive")
	})

	t.Run("negative response cap", func(t *testing.T) {
		result := ValidateConfigFile([]byte("max_response_bytes: -1\n"))
		require.True(t, result.HasErrors())
		assert.Equal(t, "max_response_bytes", result.Errors[0].Field)
	})

	t.Run("ftp url", func(t *testing.T) {
		result := ValidateConfigFile([]byte("dataset_url: ftp://example.com/data.js\n"))
		require.True(t, result.HasErrors())
		assert.Equal(t, "dataset_url", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].Expected, "http(s)")
	})

	t.Run("unknown output format", func(t *testing.T) {
		result := ValidateConfigFile([]byte("output: tsv\n"))
		require.True(t, result.HasErrors())
		assert.Equal(t, "output", result.Errors[0].Field)
		assert.Contains(t, result.Errors[0].ValidKeys, "report")
		assert.Contains(t, result.Errors[0].ValidKeys, "json")
	})
}

// TestValidateConfigFileEmpty tests empty file handling.
//
// It verifies that:
//   - Empty files produce a warning, not an error
//   - Non-mapping documents are rejected
func TestValidateConfigFileEmpty(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		result := ValidateConfigFile([]byte(""))
		assert.False(t, result.HasErrors())
		assert.True(t, result.HasWarnings())
	})

	t.Run("sequence document", func(t *testing.T) {
		result := ValidateConfigFile([]byte("- a\n- b\n"))
		require.True(t, result.HasErrors())
		assert.Contains(t, result.Errors[0].Message, "mapping")
	})

	t.Run("broken yaml", func(t *testing.T) {
		result := ValidateConfigFile([]byte("output: [oops\n"))
		require.True(t, result.HasErrors())
		assert.Contains(t, result.Errors[0].Message, "invalid YAML")
	})
}

// TestValidateConfig tests effective configuration checks.
//
// It verifies that:
//   - The default configuration passes
//   - Empty URLs and bad values are caught regardless of source
func TestValidateConfig(t *testing.T) {
	t.Run("defaults pass", func(t *testing.T) {
		result := ValidateConfig(loadDefaultConfig())
		assert.False(t, result.HasErrors(), "default config should validate: %s", result.ErrorMessage())
	})

	t.Run("empty url", func(t *testing.T) {
		cfg := loadDefaultConfig()
		cfg.DatasetURL = ""
		result := ValidateConfig(cfg)
		require.True(t, result.HasErrors())
		assert.Equal(t, "dataset_url", result.Errors[0].Field)
	})

	t.Run("zero response cap", func(t *testing.T) {
		cfg := loadDefaultConfig()
		cfg.MaxResponseBytes = 0
		result := ValidateConfig(cfg)
		require.True(t, result.HasErrors())
		assert.Equal(t, "max_response_bytes", result.Errors[0].Field)
	})

	t.Run("bad output format", func(t *testing.T) {
		cfg := loadDefaultConfig()
		cfg.Output = "tsv"
		result := ValidateConfig(cfg)
		require.True(t, result.HasErrors())
		assert.Equal(t, "output", result.Errors[0].Field)
	})
}
