package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/velosafe/helmetscan/pkg/warnings"
)

// Environment variable names recognized as config overrides.
const (
	// EnvDatasetURL overrides dataset_url.
	EnvDatasetURL = "HELMETSCAN_DATASET_URL"

	// EnvTimeoutSeconds overrides timeout_seconds.
	EnvTimeoutSeconds = "HELMETSCAN_TIMEOUT_SECONDS"

	// EnvUserAgent overrides user_agent.
	EnvUserAgent = "HELMETSCAN_USER_AGENT"

	// EnvMaxResponseBytes overrides max_response_bytes.
	EnvMaxResponseBytes = "HELMETSCAN_MAX_RESPONSE_BYTES"

	// EnvOutput overrides output.
	EnvOutput = "HELMETSCAN_OUTPUT"
)

// applyEnvOverrides overlays HELMETSCAN_* environment variables onto cfg.
//
// It performs the following operations:
//   - Loads a .env file from the working directory when one exists
//   - Applies each recognized variable over the corresponding config field
//   - Warns about values that fail to parse and leaves the field unchanged
//
// Parameters:
//   - cfg: The configuration to overlay, modified in place
//   - workDir: Directory searched for an optional .env file
//
// Returns:
//   - []string: Names of the environment variables that applied
func applyEnvOverrides(cfg *Config, workDir string) []string {
	if workDir != "" {
		// Missing .env files are fine; only explicit values override.
		_ = godotenv.Load(filepath.Join(workDir, ".env"))
	}

	var applied []string

	if v, ok := getEnv(EnvDatasetURL); ok {
		cfg.DatasetURL = v
		applied = append(applied, EnvDatasetURL)
	}

	if v, ok := getEnvInt(EnvTimeoutSeconds); ok {
		cfg.TimeoutSeconds = v
		applied = append(applied, EnvTimeoutSeconds)
	}

	if v, ok := getEnv(EnvUserAgent); ok {
		cfg.UserAgent = v
		applied = append(applied, EnvUserAgent)
	}

	if v, ok := getEnvInt64(EnvMaxResponseBytes); ok {
		cfg.MaxResponseBytes = v
		applied = append(applied, EnvMaxResponseBytes)
	}

	if v, ok := getEnv(EnvOutput); ok {
		cfg.Output = v
		applied = append(applied, EnvOutput)
	}

	return applied
}

// getEnv reads a non-empty string environment variable.
//
// Parameters:
//   - key: The environment variable name
//
// Returns:
//   - string: The value when set and non-empty
//   - bool: true if the variable applied
func getEnv(key string) (string, bool) {
	v := os.Getenv(key)
	if v == "" {
		return "", false
	}
	return v, true
}

// getEnvInt reads an integer environment variable.
//
// Values that fail to parse produce a warning and do not apply, keeping
// the configured value in effect.
//
// Parameters:
//   - key: The environment variable name
//
// Returns:
//   - int: The parsed value when valid
//   - bool: true if the variable applied
func getEnvInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		warnings.Warnf("invalid value for %s: %q is not a number, ignoring\n", key, raw)
		return 0, false
	}
	return v, true
}

// getEnvInt64 reads a 64-bit integer environment variable.
//
// Values that fail to parse produce a warning and do not apply, keeping
// the configured value in effect.
//
// Parameters:
//   - key: The environment variable name
//
// Returns:
//   - int64: The parsed value when valid
//   - bool: true if the variable applied
func getEnvInt64(key string) (int64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		warnings.Warnf("invalid value for %s: %q is not a number, ignoring\n", key, raw)
		return 0, false
	}
	return v, true
}
