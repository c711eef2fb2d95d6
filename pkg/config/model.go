package config

import (
	"time"
)

// ConfigFileName is the config file helmetscan looks for in the working directory.
const ConfigFileName = ".helmetscan.yml"

// DefaultMaxConfigFileSize is the maximum config file size accepted (1MB).
// Larger files are rejected before parsing to prevent memory exhaustion.
const DefaultMaxConfigFileSize = 1024 * 1024

// Config holds the runtime configuration for helmetscan.
//
// All fields are optional in YAML; missing values fall back to the embedded
// defaults. Environment variables with the HELMETSCAN_ prefix override file
// values after loading.
//
// Fields:
//   - DatasetURL: URL of the bicycle helmet dataset script
//   - TimeoutSeconds: HTTP timeout for the dataset download
//   - UserAgent: User-Agent header sent with the dataset request
//   - MaxResponseBytes: Upper bound on the response body size
//   - Output: Default output format when --output is not passed
//   - WorkingDir: Directory used to locate the config file, never serialized
type Config struct {
	// DatasetURL is the URL of the bicycle helmet dataset script.
	DatasetURL string `yaml:"dataset_url,omitempty"`

	// TimeoutSeconds is the HTTP timeout for the dataset download.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// UserAgent is the User-Agent header sent with the dataset request.
	UserAgent string `yaml:"user_agent,omitempty"`

	// MaxResponseBytes caps the response body size in bytes.
	MaxResponseBytes int64 `yaml:"max_response_bytes,omitempty"`

	// Output is the default output format when --output is not passed.
	// One of: report, table, json, csv, xml.
	Output string `yaml:"output,omitempty"`

	// WorkingDir is the directory the configuration was resolved against.
	WorkingDir string `yaml:"-"`
}

// Timeout returns the download timeout as a duration.
//
// Returns:
//   - time.Duration: TimeoutSeconds expressed as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// knownFields lists the accepted top-level YAML keys.
//
// ValidateConfigFile reports any other key as an unknown field so typos
// like "data_url" fail fast instead of being silently ignored.
var knownFields = []string{
	"dataset_url",
	"timeout_seconds",
	"user_agent",
	"max_response_bytes",
	"output",
}
