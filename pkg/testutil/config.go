package testutil

import (
	"github.com/velosafe/helmetscan/pkg/config"
)

// ConfigBuilder provides a fluent API for building test configurations.
//
// Use this builder to construct Config objects for testing purposes
// without needing to set all fields manually.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfig creates a new ConfigBuilder with test-friendly defaults.
//
// The defaults keep tests hermetic: a short timeout, a small response
// cap, and the default report output. The dataset URL is left empty so
// tests must point it at their own server.
//
// Returns:
//   - *ConfigBuilder: New builder instance ready for method chaining
func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: config.Config{
			TimeoutSeconds:   5,
			UserAgent:        "helmetscan-test/1.0",
			MaxResponseBytes: 1 << 20,
			Output:           "report",
			WorkingDir:       ".",
		},
	}
}

// WithDatasetURL sets the dataset endpoint.
//
// Parameters:
//   - url: Dataset URL, typically an httptest server URL
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithDatasetURL(url string) *ConfigBuilder {
	b.cfg.DatasetURL = url
	return b
}

// WithTimeoutSeconds sets the request timeout.
//
// Parameters:
//   - seconds: Timeout in seconds
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithTimeoutSeconds(seconds int) *ConfigBuilder {
	b.cfg.TimeoutSeconds = seconds
	return b
}

// WithUserAgent sets the User-Agent header value.
//
// Parameters:
//   - agent: User-Agent string
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithUserAgent(agent string) *ConfigBuilder {
	b.cfg.UserAgent = agent
	return b
}

// WithMaxResponseBytes sets the response size cap.
//
// Parameters:
//   - max: Maximum response size in bytes
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithMaxResponseBytes(max int64) *ConfigBuilder {
	b.cfg.MaxResponseBytes = max
	return b
}

// WithOutput sets the output format name.
//
// Parameters:
//   - format: Output format (report, table, json, csv, xml)
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithOutput(format string) *ConfigBuilder {
	b.cfg.Output = format
	return b
}

// WithWorkingDir sets the working directory for the configuration.
//
// Parameters:
//   - dir: Path to the working directory
//
// Returns:
//   - *ConfigBuilder: Self for method chaining
func (b *ConfigBuilder) WithWorkingDir(dir string) *ConfigBuilder {
	b.cfg.WorkingDir = dir
	return b
}

// Build returns the built configuration.
//
// Returns a pointer to the constructed Config. The builder can be
// reused after calling Build.
//
// Returns:
//   - *config.Config: Pointer to the built configuration
func (b *ConfigBuilder) Build() *config.Config {
	return &b.cfg
}
