package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// loadDefaultConfig decodes the embedded default.yml into a Config.
//
// The embedded file is compiled in and validated by tests, so a decode
// failure should not happen; if it somehow does, an empty config comes
// back rather than an error.
//
// Returns:
//   - *Config: the built-in default configuration
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{}
}

// GetDefaultConfig returns the built-in default configuration as YAML text.
//
// Callers get the raw default.yml text, suitable for printing with
// --show-defaults or diffing against a local file.
//
// Returns:
//   - string: the default configuration as YAML
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the starter configuration as YAML text.
//
// The template is the commented starter file that --init writes for
// new users.
//
// Returns:
//   - string: the template configuration as YAML
func GetTemplateConfig() string {
	return templateConfigYAML
}
