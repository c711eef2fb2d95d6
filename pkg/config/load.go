// Package config handles configuration loading and validation for helmetscan.
// It reads YAML config files, overlays HELMETSCAN_ environment variables
// (optionally sourced from a .env file), and falls back to embedded defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/velosafe/helmetscan/pkg/verbose"
)

// LoadConfig resolves the active configuration.
//
// A non-empty configPath wins; otherwise .helmetscan.yml in the working
// directory is used when present, and the built-in defaults apply when it
// is not. Environment variables override file values in every case.
//
// Parameters:
//   - configPath: explicit config file, or empty to discover one
//   - workDir: working directory constraining config and .env discovery
//
// Returns:
//   - *Config: the loaded configuration with overrides applied
//   - error: error if a named file cannot be read or the result fails validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	cfg := loadDefaultConfig()
	source := "built-in defaults"

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		cfg = mergeConfigs(cfg, loaded)
		source = configPath
	} else {
		localConfig := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			if loaded, err := loadConfigFile(localConfig); err == nil {
				cfg = mergeConfigs(cfg, loaded)
				source = localConfig
			}
		} else {
			verbose.Info("Using built-in default configuration")
		}
	}

	overrides := applyEnvOverrides(cfg, workDir)
	verbose.ConfigLoaded(source, overrides)

	if workDir != "" {
		cfg.WorkingDir = workDir
	} else if cfg.WorkingDir == "" {
		cfg.WorkingDir = "."
	}

	if result := ValidateConfig(cfg); result.HasErrors() {
		return nil, fmt.Errorf("failed to load config: %w", result.Errors[0])
	}

	return cfg, nil
}

// readConfigBytes reads a config file after checking its size.
//
// The size check happens before the read so an oversized file never lands
// in memory.
//
// Parameters:
//   - path: config file to read
//
// Returns:
//   - []byte: the file contents
//   - error: error if the file is missing or exceeds DefaultMaxConfigFileSize
func readConfigBytes(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > DefaultMaxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d bytes)",
			info.Size(), DefaultMaxConfigFileSize)
	}

	return os.ReadFile(path)
}

// loadConfigFile reads and parses one YAML config file.
//
// Parameters:
//   - path: config file to load
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if the file is too large, missing, or has invalid YAML
func loadConfigFile(path string) (*Config, error) {
	data, err := readConfigBytes(path)
	if err != nil {
		return nil, err
	}

	return loadConfigData(data)
}

// loadConfigData decodes raw YAML bytes into a Config.
//
// Parameters:
//   - data: raw YAML bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: error if YAML is invalid or malformed
func loadConfigData(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	return &cfg, nil
}

// LoadConfigFileStrict loads a config file, rejecting unknown fields.
//
// Where LoadConfig tolerates a loosely-written file, this variant fails on
// any schema violation. It backs the config --validate path, where the
// whole point is surfacing typos.
//
// Parameters:
//   - path: config file to load
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file has unknown fields, validation errors, or invalid YAML
func LoadConfigFileStrict(path string) (*Config, error) {
	data, err := readConfigBytes(path)
	if err != nil {
		return nil, err
	}

	result := ValidateConfigFile(data)
	if result.HasErrors() {
		return nil, fmt.Errorf("%s", result.ErrorMessage())
	}

	return loadConfigData(data)
}

// mergeConfigs overlays non-zero fields of override onto base.
//
// Field-level merge keeps partial config files useful: a file that only
// sets timeout_seconds inherits every other default.
//
// Parameters:
//   - base: the configuration providing fallback values
//   - override: the configuration whose set fields win
//
// Returns:
//   - *Config: a new merged configuration
func mergeConfigs(base, override *Config) *Config {
	merged := *base

	if override.DatasetURL != "" {
		merged.DatasetURL = override.DatasetURL
	}
	if override.TimeoutSeconds != 0 {
		merged.TimeoutSeconds = override.TimeoutSeconds
	}
	if override.UserAgent != "" {
		merged.UserAgent = override.UserAgent
	}
	if override.MaxResponseBytes != 0 {
		merged.MaxResponseBytes = override.MaxResponseBytes
	}
	if override.Output != "" {
		merged.Output = override.Output
	}
	if override.WorkingDir != "" {
		merged.WorkingDir = override.WorkingDir
	}

	return &merged
}
