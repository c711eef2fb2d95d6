package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velosafe/helmetscan/pkg/config"
	"github.com/velosafe/helmetscan/pkg/constants"
	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configValidateFlag      bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.LoadConfig
	writeFileFunc  = os.WriteFile
	readFileFunc   = os.ReadFile
)

// loadAndValidateConfig loads the configuration and validates it for unknown fields.
//
// This provides preflight validation to catch configuration errors early,
// ensuring users are notified of typos or deprecated options before the
// dataset is fetched.
//
// Parameters:
//   - configPath: Path to custom config file, or empty for default location
//   - workDir: Working directory to search for default config
//
// Returns:
//   - *config.Config: Loaded and validated configuration
//   - error: Validation or load error with details
func loadAndValidateConfig(configPath, workDir string) (*config.Config, error) {
	// A custom path is validated up front so typos fail before any fetch
	if configPath != "" {
		data, err := readFileFunc(configPath)
		if err != nil {
			return nil, errors.NewExitError(errors.ExitValidationError,
				fmt.Errorf("failed to read config file '%s': %w", configPath, err))
		}

		if err := rejectInvalidConfig(configPath, data); err != nil {
			return nil, err
		}
	} else {
		// Check for .helmetscan.yml in workDir and validate if it exists
		localConfig := filepath.Join(workDir, config.ConfigFileName)
		if data, err := readFileFunc(localConfig); err == nil {
			if err := rejectInvalidConfig(localConfig, data); err != nil {
				return nil, err
			}
		}
	}

	cfg, err := loadConfigFunc(configPath, workDir)
	if err != nil {
		return nil, errors.NewExitError(errors.ExitValidationError,
			fmt.Errorf("failed to load config: %w", err))
	}

	return cfg, nil
}

// rejectInvalidConfig validates raw config data and wraps failures in an
// ExitError carrying the validation exit code.
//
// Parameters:
//   - path: Config file path, used in the error message
//   - data: Raw YAML contents of that file
//
// Returns:
//   - error: An ExitError listing the validation failures, or nil
func rejectInvalidConfig(path string, data []byte) error {
	result := config.ValidateConfigFile(data)
	if !result.HasErrors() {
		return nil
	}

	var errBuilder strings.Builder
	errBuilder.WriteString(fmt.Sprintf("configuration validation failed for %s:\n", path))
	for _, e := range result.Errors {
		errBuilder.WriteString(fmt.Sprintf("  - %s\n", e.Error()))
	}
	errBuilder.WriteString(fmt.Sprintf("\n%s Run 'helmetscan config --validate' for details, or see docs/configuration.md", constants.IconLightbulb))
	verbose.Infof("Exit code %d (validation error): configuration validation failed for %s", errors.ExitValidationError, path)
	return errors.NewExitError(errors.ExitValidationError, fmt.Errorf("%s", errBuilder.String()))
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create configuration",
	Long:  `Inspect the active configuration or write a starter .helmetscan.yml.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show effective configuration")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create .helmetscan.yml template")
	configCmd.Flags().BoolVar(&configValidateFlag, "validate", false, "Validate configuration file (rejects unknown fields)")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path to validate")
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .helmetscan.yml template file
//   - --validate: Validates the configuration file for schema errors
//   - --show-defaults: Displays the default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on validation or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configValidateFlag {
		return validateConfigFile()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.GetDefaultConfig())
		return nil
	}

	if configShowEffectiveFlag {
		workDir, _ := os.Getwd()
		cfg, err := loadConfigFunc(configPathFlag, workDir)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Println("Effective configuration:")
		fmt.Println()
		fmt.Printf("Working Directory:  %s\n", cfg.WorkingDir)
		fmt.Printf("Dataset URL:        %s\n", cfg.DatasetURL)
		fmt.Printf("Timeout:            %s\n", cfg.Timeout())
		fmt.Printf("User Agent:         %s\n", cfg.UserAgent)
		fmt.Printf("Max Response Bytes: %d\n", cfg.MaxResponseBytes)
		fmt.Printf("Output:             %s\n", cfg.Output)
		return nil
	}

	return cmd.Help()
}

// validateConfigFile checks the config file named by --config, or the
// default .helmetscan.yml in the current directory, against the schema.
//
// Errors print one per line; warnings follow. Verbose mode switches each
// error to its detailed rendering.
//
// Returns:
//   - error: Returns ExitError with ExitValidationError code on validation failure
func validateConfigFile() error {
	configPath := configPathFlag
	if configPath == "" {
		workDir, _ := os.Getwd()
		configPath = filepath.Join(workDir, config.ConfigFileName)
	}

	data, err := readFileFunc(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	result := config.ValidateConfigFile(data)

	if result.HasErrors() {
		fmt.Printf("%s Configuration validation failed for: %s\n\n", constants.IconError, configPath)

		render := func(e *errors.ValidationError) string { return e.Error() }
		if verbose.IsEnabled() {
			render = func(e *errors.ValidationError) string { return e.VerboseError() }
		}
		for _, e := range result.Errors {
			fmt.Printf("  ERROR: %s\n", render(e))
		}

		if len(result.Warnings) > 0 {
			fmt.Println()
			for _, w := range result.Warnings {
				fmt.Printf("  WARNING: %s\n", w)
			}
		}
		fmt.Println()
		if !verbose.IsEnabled() {
			fmt.Printf("%s Run with --verbose for detailed schema information\n", constants.IconLightbulb)
		}
		fmt.Printf("%s See docs/configuration.md for valid configuration options\n", constants.IconLightbulb)
		verbose.Infof("Exit code %d (validation error): configuration validation failed for %s", errors.ExitValidationError, configPath)
		return errors.NewExitError(errors.ExitValidationError, fmt.Errorf("configuration validation failed"))
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("%s Configuration valid with warnings: %s\n\n", constants.IconWarn, configPath)
		for _, w := range result.Warnings {
			fmt.Printf("  WARNING: %s\n", w)
		}
		fmt.Println()
	} else {
		fmt.Printf("%s Configuration valid: %s\n", constants.IconCheckmarkBox, configPath)
	}

	return nil
}

// createConfigTemplate creates a new .helmetscan.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	configPath := config.ConfigFileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	template := config.GetTemplateConfig()

	// 0600 keeps the file owner-only
	if err := writeFileFunc(configPath, []byte(template), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
