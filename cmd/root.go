// Package cmd implements the command-line interface for helmetscan.
// The root command fetches the Virginia Tech bicycle helmet safety
// dataset, applies the requested filters, and prints the matching
// helmets sorted by safety score. The version and config subcommands
// cover build information and configuration management.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/verbose"
)

var exitFunc = os.Exit

var (
	verboseFlag bool
	versionFlag bool

	styleFlag          string
	costFlag           float64
	scoreFlag          float64
	brandFlag          string
	ratingFlag         int
	dateFlag           string
	certificationsFlag string

	outputFlag string
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "helmetscan",
	Short: "Filter and display bicycle helmet safety data from Virginia Tech",
	Long: `Fetch the Virginia Tech bicycle helmet safety dataset, filter it by
style, cost, score, brand, rating, date, or certifications, and print
the matching helmets sorted ascending by safety score (lower is better).

Running without flags shows the full dataset.`,
	Example: `  helmetscan --style Road --cost 200 --score 15
  helmetscan --brand Giro --rating 5
  helmetscan --certifications MIPS --output json`,
	Args: func(cmd *cobra.Command, args []string) error {
		// Positional arguments are user input errors, not data failures.
		if err := cobra.NoArgs(cmd, args); err != nil {
			return errors.NewExitError(errors.ExitValidationError, err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionFlag {
			runVersion(cmd, args)
			return nil
		}
		return runQuery(cmd)
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success (including zero matches and user interrupts)
//   - 1: Dataset fetch or parse failure
//   - 2: Invalid filter criteria, output format, or configuration
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		code := errors.GetExitCode(err)
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verboseFlag)
		verbose.Infof("Exit code %d: %v", code, err)
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().StringVar(&styleFlag, "style", "", "Filter by helmet style (e.g. Road, Mountain, Commuter)")
	rootCmd.Flags().Float64Var(&costFlag, "cost", 0, "Maximum cost filter in dollars (e.g. 100)")
	rootCmd.Flags().Float64Var(&scoreFlag, "score", 0, "Maximum score filter, lower is better (e.g. 10)")
	rootCmd.Flags().StringVar(&brandFlag, "brand", "", "Filter by brand name (e.g. Giro, Specialized)")
	rootCmd.Flags().IntVar(&ratingFlag, "rating", 0, "Filter by star rating (1-5)")
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "Filter by date/year (e.g. 2023)")
	rootCmd.Flags().StringVar(&certificationsFlag, "certifications", "", "Filter by certifications (e.g. CPSC, MIPS)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format: report, table, json, csv, or xml")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Config file path")
	rootCmd.Flags().BoolVar(&versionFlag, "version", false, "Show version information")

	// Flag parse failures (unknown flags, bad numeric values) are user
	// input errors and must map to the validation exit code.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewExitError(errors.ExitValidationError, err)
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}
