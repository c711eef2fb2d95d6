package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/velosafe/helmetscan/pkg/config"
	"github.com/velosafe/helmetscan/pkg/dataset"
	"github.com/velosafe/helmetscan/pkg/display"
	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/filtering"
	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/output"
	"github.com/velosafe/helmetscan/pkg/provider"
	"github.com/velosafe/helmetscan/pkg/warnings"
)

// Function variables for dependency injection during testing.
var (
	fetchDatasetFunc = provider.FetchDataset
	parseDatasetFunc = dataset.Parse
)

// runQuery executes the helmet query on the root command.
//
// It performs the following operations:
// 1. Builds filter criteria from the flags the user set and validates them
// 2. Loads and validates the configuration
// 3. Fetches and parses the dataset, collecting warnings for later replay
// 4. Applies the filters and renders the result in the requested format
//
// An interrupt (Ctrl+C) during the fetch cancels the request and exits
// cleanly with a short message instead of an error.
//
// Parameters:
//   - cmd: Cobra command instance carrying the parsed flags
//
// Returns:
//   - error: Validation errors exit with code 2, fetch and parse
//     failures with code 1; zero matches and interrupts are not errors
func runQuery(cmd *cobra.Command) error {
	criteria := buildCriteria(cmd)
	if result := criteria.Validate(); result.HasErrors() {
		return result.Errors[0]
	}

	// Validate an explicit --output before touching config or network.
	if outputFlag != "" {
		if err := output.ValidateOutputFormat(outputFlag); err != nil {
			return err
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	cfg, err := loadAndValidateConfig(configFlag, workDir)
	if err != nil {
		return err
	}

	formatName := outputFlag
	if formatName == "" {
		formatName = cfg.Output
	}
	format := output.ParseFormat(formatName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Dataset warnings are collected during fetch and parse so they never
	// interleave with the rendered output.
	collector := display.NewWarningCollector()
	restore := warnings.SetWarningWriter(collector)

	records, err := loadRecords(ctx, cfg)
	restore()
	if err != nil {
		if stderrors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Operation cancelled by user")
			return nil
		}
		display.PrintWarnings(os.Stderr, collector.Messages())
		return err
	}

	filtered := filtering.Apply(records, criteria)

	return renderResults(format, filtered, len(records), criteria, collector.Messages())
}

// buildCriteria assembles filter criteria from the root command flags.
//
// Only flags the user actually set become active criteria, so an
// explicit --cost 0 is an active zero-dollar ceiling while an untouched
// flag stays unset.
//
// Parameters:
//   - cmd: Cobra command instance carrying the parsed flags
//
// Returns:
//   - filtering.Criteria: The assembled criteria, empty when no filter
//     flags were set
func buildCriteria(cmd *cobra.Command) filtering.Criteria {
	flags := cmd.Flags()
	criteria := filtering.Criteria{}

	if flags.Changed("style") {
		criteria = criteria.WithStyle(styleFlag)
	}
	if flags.Changed("cost") {
		criteria = criteria.WithMaxCost(costFlag)
	}
	if flags.Changed("score") {
		criteria = criteria.WithMaxScore(scoreFlag)
	}
	if flags.Changed("brand") {
		criteria = criteria.WithBrand(brandFlag)
	}
	if flags.Changed("rating") {
		criteria = criteria.WithRating(ratingFlag)
	}
	if flags.Changed("date") {
		criteria = criteria.WithDate(dateFlag)
	}
	if flags.Changed("certifications") {
		criteria = criteria.WithCertification(certificationsFlag)
	}

	return criteria
}

// loadRecords fetches the raw dataset document and parses it into records.
//
// An empty dataset is not an error at this level: it surfaces as a
// warning and an empty slice so the query completes with zero matches.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - cfg: Configuration carrying the dataset URL and HTTP settings
//
// Returns:
//   - []helmet.Record: The parsed records in document order
//   - error: A FetchError or ParseError, or nil
func loadRecords(ctx context.Context, cfg *config.Config) ([]helmet.Record, error) {
	body, err := fetchDatasetFunc(ctx, cfg)
	if err != nil {
		return nil, err
	}

	records, err := parseDatasetFunc(body)
	if err != nil {
		if errors.IsEmptyDataset(err) {
			warnings.Warn("dataset contains no records")
			return nil, nil
		}
		return nil, err
	}

	return records, nil
}

// renderResults writes the filtered records in the requested format.
//
// Structured formats embed the collected warnings in the result document;
// the report and table formats replay them on stderr after the output.
//
// Parameters:
//   - format: The resolved output format
//   - records: The filtered, score-sorted records
//   - datasetTotal: Number of records in the full dataset
//   - criteria: The active filter criteria for the summary
//   - warningMsgs: Warnings collected while loading the dataset
//
// Returns:
//   - error: A write or encoding failure, or nil
func renderResults(format output.Format, records []helmet.Record, datasetTotal int, criteria filtering.Criteria, warningMsgs []string) error {
	if output.IsStructuredFormat(format) {
		result := buildQueryResult(datasetTotal, records, criteria, warningMsgs)
		return output.WriteQueryResult(os.Stdout, format, result)
	}

	if format == output.FormatTable {
		display.PrintTable(os.Stdout, records)
	} else {
		display.PrintReport(os.Stdout, records, criteria)
	}
	display.PrintWarnings(os.Stderr, warningMsgs)
	return nil
}

// buildQueryResult assembles the structured result document.
//
// Parameters:
//   - datasetTotal: Number of records in the full dataset
//   - records: The filtered, score-sorted records
//   - criteria: The active filter criteria
//   - warningMsgs: Warnings collected while loading the dataset
//
// Returns:
//   - *output.QueryResult: The document ready for JSON, CSV, or XML encoding
func buildQueryResult(datasetTotal int, records []helmet.Record, criteria filtering.Criteria, warningMsgs []string) *output.QueryResult {
	active := criteria.Active()
	filters := make([]output.FilterEntry, 0, len(active))
	for _, criterion := range active {
		filters = append(filters, output.FilterEntry{Label: criterion.Label, Value: criterion.Value})
	}

	return &output.QueryResult{
		Summary: output.QuerySummary{
			DatasetTotal: datasetTotal,
			Matched:      len(records),
			Filters:      filters,
		},
		Helmets:  output.HelmetEntries(records),
		Warnings: warningMsgs,
	}
}
