package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/velosafe/helmetscan/pkg/constants"
	"github.com/velosafe/helmetscan/pkg/filtering"
	"github.com/velosafe/helmetscan/pkg/helmet"
)

// PrintReport writes the default human-readable report for a query.
//
// It performs the following operations:
//   - Step 1: Prints the header with the match count and a heavy rule
//   - Step 2: If no records matched, prints an explicit no-results message
//     and stops without a filter summary
//   - Step 3: Prints one enumerated block per record with a light rule
//     after each
//   - Step 4: Prints the filter summary listing each active criterion and
//     the total result count, closed by a heavy rule
//
// Records are printed in the order given, so callers pass the sorted
// filter output directly.
//
// Parameters:
//   - w: Destination writer (typically os.Stdout)
//   - records: The filtered, sorted records to display
//   - criteria: The criteria that produced the records, for the summary
func PrintReport(w io.Writer, records []helmet.Record, criteria filtering.Criteria) {
	_, _ = fmt.Fprintf(w, "\nFiltered data (%d items):\n", len(records))
	_, _ = fmt.Fprintln(w, heavyRule())

	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "No helmets match your criteria.")
		return
	}

	for i, record := range records {
		printRecord(w, i+1, record)
	}

	printFilterSummary(w, criteria, len(records))
}

// printRecord writes one enumerated record block.
//
// The block shows the brand and model heading, two detail lines, an
// optional certifications line, and a closing light rule. Missing values
// render as placeholders rather than blanks.
//
// Parameters:
//   - w: Destination writer
//   - index: 1-based position of the record in the report
//   - r: The record to print
func printRecord(w io.Writer, index int, r helmet.Record) {
	_, _ = fmt.Fprintf(w, "\n%d. %s - %s\n", index, SafeName(r.Brand), SafeName(r.Model))
	_, _ = fmt.Fprintf(w, "   Score: %s | Cost: %s | Style: %s\n",
		FormatScore(r.Score), FormatCost(r.Cost), SafeText(r.Style))
	_, _ = fmt.Fprintf(w, "   Rating: %s stars | Date: %s\n",
		FormatRating(r.Rating), SafeText(r.Date))
	if r.HasCertifications() {
		_, _ = fmt.Fprintf(w, "   Certifications: %s\n", FormatCertifications(r.Certifications))
	}
	_, _ = fmt.Fprintln(w, lightRule())
}

// printFilterSummary writes the trailing summary section.
//
// Each active criterion prints on its own line using the labels from
// filtering.Criteria.Active, so threshold filters read "Maximum Cost: 100"
// while the rest read like "Style: Road".
//
// Parameters:
//   - w: Destination writer
//   - criteria: The criteria whose active fields are summarized
//   - total: The number of records in the report
func printFilterSummary(w io.Writer, criteria filtering.Criteria, total int) {
	_, _ = fmt.Fprintln(w, "\nFILTER SUMMARY:")
	active := criteria.Active()
	if len(active) == 0 {
		_, _ = fmt.Fprintln(w, "No filters applied - showing all data")
	} else {
		for _, criterion := range active {
			_, _ = fmt.Fprintf(w, "%s: %s\n", criterion.Label, criterion.Value)
		}
	}
	_, _ = fmt.Fprintf(w, "Total results: %d items\n", total)
	_, _ = fmt.Fprintln(w, heavyRule())
}

// heavyRule returns the "=" rule framing the report.
func heavyRule() string {
	return strings.Repeat("=", constants.RuleWidth)
}

// lightRule returns the "-" rule separating record blocks.
func lightRule() string {
	return strings.Repeat("-", constants.RuleWidth)
}
