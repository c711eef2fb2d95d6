package display

import (
	"fmt"
	"io"

	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/output"
)

// ColumnDef describes one column of a table schema.
//
// Fields:
//   - Name: Header text, shown uppercase
//   - MinWidth: Floor for the column width in characters
//   - Optional: If true, column can be hidden via TableOptions
type ColumnDef struct {
	// Name is the header text for this column.
	Name string

	// MinWidth floors the column width. Wider content still expands
	// the column past it.
	MinWidth int

	// Optional marks a column that TableOptions.ShowOptional may hide.
	Optional bool
}

// Schema lists the columns a table renders, in order.
//
// Fields:
//   - Columns: Ordered column definitions
type Schema struct {
	// Columns holds the column definitions in display order.
	Columns []ColumnDef
}

// QuerySchema defines columns for the query table output.
// Columns: BRAND, MODEL, SCORE, COST, STYLE, RATING, DATE, CERTIFICATIONS*
// * CERTIFICATIONS is optional and hidden when no record lists one
var QuerySchema = Schema{
	Columns: []ColumnDef{
		{Name: "BRAND", MinWidth: 5},
		{Name: "MODEL", MinWidth: 5},
		{Name: "SCORE", MinWidth: 5},
		{Name: "COST", MinWidth: 4},
		{Name: "STYLE", MinWidth: 5},
		{Name: "RATING", MinWidth: 6},
		{Name: "DATE", MinWidth: 4},
		{Name: "CERTIFICATIONS", MinWidth: 14, Optional: true},
	},
}

// TableOptions tunes how a schema turns into a concrete table.
//
// Fields:
//   - ShowOptional: Visibility per optional column name
type TableOptions struct {
	// ShowOptional maps an optional column name, such as
	// "CERTIFICATIONS", to whether it appears.
	ShowOptional map[string]bool
}

// NewTableFromSchema instantiates an output.Table for a schema.
//
// Parameters:
//   - schema: The column layout to realize
//   - options: Visibility switches for optional columns
//
// Returns:
//   - *output.Table: New table ready for adding rows
//
// Example:
//
//	opts := TableOptions{ShowOptional: map[string]bool{"CERTIFICATIONS": true}}
//	table := display.NewTableFromSchema(display.QuerySchema, opts)
func NewTableFromSchema(schema Schema, options TableOptions) *output.Table {
	table := output.NewTable()
	for _, col := range schema.Columns {
		switch {
		case col.Optional:
			table.AddConditionalColumn(col.Name, options.ShowOptional[col.Name])
		case col.MinWidth > 0:
			table.AddColumnWithMinWidth(col.Name, col.MinWidth)
		default:
			table.AddColumn(col.Name)
		}
	}
	return table
}

// NewQueryTable creates a table for query command output.
//
// Parameters:
//   - showCertifications: If true, includes the CERTIFICATIONS column
//
// Returns:
//   - *output.Table: Table configured with QuerySchema
//
// Example:
//
//	table := display.NewQueryTable(true)  // with CERTIFICATIONS column
//	table := display.NewQueryTable(false) // without CERTIFICATIONS column
func NewQueryTable(showCertifications bool) *output.Table {
	return NewTableFromSchema(QuerySchema, TableOptions{
		ShowOptional: map[string]bool{"CERTIFICATIONS": showCertifications},
	})
}

// PrintTable writes records as an aligned column table.
//
// It performs the following operations:
//   - Step 1: Decides whether the CERTIFICATIONS column is needed
//   - Step 2: Builds all rows and widens columns to fit them
//   - Step 3: Prints the header, separator, and rows
//   - Step 4: Prints the total result count
//
// Missing values render as placeholders so rows stay aligned.
//
// Parameters:
//   - w: Destination writer (typically os.Stdout)
//   - records: The filtered, sorted records to display
func PrintTable(w io.Writer, records []helmet.Record) {
	showCerts := false
	for _, r := range records {
		if r.HasCertifications() {
			showCerts = true
			break
		}
	}

	table := NewQueryTable(showCerts)
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			SafeName(r.Brand),
			SafeName(r.Model),
			FormatScore(r.Score),
			FormatCost(r.Cost),
			SafeText(r.Style),
			FormatRating(r.Rating),
			SafeText(r.Date),
			FormatCertifications(r.Certifications),
		}
		table.UpdateWidths(row...)
		rows = append(rows, row)
	}

	table.Fprint(w)
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, table.FormatRow(row...))
	}
	_, _ = fmt.Fprintf(w, "\nTotal results: %d items\n", len(records))
}
