package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/velosafe/helmetscan/pkg/utils"
)

// Column is one table column: its header text, current width, and
// visibility.
//
// Fields:
//   - Header: The text shown in the header row
//   - Width: The current display width in character cells
//   - hidden: Whether the column is excluded from rendered rows
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table builds aligned column output with widths that grow to fit the
// data. Width arithmetic is Unicode-aware, so brand names with wide
// characters stay aligned.
//
// Fields:
//   - columns: The columns in display order
//   - separator: The string printed between columns (default two spaces)
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates an empty table with the default two-space separator.
//
// Returns:
//   - *Table: A table ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator replaces the column separator and returns the table.
//
// Parameters:
//   - sep: The string printed between columns (e.g. " | ")
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// AddColumn appends a visible column and returns the table.
//
// The column starts as wide as its header.
//
// Parameters:
//   - header: The header text (e.g. "BRAND")
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: false,
	})
	return t
}

// AddColumnWithMinWidth appends a column with a width floor and returns the table.
//
// The starting width is the larger of minWidth and the header width, so
// short-valued columns like SCORE keep a readable width even when every
// value is narrower.
//
// Parameters:
//   - header: The header text
//   - minWidth: The smallest acceptable width in character cells
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	width := utils.DisplayWidth(header)
	if minWidth > width {
		width = minWidth
	}
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  width,
		hidden: false,
	})
	return t
}

// AddConditionalColumn appends a column whose visibility is decided by
// the caller and returns the table.
//
// Use this for columns tied to optional data, such as a CERTIFICATIONS
// column that only appears when at least one record lists a
// certification.
//
// Parameters:
//   - header: The header text
//   - visible: Whether the column appears in rendered output
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddConditionalColumn(header string, visible bool) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  utils.DisplayWidth(header),
		hidden: !visible,
	})
	return t
}

// UpdateWidths widens columns to fit a row of values and returns the table.
//
// Each value is measured with Unicode-aware width rules and its column
// grows when the value is wider than the column's current width. Widths
// never shrink. Extra values beyond the column count are ignored.
//
// Parameters:
//   - values: One value per column, in column order
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i >= len(t.columns) {
			break
		}
		if width := utils.DisplayWidth(val); width > t.columns[i].Width {
			t.columns[i].Width = width
		}
	}
	return t
}

// HeaderRow renders the header row.
//
// Hidden columns are skipped. Each header is padded to its column width
// and headers are joined with the separator.
//
// Returns:
//   - string: The formatted header row
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, utils.ToWidth(col.Header, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// SeparatorRow renders the dashed rule under the header.
//
// Hidden columns are skipped. Each visible column contributes a dash
// run matching its width, so the rule lines up with the headers.
//
// Returns:
//   - string: The formatted separator row
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatRow renders one data row.
//
// Values map to columns by position and hidden columns are skipped, so
// callers always pass the full value set regardless of visibility.
// Missing trailing values render as empty cells.
//
// Parameters:
//   - values: One value per column, in column order
//
// Returns:
//   - string: The formatted row
func (t *Table) FormatRow(values ...string) string {
	var parts []string
	for i, col := range t.columns {
		if col.hidden {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		parts = append(parts, utils.ToWidth(val, col.Width))
	}
	return strings.Join(parts, t.separator)
}

// ColumnCount returns the number of columns, hidden ones included.
//
// Returns:
//   - int: The total column count
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of columns that render.
//
// Returns:
//   - int: The count of visible columns
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// GetColumnWidth returns a column's current width by index.
//
// Parameters:
//   - index: Zero-based column index
//
// Returns:
//   - int: The width in character cells, or 0 when index is out of range
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// IsColumnHidden reports whether a column is hidden by index.
//
// Parameters:
//   - index: Zero-based column index
//
// Returns:
//   - bool: true when the column is hidden or index is out of range
func (t *Table) IsColumnHidden(index int) bool {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].hidden
	}
	return true
}

// Fprint writes the header row and separator rule to the writer.
//
// Callers print data rows themselves with FormatRow, typically in a
// loop directly after this call.
//
// Parameters:
//   - w: Destination writer
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}
