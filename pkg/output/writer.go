package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteQueryResult encodes a query result in the requested structured format.
//
// It performs the following operations:
//   - Step 1: Builds a formatter bound to the destination writer
//   - Step 2: Dispatches to the encoder matching the format
//
// Parameters:
//   - w: Destination for the encoded document
//   - format: One of FormatJSON, FormatXML, or FormatCSV
//   - result: Query result data to encode
//
// Returns:
//   - error: An unsupported-format error, the encoder's write error, or nil
func WriteQueryResult(w io.Writer, format Format, result *QueryResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeQueryCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeQueryCSV flattens helmet entries into CSV rows.
//
// Missing numeric values render as empty cells and certifications are
// joined with ", " inside a single cell.
//
// Parameters:
//   - f: The formatter that performs the CSV encoding
//   - result: Query result data containing helmet entries
//
// Returns:
//   - error: The first buffered CSV write error, or nil
func writeQueryCSV(f *Formatter, result *QueryResult) error {
	headers := []string{"BRAND", "MODEL", "SCORE", "COST", "STYLE", "RATING", "DATE", "CERTIFICATIONS"}
	rows := make([][]string, 0, len(result.Helmets))
	for _, entry := range result.Helmets {
		rows = append(rows, []string{
			entry.Brand,
			entry.Model,
			floatCell(entry.Score),
			floatCell(entry.Cost),
			entry.Style,
			intCell(entry.Rating),
			entry.Date,
			strings.Join(entry.Certifications, ", "),
		})
	}
	return f.WriteCSV(headers, rows)
}

// floatCell renders an optional float for a CSV cell.
//
// Parameters:
//   - v: The value to render, may be nil
//
// Returns:
//   - string: The shortest decimal rendering, or "" when nil
func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// intCell renders an optional integer for a CSV cell.
//
// Parameters:
//   - v: The value to render, may be nil
//
// Returns:
//   - string: The decimal rendering, or "" when nil
func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
