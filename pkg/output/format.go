// Package output provides formatters for exporting query results in various formats.
// It supports JSON, CSV, and XML documents as alternatives to the default report
// display, plus a generic table builder for the aligned terminal view.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/velosafe/helmetscan/pkg/errors"
)

// Format names one of the supported output shapes.
type Format string

const (
	// FormatReport is the default human-readable report output.
	FormatReport Format = "report"
	// FormatTable is the aligned terminal table output.
	FormatTable Format = "table"
	// FormatCSV emits comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON emits a JSON document.
	FormatJSON Format = "json"
	// FormatXML emits an XML document.
	FormatXML Format = "xml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "table", "csv", "json",
// and "xml". Any other value, including the empty string, returns
// FormatReport as the default. Use ValidateOutputFormat first when unknown
// names must be rejected instead of silently defaulted.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON", "Table")
//
// Returns:
//   - Format: The parsed format, or FormatReport if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table":
		return FormatTable
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	default:
		return FormatReport
	}
}

// ValidFormatNames returns the accepted output format names.
//
// The names are returned in display order for use in error messages and
// help text.
//
// Returns:
//   - []string: The format names accepted by the --output flag
func ValidFormatNames() []string {
	return []string{
		string(FormatReport),
		string(FormatTable),
		string(FormatJSON),
		string(FormatCSV),
		string(FormatXML),
	}
}

// IsValidFormat reports whether a format name is recognized.
//
// The check is case-insensitive and ignores surrounding whitespace. The
// empty string is not a valid format name.
//
// Parameters:
//   - s: Format name to check
//
// Returns:
//   - bool: true if s names one of the accepted formats
func IsValidFormat(s string) bool {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, valid := range ValidFormatNames() {
		if name == valid {
			return true
		}
	}
	return false
}

// ValidateOutputFormat validates a format name from a flag or config value.
//
// It performs the following operations:
//   - Accepts any name that IsValidFormat recognizes
//   - Rejects everything else with a ValidationError listing the valid names
//
// Parameters:
//   - s: Format name to validate
//
// Returns:
//   - error: When the name is unknown, returns a *errors.ValidationError; otherwise returns nil
func ValidateOutputFormat(s string) error {
	if IsValidFormat(s) {
		return nil
	}
	return errors.NewOutputValidationError(s, ValidFormatNames())
}

// IsStructuredFormat returns true if the format produces a machine-readable document.
//
// Structured formats (CSV, JSON, XML) are typically consumed by tools and
// carry the full QueryResult; report and table are terminal displays.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML; false for report and table
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter couples a format with the writer the document goes to.
//
// Fields:
//   - format: The output format (CSV, JSON, or XML)
//   - writer: Destination for the encoded document
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter builds a Formatter for one format and destination.
//
// Parameters:
//   - format: The format to encode with
//   - writer: Destination for the encoded document
//
// Returns:
//   - *Formatter: A formatter ready to write
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format reports which format this formatter encodes with.
//
// Returns:
//   - Format: The configured format
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV encodes a header row plus data rows as CSV.
//
// It performs the following operations:
//   - Step 1: Wraps the destination in a csv.Writer
//   - Step 2: Writes the header row, then every data row
//   - Step 3: Flushes and reports the first buffered error, if any
//
// Note: csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column names for the first row
//   - rows: Data rows, each with one value per header
//
// Returns:
//   - error: When write or flush fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON encodes data as single-line JSON.
//
// Compact output keeps piping into jq and similar tools simple.
//
// Parameters:
//   - data: Value to encode (must be marshallable)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(data)
}

// WriteXML encodes data as an indented XML document.
//
// It performs the following operations:
//   - Step 1: Emits the standard XML header (<?xml version="1.0"?>)
//   - Step 2: Encodes the value with 2-space indentation
//   - Step 3: Terminates the document with a newline
//
// Parameters:
//   - data: Value to encode (must be marshallable and carry xml tags)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
