package output

import (
	"encoding/xml"

	"github.com/velosafe/helmetscan/pkg/helmet"
)

// QueryResult represents the structured output of a helmet query.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the query
//   - Helmets: Matching helmet entries in score order
//   - Warnings: Warning messages raised while fetching or parsing (omitted if empty)
type QueryResult struct {
	XMLName  xml.Name      `json:"-" xml:"queryResult"`
	Summary  QuerySummary  `json:"summary" xml:"summary"`
	Helmets  []HelmetEntry `json:"helmets" xml:"helmets>helmet"`
	Warnings []string      `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// QuerySummary holds summary statistics for query results.
//
// Fields:
//   - DatasetTotal: Number of records in the fetched dataset before filtering
//   - Matched: Number of records that satisfied all active filters
//   - Filters: The active filter criteria in flag order (omitted if empty)
type QuerySummary struct {
	DatasetTotal int           `json:"dataset_total" xml:"datasetTotal"`
	Matched      int           `json:"matched" xml:"matched"`
	Filters      []FilterEntry `json:"filters,omitempty" xml:"filters>filter,omitempty"`
}

// FilterEntry represents one active filter criterion in the summary.
//
// Fields:
//   - Label: Human-readable criterion name (e.g., "Maximum Cost")
//   - Value: The criterion value as supplied by the user
type FilterEntry struct {
	Label string `json:"label" xml:"label"`
	Value string `json:"value" xml:"value"`
}

// HelmetEntry represents a single helmet in structured output.
//
// Numeric fields use pointers so that a missing dataset value is omitted
// from the document rather than rendered as zero.
//
// Fields:
//   - Brand: Manufacturer name (omitted if empty)
//   - Model: Product name (omitted if empty)
//   - Score: Safety test score, lower is safer (omitted if absent)
//   - Cost: Price in dollars (omitted if absent)
//   - Style: Helmet category (omitted if empty)
//   - Rating: Star rating from 1 to 5 (omitted if absent)
//   - Date: Test or release date as published (omitted if empty)
//   - Certifications: Safety standards the helmet meets (omitted if empty)
type HelmetEntry struct {
	Brand          string   `json:"brand,omitempty" xml:"brand,omitempty"`
	Model          string   `json:"model,omitempty" xml:"model,omitempty"`
	Score          *float64 `json:"score,omitempty" xml:"score,omitempty"`
	Cost           *float64 `json:"cost,omitempty" xml:"cost,omitempty"`
	Style          string   `json:"style,omitempty" xml:"style,omitempty"`
	Rating         *int     `json:"rating,omitempty" xml:"rating,omitempty"`
	Date           string   `json:"date,omitempty" xml:"date,omitempty"`
	Certifications []string `json:"certifications,omitempty" xml:"certifications>certification,omitempty"`
}

// NewHelmetEntry converts a helmet record into an output entry.
//
// It performs the following operations:
//   - Copies the text fields directly
//   - Copies numeric values behind fresh pointers so the entry does not
//     alias the record
//   - Copies the certifications slice
//
// Parameters:
//   - r: The helmet record to convert
//
// Returns:
//   - HelmetEntry: An entry carrying the record's values
func NewHelmetEntry(r helmet.Record) HelmetEntry {
	entry := HelmetEntry{
		Brand: r.Brand,
		Model: r.Model,
		Style: r.Style,
		Date:  r.Date,
	}
	if r.Score != nil {
		score := *r.Score
		entry.Score = &score
	}
	if r.Cost != nil {
		cost := *r.Cost
		entry.Cost = &cost
	}
	if r.Rating != nil {
		rating := *r.Rating
		entry.Rating = &rating
	}
	if len(r.Certifications) > 0 {
		entry.Certifications = append([]string(nil), r.Certifications...)
	}
	return entry
}

// HelmetEntries converts a slice of helmet records into output entries.
//
// The input order is preserved, so a score-sorted slice produces a
// score-sorted document.
//
// Parameters:
//   - records: The helmet records to convert
//
// Returns:
//   - []HelmetEntry: Entries in the same order as the input, never nil
func HelmetEntries(records []helmet.Record) []HelmetEntry {
	entries := make([]HelmetEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, NewHelmetEntry(r))
	}
	return entries
}
