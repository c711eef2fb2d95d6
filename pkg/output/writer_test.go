package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velosafe/helmetscan/pkg/helmet"
)

// floatPtr returns a pointer to the given float for fixture construction.
func floatPtr(v float64) *float64 { return &v }

// intPtr returns a pointer to the given int for fixture construction.
func intPtr(v int) *int { return &v }

// sampleQueryResult builds a small result document for writer tests.
func sampleQueryResult() *QueryResult {
	return &QueryResult{
		Summary: QuerySummary{
			DatasetTotal: 5,
			Matched:      2,
			Filters: []FilterEntry{
				{Label: "Style", Value: "Road"},
				{Label: "Maximum Score", Value: "15"},
			},
		},
		Helmets: []HelmetEntry{
			{
				Brand:          "Giro",
				Model:          "Register MIPS",
				Score:          floatPtr(10.9),
				Cost:           floatPtr(59.95),
				Style:          "Road",
				Rating:         intPtr(4),
				Date:           "2023",
				Certifications: []string{"CPSC", "MIPS"},
			},
			{Brand: "Bell", Model: "Span", Style: "Urban"},
		},
		Warnings: []string{"record #3: ignoring style value 12, treating as missing"},
	}
}

// TestWriteQueryResult_JSON tests the behavior of WriteQueryResult with JSON format.
//
// It verifies:
//   - Produces valid JSON carrying the summary, helmets, and warnings
//   - Omits missing numeric fields instead of writing zeros
func TestWriteQueryResult_JSON(t *testing.T) {
	var buf bytes.Buffer
	result := sampleQueryResult()

	err := WriteQueryResult(&buf, FormatJSON, result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	summary, ok := decoded["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(5), summary["dataset_total"])
	assert.Equal(t, float64(2), summary["matched"])

	helmets, ok := decoded["helmets"].([]interface{})
	require.True(t, ok)
	require.Len(t, helmets, 2)

	first, ok := helmets[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Giro", first["brand"])
	assert.Equal(t, 10.9, first["score"])
	assert.Equal(t, 59.95, first["cost"])
	assert.Equal(t, float64(4), first["rating"])

	second, ok := helmets[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Bell", second["brand"])
	assert.NotContains(t, second, "score")
	assert.NotContains(t, second, "cost")
	assert.NotContains(t, second, "rating")
	assert.NotContains(t, second, "certifications")

	warnings, ok := decoded["warnings"].([]interface{})
	require.True(t, ok)
	assert.Len(t, warnings, 1)
}

// TestWriteQueryResult_XML tests the behavior of WriteQueryResult with XML format.
//
// It verifies:
//   - Produces an XML document with the queryResult root
//   - Nests certifications as individual elements
func TestWriteQueryResult_XML(t *testing.T) {
	var buf bytes.Buffer
	result := sampleQueryResult()

	err := WriteQueryResult(&buf, FormatXML, result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<?xml version=")
	assert.Contains(t, out, "<queryResult>")
	assert.Contains(t, out, "<datasetTotal>5</datasetTotal>")
	assert.Contains(t, out, "<matched>2</matched>")
	assert.Contains(t, out, "<label>Maximum Score</label>")
	assert.Contains(t, out, "<brand>Giro</brand>")
	assert.Contains(t, out, "<certification>CPSC</certification>")
	assert.Contains(t, out, "<certification>MIPS</certification>")
}

// TestWriteQueryResult_CSV tests the behavior of WriteQueryResult with CSV format.
//
// It verifies:
//   - Writes the fixed helmet header row
//   - Renders missing values as empty cells
//   - Joins certifications inside one quoted cell
func TestWriteQueryResult_CSV(t *testing.T) {
	var buf bytes.Buffer
	result := sampleQueryResult()

	err := WriteQueryResult(&buf, FormatCSV, result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "BRAND,MODEL,SCORE,COST,STYLE,RATING,DATE,CERTIFICATIONS")
	assert.Contains(t, out, "Giro,Register MIPS,10.9,59.95,Road,4,2023,\"CPSC, MIPS\"")
	assert.Contains(t, out, "Bell,Span,,,Urban,,,")
}

// TestWriteQueryResult_UnsupportedFormat tests the behavior of WriteQueryResult with terminal formats.
//
// It verifies:
//   - Report and table formats are rejected as unsupported
func TestWriteQueryResult_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	result := sampleQueryResult()

	err := WriteQueryResult(&buf, FormatReport, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	err = WriteQueryResult(&buf, FormatTable, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// TestNewHelmetEntry tests the behavior of NewHelmetEntry.
//
// It verifies:
//   - Copies every populated field from the record
//   - Leaves missing numeric fields nil
//   - Does not alias the record's pointer fields or certification slice
func TestNewHelmetEntry(t *testing.T) {
	record := helmet.Record{
		Brand:          "Giro",
		Model:          "Fixture MIPS",
		Style:          "Mountain",
		Cost:           floatPtr(74.95),
		Score:          floatPtr(12.8),
		Rating:         intPtr(4),
		Date:           "June 2023",
		Certifications: []string{"CPSC", "MIPS"},
	}

	entry := NewHelmetEntry(record)

	assert.Equal(t, "Giro", entry.Brand)
	assert.Equal(t, "Fixture MIPS", entry.Model)
	assert.Equal(t, "Mountain", entry.Style)
	assert.Equal(t, "June 2023", entry.Date)
	require.NotNil(t, entry.Score)
	assert.Equal(t, 12.8, *entry.Score)
	require.NotNil(t, entry.Cost)
	assert.Equal(t, 74.95, *entry.Cost)
	require.NotNil(t, entry.Rating)
	assert.Equal(t, 4, *entry.Rating)
	assert.Equal(t, []string{"CPSC", "MIPS"}, entry.Certifications)

	assert.NotSame(t, record.Score, entry.Score)
	assert.NotSame(t, record.Cost, entry.Cost)
	assert.NotSame(t, record.Rating, entry.Rating)

	entry.Certifications[0] = "changed"
	assert.Equal(t, "CPSC", record.Certifications[0])

	sparse := NewHelmetEntry(helmet.Record{Brand: "Bell"})
	assert.Nil(t, sparse.Score)
	assert.Nil(t, sparse.Cost)
	assert.Nil(t, sparse.Rating)
	assert.Nil(t, sparse.Certifications)
}

// TestHelmetEntries tests the behavior of HelmetEntries.
//
// It verifies:
//   - Preserves the input order
//   - Returns an empty non-nil slice for empty input
func TestHelmetEntries(t *testing.T) {
	records := []helmet.Record{
		{Brand: "Specialized", Model: "Align II", Score: floatPtr(10.5)},
		{Brand: "Giro", Model: "Register MIPS", Score: floatPtr(10.9)},
		{Brand: "Trek", Model: "Solstice", Score: floatPtr(14.2)},
	}

	entries := HelmetEntries(records)
	require.Len(t, entries, len(records))
	for i := range records {
		assert.Equal(t, records[i].Brand, entries[i].Brand)
		assert.Equal(t, records[i].Model, entries[i].Model)
	}

	empty := HelmetEntries(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

// TestFloatCell tests the behavior of floatCell.
//
// It verifies:
//   - Renders values with the shortest decimal form
//   - Renders nil as an empty string
func TestFloatCell(t *testing.T) {
	assert.Equal(t, "99.95", floatCell(floatPtr(99.95)))
	assert.Equal(t, "100", floatCell(floatPtr(100.0)))
	assert.Equal(t, "", floatCell(nil))
}

// TestIntCell tests the behavior of intCell.
//
// It verifies:
//   - Renders values in decimal
//   - Renders nil as an empty string
func TestIntCell(t *testing.T) {
	assert.Equal(t, "4", intCell(intPtr(4)))
	assert.Equal(t, "", intCell(nil))
}
