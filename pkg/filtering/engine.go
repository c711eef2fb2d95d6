package filtering

import (
	"sort"

	"github.com/velosafe/helmetscan/pkg/constants"
	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/verbose"
)

// Apply filters records by the given criteria and sorts the survivors
// ascending by safety score.
//
// It performs the following operations:
// 1. Builds one predicate per active criterion
// 2. Keeps every record that satisfies all predicates
// 3. Sorts the survivors by score, records without a score last
// 4. Emits verbose diagnostics for excluded records and totals
//
// The input slice is never mutated. Applying the same criteria to an
// already filtered and sorted result returns an identical sequence.
//
// Parameters:
//   - records: The records to filter, in dataset order
//   - criteria: The filter values; an empty Criteria keeps everything
//
// Returns:
//   - []helmet.Record: The matching records sorted by score, never nil
//
// Example:
//
//	matches := filtering.Apply(records, filtering.Criteria{}.WithStyle("Road"))
func Apply(records []helmet.Record, criteria Criteria) []helmet.Record {
	preds := criteria.Predicates()

	filtered := make([]helmet.Record, 0, len(records))
	for _, record := range records {
		if field, ok := matchesAll(record, preds); ok {
			filtered = append(filtered, record)
		} else {
			verbose.RecordExcluded(displayName(record), field)
		}
	}

	sorted := SortRecordsByScore(filtered)
	verbose.FilterApplied(len(records), len(sorted))
	return sorted
}

// matchesAll tests a record against every predicate.
// On failure it returns the field of the first predicate that rejected
// the record.
func matchesAll(record helmet.Record, preds []Predicate) (string, bool) {
	for _, p := range preds {
		if !p.Match(record) {
			return p.Field, false
		}
	}
	return "", true
}

// displayName labels a record for diagnostics.
func displayName(record helmet.Record) string {
	if name := record.Name(); name != "" {
		return name
	}
	return constants.PlaceholderUnknown
}

// SortRecordsByScore returns a copy of records sorted ascending by
// safety score. Lower scores are better, so the safest helmets come
// first. Records without a score sort after all scored records. The
// sort is stable: ties and unscored records keep their input order.
//
// Parameters:
//   - records: The records to sort
//
// Returns:
//   - []helmet.Record: A sorted copy; the input is not modified
func SortRecordsByScore(records []helmet.Record) []helmet.Record {
	sorted := make([]helmet.Record, len(records))
	copy(sorted, records)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Score, sorted[j].Score
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return sorted
}
