package filtering

import (
	"github.com/velosafe/helmetscan/pkg/helmet"
)

// RecordFilter narrows a set of helmet records down to the ones a caller
// wants.
//
// Callers that only need "records in, records out" can depend on this
// interface and swap in a canned implementation under test.
//
// Example:
//
//	type mockFilter struct {
//	    result []helmet.Record
//	}
//	func (m *mockFilter) Filter(records []helmet.Record) []helmet.Record {
//	    return m.result
//	}
type RecordFilter interface {
	// Filter returns the records that pass, leaving the input untouched.
	//
	// Parameters:
	//   - records: Records to filter
	//
	// Returns:
	//   - []helmet.Record: The surviving records
	Filter(records []helmet.Record) []helmet.Record
}

// CriteriaFilter adapts a Criteria value to the RecordFilter interface.
//
// Example:
//
//	filter := &filtering.CriteriaFilter{Criteria: criteria}
//	result := filter.Filter(records)
type CriteriaFilter struct {
	Criteria Criteria
}

// Filter runs the criteria match and score sort over records.
//
// Parameters:
//   - records: Records to filter
//
// Returns:
//   - []helmet.Record: Matching records ordered by ascending score
func (f *CriteriaFilter) Filter(records []helmet.Record) []helmet.Record {
	return Apply(records, f.Criteria)
}

var _ RecordFilter = (*CriteriaFilter)(nil)
