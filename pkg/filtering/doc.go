// Package filtering implements the helmet query engine.
//
// The engine takes parsed helmet records and a set of optional criteria,
// keeps every record that satisfies all active criteria, and returns the
// survivors sorted ascending by safety score (lower is better). Records
// missing a field used by an active criterion never match it, and records
// missing a score sort after all scored records.
//
// Basic Filtering:
//
// Use Criteria to specify filter values:
//
//	criteria := filtering.Criteria{}.
//	    WithStyle("Road").
//	    WithMaxCost(150).
//	    WithCertification("CPSC")
//	matches := filtering.Apply(records, criteria)
//
// Matching Policy:
//
// Text fields (style, brand, date) use case-insensitive substring
// containment, so --brand Spec matches "Specialized". Cost and score are
// inclusive ceilings. Rating is an exact match. Certification requires a
// case-insensitively equal token in the record's certification list.
//
// Each active criterion becomes an independent predicate; see Predicates
// for per-field testing and the exported Matches* functions for the
// policy of a single field.
//
// Validation:
//
// Criteria values are validated before filtering begins:
//
//	if result := criteria.Validate(); result.HasErrors() {
//	    return result.Errors[0]
//	}
package filtering
