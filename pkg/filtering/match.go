package filtering

import (
	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/utils"
)

// Predicate evaluates one active criterion against a record.
//
// Predicates are built from Criteria and combined with logical AND, so
// the matching policy for each field stays independently testable.
//
// Fields:
//   - Field: The criteria field this predicate enforces (e.g. "style")
//   - Match: Reports whether a record satisfies the criterion
type Predicate struct {
	// Field names the criteria field, used in exclusion diagnostics.
	Field string

	// Match reports whether the record satisfies the criterion.
	Match func(record helmet.Record) bool
}

// Predicates returns one predicate per active criterion, in flag
// declaration order. An empty Criteria yields no predicates, so every
// record matches.
//
// Returns:
//   - []Predicate: The active predicates; empty when IsEmpty
//
// Example:
//
//	for _, p := range criteria.Predicates() {
//	    if !p.Match(record) {
//	        fmt.Printf("excluded by %s\n", p.Field)
//	    }
//	}
func (c Criteria) Predicates() []Predicate {
	var preds []Predicate

	if c.HasStyle() {
		style := c.Style
		preds = append(preds, Predicate{Field: "style", Match: func(r helmet.Record) bool {
			return MatchesStyle(r, style)
		}})
	}
	if c.HasMaxCost() {
		max := *c.MaxCost
		preds = append(preds, Predicate{Field: "cost", Match: func(r helmet.Record) bool {
			return MatchesMaxCost(r, max)
		}})
	}
	if c.HasMaxScore() {
		max := *c.MaxScore
		preds = append(preds, Predicate{Field: "score", Match: func(r helmet.Record) bool {
			return MatchesMaxScore(r, max)
		}})
	}
	if c.HasBrand() {
		brand := c.Brand
		preds = append(preds, Predicate{Field: "brand", Match: func(r helmet.Record) bool {
			return MatchesBrand(r, brand)
		}})
	}
	if c.HasRating() {
		rating := *c.Rating
		preds = append(preds, Predicate{Field: "rating", Match: func(r helmet.Record) bool {
			return MatchesRating(r, rating)
		}})
	}
	if c.HasDate() {
		date := c.Date
		preds = append(preds, Predicate{Field: "date", Match: func(r helmet.Record) bool {
			return MatchesDate(r, date)
		}})
	}
	if c.HasCertification() {
		cert := c.Certification
		preds = append(preds, Predicate{Field: "certifications", Match: func(r helmet.Record) bool {
			return MatchesCertification(r, cert)
		}})
	}

	return preds
}

// MatchesStyle tests the style criterion against a record.
//
// The policy is case-insensitive substring containment: "road" matches
// "Road" and "Road (drop bar)". A record without a style never matches.
//
// Parameters:
//   - r: The record to test
//   - style: The style filter value
//
// Returns:
//   - bool: true if the record's style contains the filter value
func MatchesStyle(r helmet.Record, style string) bool {
	return r.Style != "" && utils.SubstringIgnoreCase(r.Style, style)
}

// MatchesBrand tests the brand criterion against a record.
//
// The policy is case-insensitive substring containment: "spec" matches
// "Specialized". A record without a brand never matches.
//
// Parameters:
//   - r: The record to test
//   - brand: The brand filter value
//
// Returns:
//   - bool: true if the record's brand contains the filter value
func MatchesBrand(r helmet.Record, brand string) bool {
	return r.Brand != "" && utils.SubstringIgnoreCase(r.Brand, brand)
}

// MatchesDate tests the date criterion against a record.
//
// The policy is case-insensitive substring containment, so "2023"
// matches both "2023" and "March 2023". A record without a date never
// matches.
//
// Parameters:
//   - r: The record to test
//   - date: The date filter value
//
// Returns:
//   - bool: true if the record's date contains the filter value
func MatchesDate(r helmet.Record, date string) bool {
	return r.Date != "" && utils.SubstringIgnoreCase(r.Date, date)
}

// MatchesMaxCost tests the cost ceiling against a record.
//
// A record without a cost never matches, regardless of the ceiling.
//
// Parameters:
//   - r: The record to test
//   - max: Inclusive cost ceiling in dollars
//
// Returns:
//   - bool: true if the record has a cost and it is at most max
func MatchesMaxCost(r helmet.Record, max float64) bool {
	return r.HasCost() && *r.Cost <= max
}

// MatchesMaxScore tests the score ceiling against a record.
//
// A record without a score never matches, regardless of the ceiling.
//
// Parameters:
//   - r: The record to test
//   - max: Inclusive safety score ceiling
//
// Returns:
//   - bool: true if the record has a score and it is at most max
func MatchesMaxScore(r helmet.Record, max float64) bool {
	return r.HasScore() && *r.Score <= max
}

// MatchesRating tests the rating criterion against a record.
//
// A record without a rating never matches.
//
// Parameters:
//   - r: The record to test
//   - rating: Exact star rating to match
//
// Returns:
//   - bool: true if the record has a rating equal to the filter value
func MatchesRating(r helmet.Record, rating int) bool {
	return r.HasRating() && *r.Rating == rating
}

// MatchesCertification tests the certification criterion against a record.
//
// The certification list must contain a token equal to the filter value,
// compared case-insensitively. A record without certifications never
// matches.
//
// Parameters:
//   - r: The record to test
//   - cert: Certification token to require (e.g. "CPSC")
//
// Returns:
//   - bool: true if the record's certifications contain the token
func MatchesCertification(r helmet.Record, cert string) bool {
	return utils.ContainsIgnoreCase(r.Certifications, cert)
}
