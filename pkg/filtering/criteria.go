package filtering

import (
	"fmt"
	"strconv"

	"github.com/velosafe/helmetscan/pkg/constants"
	"github.com/velosafe/helmetscan/pkg/errors"
)

// Criteria holds the optional filter values for one query.
//
// Every field is independently optional: a zero string or nil pointer
// imposes no constraint. Active criteria combine with logical AND.
//
// Fields:
//   - Style: Substring match against the helmet style, case-insensitive
//   - Brand: Substring match against the brand name, case-insensitive
//   - Date: Substring match against the listing date, case-insensitive
//   - Certification: Token the certification list must contain, case-insensitive
//   - MaxCost: Inclusive upper bound on cost in dollars
//   - MaxScore: Inclusive upper bound on the safety score
//   - Rating: Exact star rating to match
//
// Example:
//
//	criteria := filtering.Criteria{}.
//	    WithStyle("Road").
//	    WithMaxScore(15)
//	matches := filtering.Apply(records, criteria)
type Criteria struct {
	// Style filters by helmet style (e.g. "Road", "Mountain").
	Style string

	// Brand filters by brand name.
	Brand string

	// Date filters by listing date or year.
	Date string

	// Certification filters by a single certification token (e.g. "CPSC").
	Certification string

	// MaxCost is the inclusive cost ceiling in dollars. Nil means no limit.
	MaxCost *float64

	// MaxScore is the inclusive safety score ceiling. Nil means no limit.
	// Lower scores are better, so this bounds the result to safer helmets.
	MaxScore *float64

	// Rating is the exact star rating to match. Nil means any rating.
	Rating *int
}

// Criterion is one active filter rendered for display.
//
// Fields:
//   - Label: Human-readable criterion name (e.g. "Maximum Cost")
//   - Value: The supplied filter value as text
type Criterion struct {
	Label string
	Value string
}

// IsEmpty returns true if no criteria are set.
//
// Returns:
//   - bool: true if every field is unset (all records would match)
//
// Example:
//
//	criteria := filtering.Criteria{}
//	criteria.IsEmpty()  // true
//
//	criteria = criteria.WithBrand("Giro")
//	criteria.IsEmpty()  // false
func (c Criteria) IsEmpty() bool {
	return c.Style == "" &&
		c.Brand == "" &&
		c.Date == "" &&
		c.Certification == "" &&
		c.MaxCost == nil &&
		c.MaxScore == nil &&
		c.Rating == nil
}

// HasStyle returns true if a style filter is set.
//
// Returns:
//   - bool: true if Style is set to a non-empty value
func (c Criteria) HasStyle() bool {
	return c.Style != ""
}

// HasBrand returns true if a brand filter is set.
//
// Returns:
//   - bool: true if Brand is set to a non-empty value
func (c Criteria) HasBrand() bool {
	return c.Brand != ""
}

// HasDate returns true if a date filter is set.
//
// Returns:
//   - bool: true if Date is set to a non-empty value
func (c Criteria) HasDate() bool {
	return c.Date != ""
}

// HasCertification returns true if a certification filter is set.
//
// Returns:
//   - bool: true if Certification is set to a non-empty value
func (c Criteria) HasCertification() bool {
	return c.Certification != ""
}

// HasMaxCost returns true if a cost ceiling is set.
//
// Returns:
//   - bool: true if MaxCost is non-nil
func (c Criteria) HasMaxCost() bool {
	return c.MaxCost != nil
}

// HasMaxScore returns true if a score ceiling is set.
//
// Returns:
//   - bool: true if MaxScore is non-nil
func (c Criteria) HasMaxScore() bool {
	return c.MaxScore != nil
}

// HasRating returns true if a rating filter is set.
//
// Returns:
//   - bool: true if Rating is non-nil
func (c Criteria) HasRating() bool {
	return c.Rating != nil
}

// WithStyle returns a copy with the style filter set.
//
// Parameters:
//   - style: Style filter value
//
// Returns:
//   - Criteria: New Criteria with updated Style field
func (c Criteria) WithStyle(style string) Criteria {
	c.Style = style
	return c
}

// WithBrand returns a copy with the brand filter set.
//
// Parameters:
//   - brand: Brand filter value
//
// Returns:
//   - Criteria: New Criteria with updated Brand field
func (c Criteria) WithBrand(brand string) Criteria {
	c.Brand = brand
	return c
}

// WithDate returns a copy with the date filter set.
//
// Parameters:
//   - date: Date filter value
//
// Returns:
//   - Criteria: New Criteria with updated Date field
func (c Criteria) WithDate(date string) Criteria {
	c.Date = date
	return c
}

// WithCertification returns a copy with the certification filter set.
//
// Parameters:
//   - cert: Certification token to require
//
// Returns:
//   - Criteria: New Criteria with updated Certification field
func (c Criteria) WithCertification(cert string) Criteria {
	c.Certification = cert
	return c
}

// WithMaxCost returns a copy with the cost ceiling set.
//
// Parameters:
//   - max: Inclusive cost ceiling in dollars
//
// Returns:
//   - Criteria: New Criteria with updated MaxCost field
func (c Criteria) WithMaxCost(max float64) Criteria {
	c.MaxCost = &max
	return c
}

// WithMaxScore returns a copy with the score ceiling set.
//
// Parameters:
//   - max: Inclusive safety score ceiling
//
// Returns:
//   - Criteria: New Criteria with updated MaxScore field
func (c Criteria) WithMaxScore(max float64) Criteria {
	c.MaxScore = &max
	return c
}

// WithRating returns a copy with the rating filter set.
//
// Parameters:
//   - rating: Exact star rating to match
//
// Returns:
//   - Criteria: New Criteria with updated Rating field
func (c Criteria) WithRating(rating int) Criteria {
	c.Rating = &rating
	return c
}

// Validate checks the criteria values before any filtering happens.
//
// It performs the following operations:
// 1. Rejects negative cost ceilings
// 2. Rejects negative score ceilings
// 3. Rejects ratings outside the 1 to 5 star range
//
// Returns:
//   - *errors.ValidationResult: Collected validation errors, never nil
//
// Example:
//
//	if result := criteria.Validate(); result.HasErrors() {
//	    return result.Errors[0]
//	}
func (c Criteria) Validate() *errors.ValidationResult {
	result := errors.NewValidationResult()

	if c.MaxCost != nil && *c.MaxCost < 0 {
		result.AddError(errors.NewCriteriaValidationError(
			"cost", "must not be negative", "a non-negative dollar amount"))
	}

	if c.MaxScore != nil && *c.MaxScore < 0 {
		result.AddError(errors.NewCriteriaValidationError(
			"score", "must not be negative", "a non-negative score threshold"))
	}

	if c.Rating != nil && (*c.Rating < constants.RatingMin || *c.Rating > constants.RatingMax) {
		result.AddError(errors.NewCriteriaValidationError(
			"rating",
			fmt.Sprintf("must be between %d and %d", constants.RatingMin, constants.RatingMax),
			fmt.Sprintf("a star rating from %d to %d", constants.RatingMin, constants.RatingMax)))
	}

	return result
}

// Active returns the set criteria rendered for the report summary,
// in flag declaration order.
//
// Returns:
//   - []Criterion: One entry per active criterion; empty when IsEmpty
//
// Example:
//
//	for _, crit := range criteria.Active() {
//	    fmt.Printf("%s: %s\n", crit.Label, crit.Value)
//	}
func (c Criteria) Active() []Criterion {
	var active []Criterion

	if c.HasStyle() {
		active = append(active, Criterion{Label: "Style", Value: c.Style})
	}
	if c.HasMaxCost() {
		active = append(active, Criterion{Label: "Maximum Cost", Value: formatThreshold(*c.MaxCost)})
	}
	if c.HasMaxScore() {
		active = append(active, Criterion{Label: "Maximum Score", Value: formatThreshold(*c.MaxScore)})
	}
	if c.HasBrand() {
		active = append(active, Criterion{Label: "Brand", Value: c.Brand})
	}
	if c.HasRating() {
		active = append(active, Criterion{Label: "Rating", Value: strconv.Itoa(*c.Rating)})
	}
	if c.HasDate() {
		active = append(active, Criterion{Label: "Date", Value: c.Date})
	}
	if c.HasCertification() {
		active = append(active, Criterion{Label: "Certifications", Value: c.Certification})
	}

	return active
}

// formatThreshold renders a numeric ceiling without trailing zeros.
func formatThreshold(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
