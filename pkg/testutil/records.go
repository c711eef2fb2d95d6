package testutil

import (
	"github.com/velosafe/helmetscan/pkg/helmet"
)

// RecordBuilder provides a fluent API for building test helmet records.
//
// Use this builder to construct Record values for testing purposes
// without needing to set all fields manually.
type RecordBuilder struct {
	record helmet.Record
}

// NewRecord creates a new RecordBuilder with the given brand.
//
// Initializes a builder with the brand set and all other fields empty
// or at their zero values, so optional fields stay absent unless set.
//
// Parameters:
//   - brand: Brand name to set
//
// Returns:
//   - *RecordBuilder: New builder instance ready for method chaining
func NewRecord(brand string) *RecordBuilder {
	return &RecordBuilder{
		record: helmet.Record{
			Brand: brand,
		},
	}
}

// WithModel sets the model name.
//
// Parameters:
//   - model: Model name (e.g., "Register MIPS")
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithModel(model string) *RecordBuilder {
	b.record.Model = model
	return b
}

// WithStyle sets the helmet style.
//
// Parameters:
//   - style: Style category (e.g., "Road", "Mountain")
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithStyle(style string) *RecordBuilder {
	b.record.Style = style
	return b
}

// WithCost sets the cost in dollars.
//
// Parameters:
//   - cost: Cost value
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithCost(cost float64) *RecordBuilder {
	b.record.Cost = &cost
	return b
}

// WithScore sets the safety score. Lower is better.
//
// Parameters:
//   - score: Safety score value
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithScore(score float64) *RecordBuilder {
	b.record.Score = &score
	return b
}

// WithRating sets the star rating.
//
// Parameters:
//   - rating: Star rating, normally 1 to 5
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithRating(rating int) *RecordBuilder {
	b.record.Rating = &rating
	return b
}

// WithDate sets the listing date.
//
// Parameters:
//   - date: Date text (e.g., "2023")
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithDate(date string) *RecordBuilder {
	b.record.Date = date
	return b
}

// WithCertifications sets the certification tokens.
//
// Parameters:
//   - certs: Certification tokens (e.g., "CPSC", "CE")
//
// Returns:
//   - *RecordBuilder: Self for method chaining
func (b *RecordBuilder) WithCertifications(certs ...string) *RecordBuilder {
	b.record.Certifications = certs
	return b
}

// Build returns the constructed record.
//
// Returns:
//   - helmet.Record: The record with all configured fields
func (b *RecordBuilder) Build() helmet.Record {
	return b.record
}

// RoadHelmet creates a fully populated road helmet record.
//
// Parameters:
//   - brand: Brand name
//   - model: Model name
//   - score: Safety score
//
// Returns:
//   - helmet.Record: Record with style "Road", cost, rating, date, and CPSC certification
func RoadHelmet(brand, model string, score float64) helmet.Record {
	return NewRecord(brand).
		WithModel(model).
		WithStyle("Road").
		WithCost(99.95).
		WithScore(score).
		WithRating(4).
		WithDate("2023").
		WithCertifications("CPSC").
		Build()
}

// MountainHelmet creates a fully populated mountain helmet record.
//
// Parameters:
//   - brand: Brand name
//   - model: Model name
//   - score: Safety score
//
// Returns:
//   - helmet.Record: Record with style "Mountain", cost, rating, date, and certifications
func MountainHelmet(brand, model string, score float64) helmet.Record {
	return NewRecord(brand).
		WithModel(model).
		WithStyle("Mountain").
		WithCost(149.95).
		WithScore(score).
		WithRating(5).
		WithDate("2024").
		WithCertifications("CPSC", "MIPS").
		Build()
}

// SampleRecords returns a small realistic dataset for filter and
// display tests. The set covers both styles, a budget helmet, and a
// record with no score so missing-score ordering can be asserted.
//
// Returns:
//   - []helmet.Record: Five records in unsorted dataset order
func SampleRecords() []helmet.Record {
	return []helmet.Record{
		RoadHelmet("Trek", "Solstice", 14.2),
		NewRecord("Specialized").
			WithModel("Align II").
			WithStyle("Road").
			WithCost(50).
			WithScore(10.5).
			WithRating(5).
			WithDate("2022").
			WithCertifications("CPSC", "MIPS").
			Build(),
		MountainHelmet("Giro", "Fixture MIPS", 12.8),
		NewRecord("Bell").
			WithModel("Span").
			WithStyle("Urban").
			WithCost(45).
			WithRating(3).
			WithDate("2021").
			Build(),
		RoadHelmet("Giro", "Register MIPS", 10.9),
	}
}
