// Package helmet defines the core helmet record model shared by the
// dataset parser, filter engine, and presenters.
package helmet

import "strings"

// Record represents a single helmet entry from the safety dataset.
//
// Optional numeric fields use pointers so that a missing value is
// distinguishable from a zero value. A nil Cost means the dataset did not
// carry a price, not that the helmet is free. Text fields use the empty
// string for missing values and Certifications may be empty.
//
// Fields:
//   - Brand: Manufacturer name (e.g., "Giro")
//   - Model: Product name (e.g., "Register MIPS")
//   - Style: Helmet category (e.g., "Road", "Urban", "Mountain")
//   - Cost: Price in dollars, nil when absent
//   - Score: Safety test score where lower is safer, nil when absent
//   - Rating: Star rating from 1 to 5, nil when absent
//   - Date: Test or release date as published
//   - Certifications: Safety standards the helmet meets (e.g., "CPSC")
type Record struct {
	// Brand is the manufacturer name.
	Brand string

	// Model is the product name.
	Model string

	// Style is the helmet category.
	Style string

	// Cost is the price in dollars. Nil when the dataset has no price.
	Cost *float64

	// Score is the safety test score. Lower scores indicate safer helmets.
	// Nil when the dataset has no score.
	Score *float64

	// Rating is the star rating from 1 to 5. Nil when absent.
	Rating *int

	// Date is the test or release date as published by the dataset.
	Date string

	// Certifications lists the safety standards the helmet meets.
	Certifications []string
}

// Name returns a display name combining brand and model.
//
// It performs the following operations:
//   - Joins brand and model with a space
//   - Trims the result so a missing half leaves no stray whitespace
//
// Returns:
//   - string: The combined name, empty when both halves are missing
func (r Record) Name() string {
	return strings.TrimSpace(r.Brand + " " + r.Model)
}

// HasCost reports whether the record carries a price.
//
// Returns:
//   - bool: true if Cost is present
func (r Record) HasCost() bool {
	return r.Cost != nil
}

// HasScore reports whether the record carries a safety score.
//
// Returns:
//   - bool: true if Score is present
func (r Record) HasScore() bool {
	return r.Score != nil
}

// HasRating reports whether the record carries a star rating.
//
// Returns:
//   - bool: true if Rating is present
func (r Record) HasRating() bool {
	return r.Rating != nil
}

// HasCertifications reports whether the record lists any certifications.
//
// Returns:
//   - bool: true if at least one certification is present
func (r Record) HasCertifications() bool {
	return len(r.Certifications) > 0
}
