// Package display renders helmet query results for the terminal.
//
// The default rendering is the enumerated report produced by PrintReport:
// a header with the match count, one block per helmet, and a trailing
// filter summary. PrintTable renders the same records as an aligned
// column table instead.
//
// Value Formatting:
//
// Use formatting functions for consistent value display:
//
//	score := display.FormatScore(record.Score)  // Returns "N/A" when absent
//	name := display.SafeName(record.Brand)      // Returns "Unknown" when empty
//
// Messages:
//
// Warnings raised while fetching and parsing are collected with a
// WarningCollector and replayed after the main output:
//
//	collector := display.NewWarningCollector()
//	restore := warnings.SetWarningWriter(collector)
//	// ... fetch and parse ...
//	restore()
//	display.PrintWarnings(os.Stderr, collector.Messages())
//
// For machine-readable output, use the pkg/output package directly.
package display
