// Package dataset turns the raw JavaScript document served by the Virginia
// Tech helmet endpoint into typed helmet records.
//
// The upstream file assigns an array literal to a const named
// bicycleDataRaw. The literal is almost JSON: object keys are unquoted and
// strings use single quotes. Parsing proceeds in three steps: extract the
// array literal, normalize it to strict JSON, then decode and coerce each
// entry into a helmet.Record.
package dataset

import (
	"encoding/json"
	"regexp"

	"github.com/iancoleman/orderedmap"

	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/verbose"
)

var (
	// arrayPattern locates the array literal assigned to bicycleDataRaw.
	// The (?s) flag lets .*? span the multiline literal; the lazy
	// quantifier stops at the first ]; terminator.
	arrayPattern = regexp.MustCompile(`(?s)const\s+bicycleDataRaw\s*=\s*(\[.*?\]);`)

	// keyPattern quotes bare object keys. It matches a word followed by a
	// colon, which on this dataset only occurs at key positions.
	keyPattern = regexp.MustCompile(`(\w+)(\s*:)`)

	// quotePattern rewrites single-quoted strings as double-quoted ones.
	quotePattern = regexp.MustCompile(`'([^']*)'`)
)

// jsonUnmarshalFunc is a variable that holds the json.Unmarshal function.
// This allows for dependency injection during testing.
var jsonUnmarshalFunc = json.Unmarshal

// Extract locates the bicycleDataRaw array literal in a fetched document.
//
// Parameters:
//   - body: The raw JavaScript document as served by the endpoint
//
// Returns:
//   - string: The array literal including the surrounding brackets
//   - error: A ParseError when no assignment is present
func Extract(body string) (string, error) {
	match := arrayPattern.FindStringSubmatch(body)
	if match == nil {
		return "", errors.NewParseError("could not locate bicycle data in response", nil)
	}
	return match[1], nil
}

// Normalize rewrites a JavaScript array literal into strict JSON.
//
// It performs the following operations:
// 1. Quotes bare object keys (brand: -> "brand":)
// 2. Converts single-quoted strings to double-quoted ones
//
// Parameters:
//   - js: The array literal as extracted from the document
//
// Returns:
//   - string: The literal rewritten as JSON
func Normalize(js string) string {
	out := keyPattern.ReplaceAllString(js, `"$1"$2`)
	out = quotePattern.ReplaceAllString(out, `"$1"`)
	return out
}

// Decode unmarshals a JSON array into ordered maps.
//
// Ordered maps preserve the upstream key order, so diagnostics about
// unrecognized fields always name them in document order.
//
// Parameters:
//   - data: The normalized JSON array
//
// Returns:
//   - []orderedmap.OrderedMap: One map per dataset entry
//   - error: A ParseError when the JSON is invalid
func Decode(data string) ([]orderedmap.OrderedMap, error) {
	var items []orderedmap.OrderedMap
	if err := jsonUnmarshalFunc([]byte(data), &items); err != nil {
		return nil, errors.NewParseError("invalid JSON after normalization", err)
	}
	return items, nil
}

// Parse converts a fetched document into helmet records.
//
// It performs the following operations:
// 1. Extracts the bicycleDataRaw array literal
// 2. Normalizes the literal to strict JSON
// 3. Decodes the JSON into ordered maps
// 4. Coerces each map into a helmet.Record
//
// Parameters:
//   - body: The raw JavaScript document as served by the endpoint
//
// Returns:
//   - []helmet.Record: The parsed records in document order
//   - error: A ParseError for malformed documents, or ErrEmptyDataset
//     when the document parses cleanly but holds zero records
func Parse(body string) ([]helmet.Record, error) {
	literal, err := Extract(body)
	if err != nil {
		return nil, err
	}

	items, err := Decode(Normalize(literal))
	if err != nil {
		return nil, err
	}

	records := BuildRecords(items)
	verbose.DatasetParsed(len(records))

	if len(records) == 0 {
		return nil, errors.ErrEmptyDataset
	}
	return records, nil
}
