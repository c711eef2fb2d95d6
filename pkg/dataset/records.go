package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/velosafe/helmetscan/pkg/helmet"
	"github.com/velosafe/helmetscan/pkg/utils"
	"github.com/velosafe/helmetscan/pkg/verbose"
	"github.com/velosafe/helmetscan/pkg/warnings"
)

// Dataset field names as they appear in the upstream document.
const (
	fieldBrand          = "brand"
	fieldModel          = "model"
	fieldStyle          = "style"
	fieldCost           = "cost"
	fieldScore          = "score"
	fieldRating         = "rating"
	fieldDate           = "date"
	fieldCertifications = "certifications"
)

// knownFields lists every field BuildRecords consumes. Anything else in
// an entry is reported through verbose diagnostics and ignored.
var knownFields = map[string]struct{}{
	fieldBrand:          {},
	fieldModel:          {},
	fieldStyle:          {},
	fieldCost:           {},
	fieldScore:          {},
	fieldRating:         {},
	fieldDate:           {},
	fieldCertifications: {},
}

// BuildRecords coerces decoded dataset entries into helmet records.
//
// Coercion is tolerant: a field that cannot be converted is treated as
// missing and reported as a warning, never as a fatal error. Records are
// never dropped, so the output length always equals the input length.
//
// Parameters:
//   - items: Decoded dataset entries in document order
//
// Returns:
//   - []helmet.Record: One record per entry, fields nil where absent or unusable
func BuildRecords(items []orderedmap.OrderedMap) []helmet.Record {
	records := make([]helmet.Record, 0, len(items))
	for i := range items {
		records = append(records, buildRecord(&items[i], i))
	}
	return records
}

// buildRecord converts one dataset entry into a helmet record.
func buildRecord(item *orderedmap.OrderedMap, index int) helmet.Record {
	label := recordLabel(item, index)

	record := helmet.Record{
		Brand:          textField(item, fieldBrand, label),
		Model:          textField(item, fieldModel, label),
		Style:          textField(item, fieldStyle, label),
		Date:           textField(item, fieldDate, label),
		Cost:           floatField(item, fieldCost, label),
		Score:          floatField(item, fieldScore, label),
		Rating:         ratingField(item, label),
		Certifications: certificationsField(item, label),
	}

	for _, key := range item.Keys() {
		if _, ok := knownFields[key]; !ok {
			verbose.UnknownField(label, key)
		}
	}

	return record
}

// recordLabel derives a human-readable name for warnings about one entry.
// It prefers brand and model text and falls back to the 1-based position.
func recordLabel(item *orderedmap.OrderedMap, index int) string {
	brand, _ := asText(rawValue(item, fieldBrand))
	model, _ := asText(rawValue(item, fieldModel))
	label := strings.TrimSpace(brand + " " + model)
	if label == "" {
		return fmt.Sprintf("#%d", index+1)
	}
	return label
}

// rawValue returns the raw decoded value for a key, or nil when absent.
func rawValue(item *orderedmap.OrderedMap, key string) interface{} {
	v, ok := item.Get(key)
	if !ok {
		return nil
	}
	return v
}

// asText converts a scalar JSON value to trimmed text.
// The second return is false for values with no text form.
func asText(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// textField reads a free-form text field such as brand or style.
func textField(item *orderedmap.OrderedMap, key, label string) string {
	v := rawValue(item, key)
	if v == nil {
		return ""
	}

	text, ok := asText(v)
	if !ok {
		warnings.Warnf("record %s: ignoring %s value %v, treating as missing\n", label, key, v)
		return ""
	}
	return text
}

// floatField reads a numeric field, tolerating currency-formatted strings.
func floatField(item *orderedmap.OrderedMap, key, label string) *float64 {
	v := rawValue(item, key)
	if v == nil {
		return nil
	}

	f, err := toFloat(v)
	if err != nil {
		warnings.Warnf("record %s: invalid %s value %v, treating as missing\n", label, key, v)
		return nil
	}
	return &f
}

// toFloat converts a decoded JSON value to a float.
// Strings may carry a leading dollar sign and thousands separators,
// as the upstream cost values do.
func toFloat(v interface{}) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		cleaned := strings.TrimSpace(t)
		cleaned = strings.ReplaceAll(cleaned, "$", "")
		cleaned = strings.ReplaceAll(cleaned, ",", "")
		return strconv.ParseFloat(cleaned, 64)
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
}

// ratingField reads the star rating. Only whole numbers are accepted;
// anything else is treated as missing with a warning.
func ratingField(item *orderedmap.OrderedMap, label string) *int {
	v := rawValue(item, fieldRating)
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case float64:
		if t != math.Trunc(t) {
			warnings.Warnf("record %s: invalid rating value %v, treating as missing\n", label, t)
			return nil
		}
		n := int(t)
		return &n
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			warnings.Warnf("record %s: invalid rating value %q, treating as missing\n", label, t)
			return nil
		}
		return &n
	default:
		warnings.Warnf("record %s: invalid rating value %v, treating as missing\n", label, v)
		return nil
	}
}

// certificationsField reads the certification tokens. The upstream data
// uses an array of strings, but a single comma-separated string is
// tolerated as well.
func certificationsField(item *orderedmap.OrderedMap, label string) []string {
	v := rawValue(item, fieldCertifications)
	if v == nil {
		return nil
	}

	switch t := v.(type) {
	case []interface{}:
		certs := make([]string, 0, len(t))
		for _, entry := range t {
			text, ok := asText(entry)
			if !ok || text == "" {
				warnings.Warnf("record %s: skipping certification entry %v\n", label, entry)
				continue
			}
			certs = append(certs, text)
		}
		if len(certs) == 0 {
			return nil
		}
		return certs
	case string:
		certs := utils.TrimAndSplit(t, ",")
		if len(certs) == 0 {
			return nil
		}
		return certs
	default:
		warnings.Warnf("record %s: ignoring certifications value %v\n", label, v)
		return nil
	}
}
