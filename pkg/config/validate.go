package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/velosafe/helmetscan/pkg/errors"
	"github.com/velosafe/helmetscan/pkg/output"
	"github.com/velosafe/helmetscan/pkg/utils"
)

// ValidateConfigFile validates raw YAML config data without loading it.
//
// This checks the file structurally: the document must be a mapping, every
// key must be a known field, and every value must have the right type and a
// sensible value. Unknown fields are errors so typos fail fast.
//
// Parameters:
//   - data: raw YAML config file contents
//
// Returns:
//   - *errors.ValidationResult: collected errors and warnings
func ValidateConfigFile(data []byte) *errors.ValidationResult {
	result := errors.NewValidationResult()

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		result.AddError(&errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Message:  fmt.Sprintf("invalid YAML: %v", err),
		})
		return result
	}

	if len(root.Content) == 0 {
		result.AddWarning("config file is empty, defaults apply")
		return result
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		result.AddError(&errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Message:  "top-level config must be a mapping",
			Expected: "key: value pairs",
		})
		return result
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		keyNode := doc.Content[i]
		valueNode := doc.Content[i+1]
		validateField(result, keyNode, valueNode)
	}

	return result
}

// validateField checks a single top-level key/value pair from the config file.
//
// Parameters:
//   - result: the validation result to append findings to
//   - keyNode: the YAML node holding the field name
//   - valueNode: the YAML node holding the field value
func validateField(result *errors.ValidationResult, keyNode, valueNode *yaml.Node) {
	key := keyNode.Value

	if !isKnownField(key) {
		result.AddError(&errors.ValidationError{
			Category:   errors.ValidationCategoryConfig,
			Field:      key,
			Message:    fmt.Sprintf("unknown field (line %d)", keyNode.Line),
			ValidKeys:  knownFields,
			DocSection: "fields",
		})
		return
	}

	switch key {
	case "dataset_url":
		if !isScalarString(valueNode) {
			result.AddError(typeError(key, valueNode, "a URL string"))
			return
		}
		if err := checkDatasetURL(valueNode.Value); err != nil {
			result.AddError(err)
		}
	case "user_agent":
		if !isScalarString(valueNode) {
			result.AddError(typeError(key, valueNode, "a string"))
		}
	case "timeout_seconds":
		n, ok := scalarInt(valueNode)
		if !ok {
			result.AddError(typeError(key, valueNode, "an integer number of seconds"))
			return
		}
		if n <= 0 {
			result.AddError(errors.NewConfigValidationError(key, "must be a positive number of seconds"))
		}
	case "max_response_bytes":
		n, ok := scalarInt(valueNode)
		if !ok {
			result.AddError(typeError(key, valueNode, "an integer number of bytes"))
			return
		}
		if n <= 0 {
			result.AddError(errors.NewConfigValidationError(key, "must be a positive number of bytes"))
		}
	case "output":
		if !isScalarString(valueNode) {
			result.AddError(typeError(key, valueNode, "an output format name"))
			return
		}
		if !output.IsValidFormat(valueNode.Value) {
			result.AddError(&errors.ValidationError{
				Category:  errors.ValidationCategoryConfig,
				Field:     key,
				Message:   fmt.Sprintf("unknown output format %q", valueNode.Value),
				ValidKeys: output.ValidFormatNames(),
			})
		}
	}
}

// ValidateConfig checks the values of an effective configuration.
//
// LoadConfig runs this after merging files, defaults, and environment
// overrides, so a bad value is caught no matter which layer set it.
//
// Parameters:
//   - cfg: the configuration to check
//
// Returns:
//   - *errors.ValidationResult: collected errors
func ValidateConfig(cfg *Config) *errors.ValidationResult {
	result := errors.NewValidationResult()

	if cfg.DatasetURL == "" {
		result.AddError(errors.NewConfigValidationError("dataset_url", "must not be empty"))
	} else if err := checkDatasetURL(cfg.DatasetURL); err != nil {
		result.AddError(err)
	}

	if cfg.TimeoutSeconds <= 0 {
		result.AddError(errors.NewConfigValidationError("timeout_seconds", "must be a positive number of seconds"))
	}

	if cfg.MaxResponseBytes <= 0 {
		result.AddError(errors.NewConfigValidationError("max_response_bytes", "must be a positive number of bytes"))
	}

	if cfg.Output != "" && !output.IsValidFormat(cfg.Output) {
		result.AddError(&errors.ValidationError{
			Category:  errors.ValidationCategoryConfig,
			Field:     "output",
			Message:   fmt.Sprintf("unknown output format %q", cfg.Output),
			ValidKeys: output.ValidFormatNames(),
		})
	}

	return result
}

// checkDatasetURL verifies a dataset URL is absolute with an http(s) scheme.
//
// Parameters:
//   - raw: the URL string to check
//
// Returns:
//   - *errors.ValidationError: the failure, or nil when the URL is usable
func checkDatasetURL(raw string) *errors.ValidationError {
	u, err := url.Parse(raw)
	if err != nil {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    "dataset_url",
			Message:  fmt.Sprintf("invalid URL: %v", err),
			Expected: "an absolute http(s) URL",
		}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    "dataset_url",
			Message:  fmt.Sprintf("unsupported URL %q", raw),
			Expected: "an absolute http(s) URL",
		}
	}
	return nil
}

// isKnownField reports whether key is an accepted top-level config field.
func isKnownField(key string) bool {
	return utils.Contains(knownFields, key)
}

// isScalarString reports whether the node is a plain YAML string scalar.
func isScalarString(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!str"
}

// scalarInt extracts an integer from a YAML scalar node.
//
// Returns:
//   - int64: the parsed value
//   - bool: true when the node held an integer
func scalarInt(node *yaml.Node) (int64, bool) {
	if node.Kind != yaml.ScalarNode || node.Tag != "!!int" {
		return 0, false
	}
	n, err := strconv.ParseInt(node.Value, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// typeError builds a ValidationError for a field holding the wrong YAML type.
func typeError(field string, node *yaml.Node, expected string) *errors.ValidationError {
	actual := strings.TrimPrefix(node.Tag, "!!")
	return &errors.ValidationError{
		Category: errors.ValidationCategoryConfig,
		Field:    field,
		Message:  fmt.Sprintf("wrong type %s (line %d)", actual, node.Line),
		Expected: expected,
	}
}
