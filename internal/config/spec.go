// Package config provides functionality for parsing and validating
// filter specification files (JSON/YAML).
// This file converts validated raw maps into the typed FilterSpec.
package config

import (
	"fmt"
	"time"
)

// FilterSpec represents a complete, typed filter specification.
type FilterSpec struct {
	// Name is the optional human-readable name of the spec
	Name string `json:"name,omitempty"`

	// Description provides additional context about the spec
	Description string `json:"description,omitempty"`

	// Rules is the ordered list of exclusion rules; list order is
	// evaluation order
	Rules []RuleConfig `json:"rules"`

	// Corrections configures near-duplicate correction detection
	Corrections CorrectionsConfig `json:"corrections"`

	// Output configures result serialization
	Output OutputConfig `json:"output"`
}

// RuleConfig represents the configuration for a single exclusion rule.
type RuleConfig struct {
	// Type identifies the rule type (e.g., "retweet", "substring")
	Type string `json:"type"`

	// Config contains the rule-specific configuration
	Config map[string]interface{} `json:"config,omitempty"`
}

// CorrectionsConfig configures the correction detector.
type CorrectionsConfig struct {
	// Enabled turns correction detection on
	Enabled bool `json:"enabled"`

	// Window is the maximum gap between a tweet and its correction;
	// zero means the pipeline default (12h)
	Window time.Duration `json:"window,omitempty"`

	// MaxDistance is the edit-distance threshold; zero means the
	// pipeline default (10)
	MaxDistance int `json:"maxDistance,omitempty"`
}

// OutputConfig configures result serialization.
type OutputConfig struct {
	// Indent enables indented JSON output
	Indent bool `json:"indent"`

	// Path is the output file path; empty means stdout
	Path string `json:"path,omitempty"`
}

// ConvertToFilterSpec converts parsed filter-spec data to a FilterSpec.
// The input data should have been validated against the schema before
// calling this function.
func ConvertToFilterSpec(data map[string]interface{}) (*FilterSpec, error) {
	if data == nil {
		return nil, fmt.Errorf("filter spec data is nil")
	}

	spec := &FilterSpec{}

	if name, ok := data["name"].(string); ok {
		spec.Name = name
	}
	if description, ok := data["description"].(string); ok {
		spec.Description = description
	}

	rulesData, ok := data["rules"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'rules' section")
	}
	for i, ruleData := range rulesData {
		ruleMap, isMap := ruleData.(map[string]interface{})
		if !isMap {
			return nil, fmt.Errorf("invalid rule at index %d", i)
		}
		ruleConfig, err := convertRuleConfig(ruleMap)
		if err != nil {
			return nil, fmt.Errorf("invalid rule at index %d: %w", i, err)
		}
		spec.Rules = append(spec.Rules, *ruleConfig)
	}

	if correctionsData, ok := data["corrections"].(map[string]interface{}); ok {
		corrections, err := convertCorrectionsConfig(correctionsData)
		if err != nil {
			return nil, fmt.Errorf("invalid 'corrections' section: %w", err)
		}
		spec.Corrections = *corrections
	}

	if outputData, ok := data["output"].(map[string]interface{}); ok {
		spec.Output = convertOutputConfig(outputData)
	}

	return spec, nil
}

// convertRuleConfig converts a raw rule configuration map to RuleConfig.
func convertRuleConfig(data map[string]interface{}) (*RuleConfig, error) {
	ruleType, ok := data["type"].(string)
	if !ok || ruleType == "" {
		return nil, fmt.Errorf("missing required field 'type'")
	}

	ruleConfig := &RuleConfig{Type: ruleType}

	if configData, ok := data["config"].(map[string]interface{}); ok {
		ruleConfig.Config = configData
	} else {
		ruleConfig.Config = map[string]interface{}{}
	}

	return ruleConfig, nil
}

// convertCorrectionsConfig converts the raw corrections section.
// The window is given as a Go duration string (e.g., "12h", "30m").
func convertCorrectionsConfig(data map[string]interface{}) (*CorrectionsConfig, error) {
	corrections := &CorrectionsConfig{}

	if enabled, ok := data["enabled"].(bool); ok {
		corrections.Enabled = enabled
	}

	if windowStr, ok := data["window"].(string); ok && windowStr != "" {
		window, err := time.ParseDuration(windowStr)
		if err != nil {
			return nil, fmt.Errorf("invalid 'window' duration %q: %w", windowStr, err)
		}
		if window <= 0 {
			return nil, fmt.Errorf("'window' must be positive, got %q", windowStr)
		}
		corrections.Window = window
	}

	if maxDistance, ok := toInt(data["maxDistance"]); ok {
		if maxDistance < 1 {
			return nil, fmt.Errorf("'maxDistance' must be at least 1, got %d", maxDistance)
		}
		corrections.MaxDistance = maxDistance
	}

	return corrections, nil
}

// convertOutputConfig converts the raw output section.
func convertOutputConfig(data map[string]interface{}) OutputConfig {
	output := OutputConfig{}

	if indent, ok := data["indent"].(bool); ok {
		output.Indent = indent
	}
	if path, ok := data["path"].(string); ok {
		output.Path = path
	}

	return output
}

// toInt normalizes the numeric types produced by the JSON and YAML decoders.
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
