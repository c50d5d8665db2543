// Package rules provides exclusion rule implementations.
// This file implements the "substring" rule that drops tweets containing
// any of a configured set of strings.
package rules

import (
	"fmt"
	"strings"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// SubstringConfig represents the configuration for a substring rule.
type SubstringConfig struct {
	// Substrings is the set of body-text substrings to exclude (case-sensitive)
	Substrings []string `json:"substrings"`
}

// SubstringRule excludes tweets whose body text contains any configured
// substring anywhere, not only as a prefix.
type SubstringRule struct {
	substrings []string
	excluded   int
}

// NewSubstringFromConfig creates a substring rule from configuration.
// It requires at least one non-empty substring.
func NewSubstringFromConfig(config SubstringConfig) (*SubstringRule, error) {
	substrings := compactStrings(config.Substrings)
	if len(substrings) == 0 {
		return nil, ErrEmptyStringSet
	}

	logger.Debug("substring rule initialized", "substrings", substrings)

	return &SubstringRule{substrings: substrings}, nil
}

// Evaluate implements the Rule interface.
func (r *SubstringRule) Evaluate(tw tweet.Tweet) bool {
	for _, sub := range r.substrings {
		if strings.Contains(tw.Text, sub) {
			r.excluded++
			return true
		}
	}
	return false
}

// Describe implements the Rule interface.
func (r *SubstringRule) Describe() string {
	return fmt.Sprintf("tweets containing %s: %d excluded", quoteJoin(r.substrings), r.excluded)
}

// Type implements the Rule interface.
func (r *SubstringRule) Type() string { return TypeSubstring }

// Excluded implements the Rule interface.
func (r *SubstringRule) Excluded() int { return r.excluded }

// ParseSubstringConfig parses a raw configuration map into SubstringConfig.
func ParseSubstringConfig(config map[string]interface{}) (SubstringConfig, error) {
	var cfg SubstringConfig

	substrings, err := stringListFromConfig(config["substrings"])
	if err != nil {
		return cfg, fmt.Errorf("invalid 'substrings': %w", err)
	}
	if len(substrings) == 0 {
		return cfg, fmt.Errorf("'substrings': %w", ErrEmptyStringSet)
	}

	cfg.Substrings = substrings
	return cfg, nil
}

// Verify interface compliance at compile time
var _ Rule = (*SubstringRule)(nil)
