// Package rules provides exclusion rule implementations.
// This file implements the "prefix" rule that drops tweets starting with
// any of a configured set of strings.
package rules

import (
	"fmt"
	"strings"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// PrefixConfig represents the configuration for a prefix rule.
type PrefixConfig struct {
	// Prefixes is the set of body-text prefixes to exclude (case-sensitive)
	Prefixes []string `json:"prefixes"`
}

// PrefixRule excludes tweets whose body text starts with any configured
// prefix. The first matching prefix wins; order does not affect the result.
type PrefixRule struct {
	prefixes []string
	excluded int
}

// NewPrefixFromConfig creates a prefix rule from configuration.
// It requires at least one non-empty prefix.
func NewPrefixFromConfig(config PrefixConfig) (*PrefixRule, error) {
	prefixes := compactStrings(config.Prefixes)
	if len(prefixes) == 0 {
		return nil, ErrEmptyStringSet
	}

	logger.Debug("prefix rule initialized", "prefixes", prefixes)

	return &PrefixRule{prefixes: prefixes}, nil
}

// Evaluate implements the Rule interface.
func (r *PrefixRule) Evaluate(tw tweet.Tweet) bool {
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(tw.Text, prefix) {
			r.excluded++
			return true
		}
	}
	return false
}

// Describe implements the Rule interface.
func (r *PrefixRule) Describe() string {
	return fmt.Sprintf("tweets starting with %s: %d excluded", quoteJoin(r.prefixes), r.excluded)
}

// Type implements the Rule interface.
func (r *PrefixRule) Type() string { return TypePrefix }

// Excluded implements the Rule interface.
func (r *PrefixRule) Excluded() int { return r.excluded }

// ParsePrefixConfig parses a raw configuration map into PrefixConfig.
func ParsePrefixConfig(config map[string]interface{}) (PrefixConfig, error) {
	var cfg PrefixConfig

	prefixes, err := stringListFromConfig(config["prefixes"])
	if err != nil {
		return cfg, fmt.Errorf("invalid 'prefixes': %w", err)
	}
	if len(prefixes) == 0 {
		return cfg, fmt.Errorf("'prefixes': %w", ErrEmptyStringSet)
	}

	cfg.Prefixes = prefixes
	return cfg, nil
}

// quoteJoin renders a string set as "a", "b", "c" for rule descriptions.
func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

// Verify interface compliance at compile time
var _ Rule = (*PrefixRule)(nil)
