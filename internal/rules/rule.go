// Package rules provides exclusion rule implementations for the filter
// pipeline. Each rule is a predicate with private state: evaluating a tweet
// as excluded increments the rule's own counter, which is later surfaced
// through Describe for the run statistics.
package rules

import (
	"errors"
	"fmt"

	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Rule represents an exclusion rule applied by the pipeline.
//
// Rules are stateful: a rule instance belongs to a single pipeline run and
// is not safe for concurrent use. Construction validates configuration, so
// Evaluate itself cannot fail.
type Rule interface {
	// Evaluate reports whether tw should be excluded from the output.
	// A true result increments the rule's exclusion counter exactly once.
	Evaluate(tw tweet.Tweet) bool

	// Describe returns a one-line summary of the rule's identity and its
	// cumulative exclusion count.
	Describe() string

	// Type returns the rule type string used in filter-spec files.
	Type() string

	// Excluded returns the number of tweets this rule has excluded so far.
	Excluded() int
}

// Rule type strings as they appear in filter-spec files.
const (
	TypeReply     = "reply"
	TypeRetweet   = "retweet"
	TypePrefix    = "prefix"
	TypeSubstring = "substring"
	TypeDateRange = "daterange"
	TypeCondition = "condition"
	TypeScript    = "script"
)

// ErrEmptyStringSet is returned when a rule requiring a set of match
// strings is configured with none.
var ErrEmptyStringSet = errors.New("at least one non-empty match string is required")

// stringListFromConfig extracts a list of non-empty strings from a raw
// configuration value, accepting both []interface{} (decoded JSON/YAML)
// and []string.
func stringListFromConfig(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return compactStrings(v), nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list entry, got %T", item)
			}
			if s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}
}

// compactStrings drops empty entries while preserving order.
func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
