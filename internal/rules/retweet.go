// Package rules provides exclusion rule implementations.
// This file implements the "retweet" rule that drops native and manual retweets.
package rules

import (
	"fmt"
	"strings"

	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Manual retweet conventions recognized in body text. Matching is
// case-sensitive and anchored to the start of the text.
var retweetPrefixes = []string{"RT ", "MT "}

// RetweetRule excludes tweets whose retweet flag is set as well as
// old-style manual retweets that start with "RT " or "MT ".
type RetweetRule struct {
	excluded int
}

// NewRetweet creates a retweet rule. The rule has no configuration.
func NewRetweet() *RetweetRule {
	return &RetweetRule{}
}

// Evaluate implements the Rule interface.
func (r *RetweetRule) Evaluate(tw tweet.Tweet) bool {
	if tw.Retweet {
		r.excluded++
		return true
	}
	for _, prefix := range retweetPrefixes {
		if strings.HasPrefix(tw.Text, prefix) {
			r.excluded++
			return true
		}
	}
	return false
}

// Describe implements the Rule interface.
func (r *RetweetRule) Describe() string {
	return fmt.Sprintf("retweets and RT/MT-prefixed tweets: %d excluded", r.excluded)
}

// Type implements the Rule interface.
func (r *RetweetRule) Type() string { return TypeRetweet }

// Excluded implements the Rule interface.
func (r *RetweetRule) Excluded() int { return r.excluded }

// Verify interface compliance at compile time
var _ Rule = (*RetweetRule)(nil)
