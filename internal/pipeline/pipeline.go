// Package pipeline provides the filtering engine. It applies an ordered
// list of exclusion rules to a tweet sequence and optionally collapses
// near-duplicate correction tweets using edit distance.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/internal/rules"
	"github.com/tweetsift/tweetsift/internal/textdist"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Correction detection defaults. Both are tunable via Options.
const (
	// DefaultCorrectionWindow is the maximum gap between a tweet and its
	// correction for the pair to be collapsed.
	DefaultCorrectionWindow = 12 * time.Hour

	// DefaultCorrectionMaxDistance is the maximum edit distance between
	// two tweet bodies for the later to count as a correction.
	DefaultCorrectionMaxDistance = 10
)

// Options configures a pipeline run.
type Options struct {
	// DetectCorrections enables collapsing of near-duplicate corrections
	DetectCorrections bool

	// CorrectionWindow overrides DefaultCorrectionWindow when positive
	CorrectionWindow time.Duration

	// CorrectionMaxDistance overrides DefaultCorrectionMaxDistance when positive
	CorrectionMaxDistance int
}

// window returns the effective correction window.
func (o Options) window() time.Duration {
	if o.CorrectionWindow > 0 {
		return o.CorrectionWindow
	}
	return DefaultCorrectionWindow
}

// maxDistance returns the effective edit-distance threshold.
func (o Options) maxDistance() int {
	if o.CorrectionMaxDistance > 0 {
		return o.CorrectionMaxDistance
	}
	return DefaultCorrectionMaxDistance
}

// Pipeline holds an ordered rule list and run-scoped correction state.
// Rule order is evaluation order: the first rule that excludes a tweet
// wins and later rules never see it.
//
// A Pipeline is created once per invocation and consumed once; it is not
// safe for concurrent use.
type Pipeline struct {
	rules       []rules.Rule
	opts        Options
	corrections []tweet.CorrectionPair
}

// New creates an empty pipeline with the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts}
}

// AddRule appends a rule to the evaluation order.
func (p *Pipeline) AddRule(r rules.Rule) {
	p.rules = append(p.rules, r)
}

// Rules returns the rules in evaluation order.
func (p *Pipeline) Rules() []rules.Rule {
	return p.rules
}

// CorrectionCount returns the number of corrections detected so far.
func (p *Pipeline) CorrectionCount() int {
	return len(p.corrections)
}

// ExcludedCount returns the total number of tweets excluded by rules,
// each counted once against the first rule that excluded it.
func (p *Pipeline) ExcludedCount() int {
	total := 0
	for _, r := range p.rules {
		total += r.Excluded()
	}
	return total
}

// Run applies the rule chain to tweets in input order and returns the
// kept tweets plus any detected correction pairs.
//
// For each tweet, rules run in list order and stop at the first exclusion.
// A surviving tweet is then compared against the single most recently
// retained tweet: when the tweets are close in time and their bodies are
// within the edit-distance threshold, the earlier tweet is dropped as
// superseded and the pair recorded. Chains of corrections collapse
// pairwise. Tweets excluded by rules never participate in correction
// comparison and never become the comparison anchor.
//
// Kept tweets preserve original relative order; pairs preserve detection
// order. Run cannot fail on well-formed input.
func (p *Pipeline) Run(tweets []tweet.Tweet) ([]tweet.Tweet, []tweet.CorrectionPair) {
	start := time.Now()
	kept := make([]tweet.Tweet, 0, len(tweets))
	var prev *tweet.Tweet

	for _, tw := range tweets {
		if p.excludedByRules(tw) {
			continue
		}

		if p.opts.DetectCorrections && prev != nil && p.isCorrection(*prev, tw) {
			// The previous retained tweet is superseded: drop it from
			// the kept set and record the pair.
			kept = kept[:len(kept)-1]
			p.corrections = append(p.corrections, tweet.CorrectionPair{
				Superseded:  *prev,
				Superseding: tw,
			})
			logger.Debug("correction detected",
				slog.String("superseded_id", prev.ID),
				slog.String("superseding_id", tw.ID),
			)
		}

		kept = append(kept, tw)
		anchor := tw
		prev = &anchor
	}

	logger.Debug("pipeline run finished",
		slog.Int("tweets_in", len(tweets)),
		slog.Int("tweets_kept", len(kept)),
		slog.Int("excluded", p.ExcludedCount()),
		slog.Int("corrections", len(p.corrections)),
		slog.Duration("duration", time.Since(start)),
	)

	return kept, p.corrections
}

// excludedByRules evaluates rules in order, short-circuiting at the
// first exclusion.
func (p *Pipeline) excludedByRules(tw tweet.Tweet) bool {
	for i, r := range p.rules {
		if r.Evaluate(tw) {
			logger.WithRule(r.Type(), i).Debug("tweet excluded", "tweet_id", tw.ID)
			return true
		}
	}
	return false
}

// isCorrection reports whether cur supersedes prev: posted within the
// correction window and with a body within the edit-distance threshold.
func (p *Pipeline) isCorrection(prev, cur tweet.Tweet) bool {
	gap := cur.CreatedAt.Sub(prev.CreatedAt)
	if gap < 0 {
		gap = -gap
	}
	if gap >= p.opts.window() {
		return false
	}
	return textdist.Levenshtein(prev.Text, cur.Text) <= p.opts.maxDistance()
}
