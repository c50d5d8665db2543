// Package rules provides exclusion rule implementations.
// This file implements the "daterange" rule that drops tweets posted
// outside a configured time window.
package rules

import (
	"errors"
	"fmt"
	"time"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// ErrNoDateBounds is returned when a daterange rule is configured with
// neither a start nor an end bound.
var ErrNoDateBounds = errors.New("at least one of 'start' or 'end' is required")

// dateLayouts are the accepted bound formats, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// DateRangeConfig represents the configuration for a daterange rule.
// Bounds are optional; an unset bound never excludes.
type DateRangeConfig struct {
	// Start is the inclusive lower bound, nil for no lower bound
	Start *time.Time `json:"start,omitempty"`
	// End is the inclusive upper bound, nil for no upper bound
	End *time.Time `json:"end,omitempty"`
}

// DateRangeRule excludes tweets posted before the start bound or after
// the end bound. Each bound applies independently.
type DateRangeRule struct {
	start    *time.Time
	end      *time.Time
	excluded int
}

// NewDateRangeFromConfig creates a daterange rule from configuration.
// At least one bound must be set, and start must not be after end.
func NewDateRangeFromConfig(config DateRangeConfig) (*DateRangeRule, error) {
	if config.Start == nil && config.End == nil {
		return nil, ErrNoDateBounds
	}
	if config.Start != nil && config.End != nil && config.Start.After(*config.End) {
		return nil, fmt.Errorf("'start' %s is after 'end' %s",
			config.Start.Format("2006-01-02"), config.End.Format("2006-01-02"))
	}

	logger.Debug("daterange rule initialized",
		"start", formatBound(config.Start),
		"end", formatBound(config.End),
	)

	return &DateRangeRule{start: config.Start, end: config.End}, nil
}

// Evaluate implements the Rule interface.
func (r *DateRangeRule) Evaluate(tw tweet.Tweet) bool {
	if r.start != nil && tw.CreatedAt.Before(*r.start) {
		r.excluded++
		return true
	}
	if r.end != nil && tw.CreatedAt.After(*r.end) {
		r.excluded++
		return true
	}
	return false
}

// Describe implements the Rule interface.
func (r *DateRangeRule) Describe() string {
	return fmt.Sprintf("tweets outside %s to %s: %d excluded",
		formatBound(r.start), formatBound(r.end), r.excluded)
}

// Type implements the Rule interface.
func (r *DateRangeRule) Type() string { return TypeDateRange }

// Excluded implements the Rule interface.
func (r *DateRangeRule) Excluded() int { return r.excluded }

// ParseDateRangeConfig parses a raw configuration map into DateRangeConfig.
// Bounds may be given as RFC3339 timestamps or as plain dates (2006-01-02).
// The start and end bounds parse from their own values independently.
func ParseDateRangeConfig(config map[string]interface{}) (DateRangeConfig, error) {
	var cfg DateRangeConfig

	start, err := parseBound(config["start"])
	if err != nil {
		return cfg, fmt.Errorf("invalid 'start': %w", err)
	}
	end, err := parseBound(config["end"])
	if err != nil {
		return cfg, fmt.Errorf("invalid 'end': %w", err)
	}
	if start == nil && end == nil {
		return cfg, ErrNoDateBounds
	}

	cfg.Start = start
	cfg.End = end
	return cfg, nil
}

// parseBound parses an optional date bound from a raw config value.
func parseBound(value interface{}) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected date string, got %T", value)
	}
	if s == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q (want RFC3339 or 2006-01-02)", s)
}

// formatBound renders an optional bound for descriptions and logs.
func formatBound(t *time.Time) string {
	if t == nil {
		return "(open)"
	}
	return t.Format("2006-01-02")
}

// Verify interface compliance at compile time
var _ Rule = (*DateRangeRule)(nil)
