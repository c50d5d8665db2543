// Package rules provides exclusion rule implementations.
// This file implements the "reply" rule that drops replies to other accounts.
package rules

import (
	"errors"
	"fmt"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// ErrMissingOwnID is returned when the reply rule is configured without
// the archive owner's account ID.
var ErrMissingOwnID = errors.New("'ownId' is required")

// ReplyConfig represents the configuration for a reply rule.
type ReplyConfig struct {
	// OwnID is the account ID of the archive owner. Replies to this
	// account (self-threads) are kept; replies to anyone else are excluded.
	OwnID string `json:"ownId"`
}

// ReplyRule excludes tweets that reply to an account other than the
// configured own account. Tweets that are not replies are never excluded.
type ReplyRule struct {
	ownID    string
	excluded int
}

// NewReplyFromConfig creates a reply rule from configuration.
func NewReplyFromConfig(config ReplyConfig) (*ReplyRule, error) {
	if config.OwnID == "" {
		return nil, ErrMissingOwnID
	}

	logger.Debug("reply rule initialized", "own_id", config.OwnID)

	return &ReplyRule{ownID: config.OwnID}, nil
}

// Evaluate implements the Rule interface.
func (r *ReplyRule) Evaluate(tw tweet.Tweet) bool {
	if !tw.IsReply() {
		return false
	}
	if *tw.ReplyTo == r.ownID {
		return false
	}
	r.excluded++
	return true
}

// Describe implements the Rule interface.
func (r *ReplyRule) Describe() string {
	return fmt.Sprintf("replies to accounts other than %s: %d excluded", r.ownID, r.excluded)
}

// Type implements the Rule interface.
func (r *ReplyRule) Type() string { return TypeReply }

// Excluded implements the Rule interface.
func (r *ReplyRule) Excluded() int { return r.excluded }

// ParseReplyConfig parses a raw configuration map into ReplyConfig.
func ParseReplyConfig(config map[string]interface{}) (ReplyConfig, error) {
	var cfg ReplyConfig

	if ownID, ok := config["ownId"].(string); ok {
		cfg.OwnID = ownID
	}
	if cfg.OwnID == "" {
		return cfg, ErrMissingOwnID
	}

	return cfg, nil
}

// Verify interface compliance at compile time
var _ Rule = (*ReplyRule)(nil)
