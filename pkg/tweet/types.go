// Package tweet provides public types for tweet filtering runs.
// This package is intended to be importable by external projects that need
// to interact with the Tweetsift pipeline.
package tweet

import "time"

// Tweet represents a single post loaded from an archive or JSON file.
// Tweets are immutable after parsing: the pipeline only includes or
// excludes whole tweets, it never rewrites fields.
type Tweet struct {
	// ID is the unique identifier of the tweet
	ID string `json:"id"`

	// AuthorID is the identifier of the account that posted the tweet
	AuthorID string `json:"author_id"`

	// ReplyTo is the account ID this tweet replies to, nil when the
	// tweet is not a reply
	ReplyTo *string `json:"in_reply_to_user_id,omitempty"`

	// CreatedAt is when the tweet was posted
	CreatedAt time.Time `json:"created_at"`

	// Text is the full body text of the tweet
	Text string `json:"text"`

	// Retweet indicates whether the tweet is a native retweet
	Retweet bool `json:"retweeted"`
}

// IsReply reports whether the tweet replies to another account.
func (t Tweet) IsReply() bool {
	return t.ReplyTo != nil && *t.ReplyTo != ""
}

// CorrectionPair records that an earlier tweet was superseded by a later,
// near-identical one. Pairs are produced in detection order and ownership
// transfers to the caller for display or serialization.
type CorrectionPair struct {
	// Superseded is the earlier tweet that was dropped from the output
	Superseded Tweet `json:"superseded"`

	// Superseding is the later tweet that replaced it
	Superseding Tweet `json:"superseding"`
}

// RunResult represents the outcome of a single filtering run.
type RunResult struct {
	// Kept contains the surviving tweets in original relative order
	Kept []Tweet `json:"kept"`

	// Corrections contains the detected correction pairs in detection order
	Corrections []CorrectionPair `json:"corrections,omitempty"`

	// Statistics is the human-readable per-rule summary
	Statistics string `json:"statistics"`

	// TweetsRead is the number of tweets handed to the pipeline
	TweetsRead int `json:"tweetsRead"`

	// TweetsExcluded is the number of tweets dropped by exclusion rules
	TweetsExcluded int `json:"tweetsExcluded"`

	// StartedAt is when the run started
	StartedAt time.Time `json:"startedAt"`

	// CompletedAt is when the run completed
	CompletedAt time.Time `json:"completedAt"`
}
