// Package archive reads tweets from Twitter archive zips and plain JSON
// files. This file handles JSON decoding and timestamp normalization.
package archive

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// timeLayouts are the accepted created_at formats, tried in order:
// RFC3339 (plain JSON exports) and Twitter's archive format.
var timeLayouts = []string{
	time.RFC3339,
	"Mon Jan 02 15:04:05 -0700 2006",
}

// rawTweet accepts both the canonical field names and the aliases found
// in Twitter archive exports.
type rawTweet struct {
	ID         string  `json:"id"`
	IDStr      string  `json:"id_str"`
	AuthorID   string  `json:"author_id"`
	UserIDStr  string  `json:"user_id_str"`
	ReplyTo    *string `json:"in_reply_to_user_id"`
	ReplyToStr *string `json:"in_reply_to_user_id_str"`
	CreatedAt  string  `json:"created_at"`
	Text       string  `json:"text"`
	FullText   string  `json:"full_text"`
	Retweeted  bool    `json:"retweeted"`
}

// wrappedTweet matches the archive's per-entry envelope {"tweet": {...}}.
type wrappedTweet struct {
	Tweet *rawTweet `json:"tweet"`
}

// ReadJSONFile loads tweets from a plain JSON file containing an array
// of tweet objects.
func ReadJSONFile(path string) ([]tweet.Tweet, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	tweets, err := decodeTweets(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tweets, nil
}

// decodeTweets parses a JSON array of tweets, accepting both bare tweet
// objects and the archive's {"tweet": {...}} envelopes.
func decodeTweets(content []byte) ([]tweet.Tweet, error) {
	var wrapped []wrappedTweet
	if err := json.Unmarshal(content, &wrapped); err != nil {
		return nil, fmt.Errorf("invalid tweet JSON: %w", err)
	}

	// The envelope field is absent in plain exports; decode again as
	// bare objects when nothing was wrapped.
	raws := make([]rawTweet, 0, len(wrapped))
	if allUnwrapped(wrapped) {
		var bare []rawTweet
		if err := json.Unmarshal(content, &bare); err != nil {
			return nil, fmt.Errorf("invalid tweet JSON: %w", err)
		}
		raws = bare
	} else {
		for _, w := range wrapped {
			if w.Tweet != nil {
				raws = append(raws, *w.Tweet)
			}
		}
	}

	tweets := make([]tweet.Tweet, 0, len(raws))
	for i, raw := range raws {
		tw, err := normalizeTweet(raw)
		if err != nil {
			return nil, fmt.Errorf("tweet at index %d: %w", i, err)
		}
		tweets = append(tweets, tw)
	}

	logger.Debug("tweets decoded", "count", len(tweets))

	return tweets, nil
}

// allUnwrapped reports whether no entry carried the archive envelope.
func allUnwrapped(entries []wrappedTweet) bool {
	for _, e := range entries {
		if e.Tweet != nil {
			return false
		}
	}
	return true
}

// normalizeTweet maps a raw entry onto the canonical Tweet, resolving
// field aliases and parsing the timestamp. Records without an ID or a
// parsable timestamp are rejected here so the pipeline never sees them.
func normalizeTweet(raw rawTweet) (tweet.Tweet, error) {
	tw := tweet.Tweet{
		ID:       firstNonEmpty(raw.ID, raw.IDStr),
		AuthorID: firstNonEmpty(raw.AuthorID, raw.UserIDStr),
		Text:     firstNonEmpty(raw.Text, raw.FullText),
		Retweet:  raw.Retweeted,
	}

	if tw.ID == "" {
		return tweet.Tweet{}, fmt.Errorf("missing tweet id")
	}

	replyTo := raw.ReplyTo
	if replyTo == nil {
		replyTo = raw.ReplyToStr
	}
	if replyTo != nil && *replyTo != "" {
		tw.ReplyTo = replyTo
	}

	createdAt, err := parseCreatedAt(raw.CreatedAt)
	if err != nil {
		return tweet.Tweet{}, fmt.Errorf("tweet %s: %w", tw.ID, err)
	}
	tw.CreatedAt = createdAt

	return tw, nil
}

// parseCreatedAt parses a created_at value in any accepted layout.
func parseCreatedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("missing created_at")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable created_at %q", value)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
