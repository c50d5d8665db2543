package rules

import (
	"time"

	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// textTweet builds a minimal tweet with the given body text.
func textTweet(text string) tweet.Tweet {
	return tweet.Tweet{
		ID:        "1",
		AuthorID:  "100",
		CreatedAt: time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC),
		Text:      text,
	}
}

// strPtr returns a pointer to s.
func strPtr(s string) *string {
	return &s
}
