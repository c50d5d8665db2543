package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDecodeTweets_CanonicalFields(t *testing.T) {
	content := `[
		{"id": "1", "author_id": "100", "created_at": "2020-06-01T10:00:00Z", "text": "hello", "retweeted": false},
		{"id": "2", "author_id": "100", "created_at": "2020-06-01T10:05:00Z", "text": "world", "retweeted": true, "in_reply_to_user_id": "200"}
	]`

	tweets, err := decodeTweets([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tweets) != 2 {
		t.Fatalf("got %d tweets, want 2", len(tweets))
	}
	if tweets[0].ID != "1" || tweets[0].Text != "hello" {
		t.Errorf("tweets[0] = %+v", tweets[0])
	}
	if !tweets[1].Retweet {
		t.Error("tweets[1].Retweet = false, want true")
	}
	if !tweets[1].IsReply() || *tweets[1].ReplyTo != "200" {
		t.Errorf("tweets[1].ReplyTo = %v, want 200", tweets[1].ReplyTo)
	}
	want := time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC)
	if !tweets[0].CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", tweets[0].CreatedAt, want)
	}
}

func TestDecodeTweets_ArchiveAliases(t *testing.T) {
	content := `[
		{"tweet": {"id_str": "99", "user_id_str": "100", "created_at": "Wed Oct 10 20:19:24 +0000 2018", "full_text": "archive style", "retweeted": false, "in_reply_to_user_id_str": "300"}}
	]`

	tweets, err := decodeTweets([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tweets) != 1 {
		t.Fatalf("got %d tweets, want 1", len(tweets))
	}
	tw := tweets[0]
	if tw.ID != "99" || tw.AuthorID != "100" || tw.Text != "archive style" {
		t.Errorf("tweet = %+v", tw)
	}
	if tw.ReplyTo == nil || *tw.ReplyTo != "300" {
		t.Errorf("ReplyTo = %v, want 300", tw.ReplyTo)
	}
	if tw.CreatedAt.Year() != 2018 || tw.CreatedAt.Month() != time.October {
		t.Errorf("CreatedAt = %v", tw.CreatedAt)
	}
}

func TestDecodeTweets_EmptyArray(t *testing.T) {
	tweets, err := decodeTweets([]byte("[]"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 0 {
		t.Errorf("got %d tweets, want 0", len(tweets))
	}
}

func TestDecodeTweets_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "not JSON",
			content: "hello",
			wantMsg: "invalid tweet JSON",
		},
		{
			name:    "object instead of array",
			content: `{"id": "1"}`,
			wantMsg: "invalid tweet JSON",
		},
		{
			name:    "missing id",
			content: `[{"created_at": "2020-06-01T10:00:00Z", "text": "x"}]`,
			wantMsg: "missing tweet id",
		},
		{
			name:    "missing created_at",
			content: `[{"id": "1", "text": "x"}]`,
			wantMsg: "missing created_at",
		},
		{
			name:    "garbage created_at",
			content: `[{"id": "1", "created_at": "last tuesday", "text": "x"}]`,
			wantMsg: "unparsable created_at",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeTweets([]byte(tt.content))
			if err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecodeTweets_EmptyReplyTargetStaysAbsent(t *testing.T) {
	content := `[{"id": "1", "created_at": "2020-06-01T10:00:00Z", "text": "x", "in_reply_to_user_id": ""}]`

	tweets, err := decodeTweets([]byte(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tweets[0].ReplyTo != nil {
		t.Errorf("ReplyTo = %v, want nil for empty target", tweets[0].ReplyTo)
	}
}

func TestReadJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tweets.json")
	content := `[{"id": "1", "created_at": "2020-06-01T10:00:00Z", "text": "from file"}]`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	tweets, err := ReadJSONFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tweets) != 1 || tweets[0].Text != "from file" {
		t.Errorf("tweets = %+v", tweets)
	}
}

func TestReadJSONFile_Missing(t *testing.T) {
	if _, err := ReadJSONFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
