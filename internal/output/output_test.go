package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

func sampleTweets() []tweet.Tweet {
	return []tweet.Tweet{
		{
			ID:        "1",
			AuthorID:  "100",
			CreatedAt: time.Date(2020, 6, 1, 10, 0, 0, 0, time.UTC),
			Text:      "hello world",
		},
		{
			ID:        "2",
			AuthorID:  "100",
			CreatedAt: time.Date(2020, 6, 1, 11, 0, 0, 0, time.UTC),
			Text:      "second",
			Retweet:   true,
		},
	}
}

func TestJSONWriter_WritesArray(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, false)

	n, err := w.Write(sampleTweets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d entries, want 2", len(decoded))
	}
	if decoded[0]["id"] != "1" || decoded[1]["id"] != "2" {
		t.Errorf("tweet order not preserved: %v", decoded)
	}
	if !strings.HasSuffix(buf.String(), "\n") {
		t.Error("output does not end with a newline")
	}
}

func TestJSONWriter_EmptyIsArrayNotNull(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, false)

	if _, err := w.Write(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("output = %q, want []", got)
	}
}

func TestJSONWriter_Indent(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf, true)

	if _, err := w.Write(sampleTweets()[:1]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("indented output has no indentation")
	}
}

func TestJSONWriter_FileDestination(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kept.json")
	w := NewJSONWriterFromConfig(config.OutputConfig{Path: path, Indent: true})

	n, err := w.Write(sampleTweets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	var decoded []tweet.Tweet
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("file is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].ID != "1" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestJSONWriter_BadPath(t *testing.T) {
	w := NewJSONWriterFromConfig(config.OutputConfig{
		Path: filepath.Join(t.TempDir(), "missing", "kept.json"),
	})

	if _, err := w.Write(sampleTweets()); err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
