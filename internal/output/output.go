// Package output emits the tweets that survived filtering. The default
// destination is stdout; a filter spec can redirect to a file instead.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tweetsift/tweetsift/internal/config"
	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// Writer emits surviving tweets to a destination.
type Writer interface {
	// Write emits the kept tweets. Returns the number of tweets written
	// and any error.
	Write(kept []tweet.Tweet) (int, error)
}

// JSONWriter writes kept tweets as a JSON array, either to a file or to
// an io.Writer (stdout by default).
type JSONWriter struct {
	path   string
	indent bool
	out    io.Writer
}

// NewJSONWriterFromConfig creates a JSONWriter from the output section
// of a filter spec. An empty path means stdout.
func NewJSONWriterFromConfig(cfg config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		path:   cfg.Path,
		indent: cfg.Indent,
		out:    os.Stdout,
	}
}

// NewJSONWriter creates a JSONWriter targeting w. Used by tests and by
// callers that manage the destination themselves.
func NewJSONWriter(w io.Writer, indent bool) *JSONWriter {
	return &JSONWriter{out: w, indent: indent}
}

// Write emits the kept tweets as a JSON array. An empty slice is
// written as "[]", never "null".
func (w *JSONWriter) Write(kept []tweet.Tweet) (int, error) {
	if kept == nil {
		kept = []tweet.Tweet{}
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(kept, "", "  ")
	} else {
		data, err = json.Marshal(kept)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to encode tweets: %w", err)
	}
	data = append(data, '\n')

	if w.path != "" {
		if err := os.WriteFile(w.path, data, 0o644); err != nil {
			return 0, fmt.Errorf("failed to write %q: %w", w.path, err)
		}
		logger.Info("tweets written",
			"path", w.path,
			"count", len(kept),
			"bytes", len(data),
		)
		return len(kept), nil
	}

	if _, err := w.out.Write(data); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return len(kept), nil
}

var _ Writer = (*JSONWriter)(nil)
