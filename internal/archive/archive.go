// Package archive reads tweets from Twitter archive zips and plain JSON
// files. It is the input collaborator of the filter pipeline: it parses
// and validates records so the pipeline can assume well-formed tweets.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/tweetsift/tweetsift/internal/logger"
	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// tweetFileCandidates are the member names probed inside an archive zip,
// in order. Twitter has moved the file around between archive versions.
var tweetFileCandidates = []string{
	"tweet.js",
	"tweets.js",
	"data/tweet.js",
	"data/tweets.js",
}

// ReadFile loads tweets from path, auto-detecting the container:
// a .zip is treated as a Twitter archive, anything else as a plain
// JSON tweet array.
func ReadFile(path string) ([]tweet.Tweet, error) {
	if strings.EqualFold(strings.TrimPrefix(fileExt(path), "."), "zip") {
		return ReadArchive(path)
	}
	return ReadJSONFile(path)
}

// ReadArchive extracts the tweet file from a Twitter archive zip and
// parses its contents.
func ReadArchive(zipPath string) ([]tweet.Tweet, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %q: %w", zipPath, err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			logger.Warn("failed to close archive", "path", zipPath, "error", closeErr.Error())
		}
	}()

	member, err := findTweetFile(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("archive %q: %w", zipPath, err)
	}

	f, err := member.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q in archive: %w", member.Name, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q in archive: %w", member.Name, err)
	}

	logger.Debug("archive member loaded",
		"archive", zipPath,
		"member", member.Name,
		"bytes", len(content),
	)

	return ParseTweetJS(content)
}

// findTweetFile locates the tweet data member inside the archive.
// Known names are probed first; otherwise any *.js member whose base
// name contains "tweet" is accepted.
func findTweetFile(r *zip.Reader) (*zip.File, error) {
	byName := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		byName[f.Name] = f
	}

	for _, candidate := range tweetFileCandidates {
		if f, ok := byName[candidate]; ok {
			return f, nil
		}
	}

	for _, f := range r.File {
		base := path.Base(f.Name)
		if strings.HasSuffix(base, ".js") && strings.Contains(base, "tweet") {
			return f, nil
		}
	}

	return nil, fmt.Errorf("no tweet data file found (looked for %s)",
		strings.Join(tweetFileCandidates, ", "))
}

// ParseTweetJS parses the contents of a tweet.js archive member. The
// file is JSON with a JavaScript assignment preamble
// ("window.YTD.tweets.part0 = [...]") which is stripped before decoding.
func ParseTweetJS(content []byte) ([]tweet.Tweet, error) {
	trimmed := bytes.TrimSpace(content)

	if bytes.HasPrefix(trimmed, []byte("window.YTD.")) {
		idx := bytes.IndexByte(trimmed, '=')
		if idx < 0 {
			return nil, fmt.Errorf("malformed tweet.js: assignment preamble without '='")
		}
		trimmed = bytes.TrimSpace(trimmed[idx+1:])
	}

	return decodeTweets(trimmed)
}

// fileExt returns the lowercase extension of p including the dot.
func fileExt(p string) string {
	return strings.ToLower(path.Ext(strings.ReplaceAll(p, "\\", "/")))
}
