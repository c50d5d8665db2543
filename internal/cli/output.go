// Package cli provides CLI output formatting and display functions.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/tweetsift/tweetsift/pkg/tweet"
)

// OutputOptions configures CLI output behavior.
type OutputOptions struct {
	Verbose bool
	Quiet   bool
}

// PrintRunResult displays the outcome of a filtering run on stderr so
// that stdout stays reserved for the JSON tweet output.
func PrintRunResult(result *tweet.RunResult, err error, opts OutputOptions) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "✗ Filtering run failed")
		fmt.Fprintf(os.Stderr, "  Error: %s\n", err.Error())
		return
	}
	if result == nil {
		fmt.Fprintln(os.Stderr, "✗ No run result available")
		return
	}

	if opts.Quiet {
		return
	}

	fmt.Fprintln(os.Stderr, "✓ Filtering run completed")
	fmt.Fprintf(os.Stderr, "  Tweets read: %d\n", result.TweetsRead)
	fmt.Fprintf(os.Stderr, "  Tweets kept: %d\n", len(result.Kept))
	fmt.Fprintf(os.Stderr, "  Tweets excluded: %d\n", result.TweetsExcluded)
	if opts.Verbose {
		fmt.Fprintf(os.Stderr, "  Duration: %v\n", result.CompletedAt.Sub(result.StartedAt))
	}

	PrintStatistics(result.Statistics)

	if len(result.Corrections) > 0 {
		PrintCorrections(result.Corrections, opts.Verbose)
	}
}

// PrintStatistics displays the per-rule summary, indented under a header.
func PrintStatistics(statistics string) {
	if statistics == "" {
		return
	}

	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Statistics:")
	for _, line := range strings.Split(statistics, "\n") {
		fmt.Fprintf(os.Stderr, "  %s\n", line)
	}
}

// PrintCorrections displays detected correction pairs. In compact mode
// each pair is one line; verbose mode adds the superseded text.
func PrintCorrections(pairs []tweet.CorrectionPair, verbose bool) {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintf(os.Stderr, "Corrections (%d):\n", len(pairs))

	for _, pair := range pairs {
		fmt.Fprintf(os.Stderr, "  %s superseded by %s (%v apart)\n",
			pair.Superseded.ID,
			pair.Superseding.ID,
			pair.Superseding.CreatedAt.Sub(pair.Superseded.CreatedAt),
		)
		if verbose {
			fmt.Fprintf(os.Stderr, "    was:    %s\n", truncateText(pair.Superseded.Text, 70))
			fmt.Fprintf(os.Stderr, "    became: %s\n", truncateText(pair.Superseding.Text, 70))
		}
	}
}

// PrintSpecSummary prints the filter spec name and description when present.
func PrintSpecSummary(name, description string) {
	if name != "" {
		fmt.Fprintf(os.Stderr, "  Spec: %s\n", name)
	}
	if description != "" {
		fmt.Fprintf(os.Stderr, "  Description: %s\n", description)
	}
}

// truncateText shortens s to at most max runes for display.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
