package pipeline

import (
	"fmt"
	"strings"
)

// Statistics returns a deterministic multi-line summary of the run:
// one line per rule in evaluation order, followed by a correction-count
// line only when correction detection is enabled. It is a pure function
// of pipeline state.
func (p *Pipeline) Statistics() string {
	lines := make([]string, 0, len(p.rules)+1)
	for _, r := range p.rules {
		lines = append(lines, r.Describe())
	}
	if p.opts.DetectCorrections {
		lines = append(lines, fmt.Sprintf("corrections detected: %d", p.CorrectionCount()))
	}
	return strings.Join(lines, "\n")
}
