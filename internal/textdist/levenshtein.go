// Package textdist provides string edit-distance computation for the
// correction detector.
package textdist

// Levenshtein returns the minimum number of single-character insertions,
// deletions, and substitutions required to transform a into b.
//
// The comparison is case-sensitive and operates on runes with no
// normalization, so visually similar but distinct code points count as
// substitutions. It is a total function: the result is always >= 0.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	la := len(ra)
	lb := len(rb)

	// Transforming to or from the empty string costs one insertion or
	// deletion per character; no table needed.
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Classic dynamic-programming table of size (la+1) x (lb+1).
	// Row 0 and column 0 hold the cost of building from the empty string.
	table := make([][]int, la+1)
	for i := range table {
		table[i] = make([]int, lb+1)
		table[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		table[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			table[i][j] = min3(
				table[i-1][j]+1,      // deletion
				table[i][j-1]+1,      // insertion
				table[i-1][j-1]+cost, // substitution
			)
		}
	}

	return table[la][lb]
}

// min3 returns the minimum of three integers.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
