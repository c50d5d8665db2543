package textdist

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "both empty", a: "", b: "", want: 0},
		{name: "first empty", a: "", b: "hello", want: 5},
		{name: "second empty", a: "hello", b: "", want: 5},
		{name: "identical", a: "hello world", b: "hello world", want: 0},
		{name: "single substitution", a: "hello wrld", b: "hello world", want: 1},
		{name: "single insertion", a: "helo", b: "hello", want: 1},
		{name: "single deletion", a: "hello", b: "hell", want: 1},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 3},
		{name: "case sensitive", a: "Hello", b: "hello", want: 1},
		{name: "completely different", a: "abc", b: "xyz", want: 3},
		{name: "unicode runes count once", a: "héllo", b: "hello", want: 1},
		{name: "typo fix with punctuation", a: "Its a test", b: "It's a test.", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshteinSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"hello wrld", "hello world"},
		{"kitten", "sitting"},
		{"", "nonempty"},
		{"short", "a much longer string entirely"},
	}

	for _, p := range pairs {
		ab := Levenshtein(p[0], p[1])
		ba := Levenshtein(p[1], p[0])
		if ab != ba {
			t.Errorf("Levenshtein(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestLevenshteinSelfIsZero(t *testing.T) {
	for _, s := range []string{"", "a", "hello world", "日本語のツイート"} {
		if got := Levenshtein(s, s); got != 0 {
			t.Errorf("Levenshtein(%q, %q) = %d, want 0", s, s, got)
		}
	}
}
