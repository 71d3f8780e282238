// Package assets addresses per-day calendar images and loads them from a
// pluggable Source. There is no listing API: a candidate exists when loading
// it as an image succeeds.
package assets

import (
	"fmt"
	"strings"
)

// DefaultLetters is the full lowercase variant suffix set.
const DefaultLetters = "abcdefghijklmnopqrstuvwxyz"

// Candidate is one image path that may exist for a day.
// Index orders candidates: 0 is the base image, 1..n the lettered variants.
type Candidate struct {
	Index  int
	Letter string
	Path   string
}

// Path returns the asset path for a day. month is zero-based; letter is ""
// for the base image.
func Path(year, month, day int, letter string) string {
	return fmt.Sprintf("assets/%d/%d/day%d%s.jpg", year, month+1, day, letter)
}

// Candidates lists the base path followed by one path per letter.
func Candidates(year, month, day int, letters string) []Candidate {
	out := make([]Candidate, 0, len(letters)+1)
	out = append(out, Candidate{Index: 0, Path: Path(year, month, day, "")})
	for i, r := range letters {
		l := string(r)
		out = append(out, Candidate{Index: i + 1, Letter: l, Path: Path(year, month, day, l)})
	}
	return out
}

// DayDir returns the directory holding every asset of a month.
func DayDir(year, month int) string {
	return fmt.Sprintf("assets/%d/%d", year, month+1)
}

// ValidateLetters checks that letters holds distinct lowercase a-z runes.
func ValidateLetters(letters string) error {
	seen := make(map[rune]bool, len(letters))
	for _, r := range letters {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("letter %q is not in a-z", r)
		}
		if seen[r] {
			return fmt.Errorf("letter %q listed twice", r)
		}
		seen[r] = true
	}
	return nil
}

// IsAssetPath reports whether p looks like a day asset path.
func IsAssetPath(p string) bool {
	return strings.HasPrefix(p, "assets/") && strings.HasSuffix(p, ".jpg")
}
