// Package textmatch provides the approximate string matching used by search.
// Scores are normalized edit distances over accent-folded, lower-cased text:
// 0 means an exact or substring match, 1 means nothing in common.
package textmatch

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lower-cases the input and strips diacritics, so "Cálculo" and
// "calculo" compare equal.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// Score rates how well query matches text. Both inputs are folded first.
// A substring hit scores 0; otherwise the best normalized Levenshtein
// distance between the query and the whole text or any single word wins.
// An empty query or empty text scores 1 (no match).
func Score(query, text string) float64 {
	q := Fold(strings.TrimSpace(query))
	t := Fold(strings.TrimSpace(text))
	if q == "" || t == "" {
		return 1
	}
	if strings.Contains(t, q) {
		return 0
	}

	best := normalizedDistance(q, t)
	for _, word := range strings.Fields(t) {
		if d := normalizedDistance(q, word); d < best {
			best = d
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
