// Package textutil holds the string normalization used for name matching
// and the casing helpers used for display.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

func nonASCII(r rune) bool {
	return r > unicode.MaxASCII
}

// Normalize folds text for comparison: compatibility decomposition, accents
// and other non-ASCII runes dropped, lowercase, whitespace collapsed.
// The result is never meant for display.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(nonASCII)))
	folded, _, err := transform.String(t, text)
	if err != nil {
		return ""
	}
	return strings.Join(strings.Fields(strings.ToLower(folded)), " ")
}

// TitleCase lowercases text and capitalizes the first rune of every
// whitespace separated word.
func TitleCase(text string) string {
	words := strings.Fields(lower.String(text))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToTitle(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// SortName puts the last word first: "Daft Punk" becomes "Punk, Daft".
func SortName(name string) string {
	words := strings.Fields(name)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, ", ")
}

// NamesMatch reports whether two names are equal as written or after
// normalization. Names that normalize to nothing only match exactly.
func NamesMatch(a, b string) bool {
	if a == b {
		return true
	}
	na := Normalize(a)
	return na != "" && na == Normalize(b)
}
