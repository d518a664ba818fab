// Package worddiff splits lines into the tokens compared by word-level diffing.
package worddiff

import (
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/diffpane"
)

// Chunker splits a line into diffable tokens.
type Chunker struct{}

// NewChunker creates a new Chunker.
func NewChunker() *Chunker {
	return &Chunker{}
}

// Chunk splits s according to g. Concatenating the result yields s.
func (c *Chunker) Chunk(s string, g diffpane.Granularity) []string {
	if g == diffpane.Characters {
		return c.Characters(s)
	}
	return c.Words(s)
}

// Words splits s into words, numbers, whitespace runs, operator runs and
// single punctuation characters using a hand-written scanner.
func (c *Chunker) Words(s string) []string {
	if s == "" {
		return nil
	}

	tokens := make([]string, 0, len(s)/3+1)
	i := 0
	for i < len(s) {
		start := i
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case isWordRune(r):
			// Word: letters, digits and underscores, e.g. "foo_bar2"
			i = scan(s, i, isWordRune)
		case unicode.IsSpace(r):
			i = scan(s, i, unicode.IsSpace)
		case isOperatorRune(r):
			// Operator run, e.g. "+=", ":=", "!=="
			i = scan(s, i, isOperatorRune)
		default:
			// Punctuation and anything else stands alone.
		}
		tokens = append(tokens, s[start:i])
	}
	return tokens
}

// Characters splits s into single runes.
func (c *Chunker) Characters(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		tokens = append(tokens, s[i:i+size])
		i += size
	}
	return tokens
}

// scan advances i while runes of s satisfy pred.
func scan(s string, i int, pred func(rune) bool) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !pred(r) {
			break
		}
		i += size
	}
	return i
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isOperatorRune(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '^', '%', ':':
		return true
	}
	return false
}
