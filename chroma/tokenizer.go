// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to diffpane styles.
type StyleFunc func(chromalib.TokenType) diffpane.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a diffpane.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines lexes lines joined by newlines and splits the tokens back
// into exactly len(lines) slices. Returns nil if the language is not
// supported or lexing fails.
func (t *Tokenizer) TokenizeLines(language string, lines []string) [][]diffpane.Token {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	if len(lines) == 0 {
		return [][]diffpane.Token{}
	}

	// Coalesce for better performance with consecutive tokens of the same type
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return nil
	}

	var tokens []diffpane.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, diffpane.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return splitTokensByLine(tokens, len(lines))
}

// splitTokensByLine splits a flat list of tokens into n per-line token
// slices. Tokens spanning lines are split at newline boundaries; lexers that
// append a trailing newline do not produce an extra line.
func splitTokensByLine(tokens []diffpane.Token, n int) [][]diffpane.Token {
	result := make([][]diffpane.Token, n)
	line := 0

	for _, tok := range tokens {
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				line++
			}
			if line >= n {
				return result
			}
			if part != "" {
				result[line] = append(result[line], diffpane.Token{Text: part, Style: tok.Style})
			}
		}
	}

	return result
}
