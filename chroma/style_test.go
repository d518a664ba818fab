package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/chroma"
	"github.com/stretchr/testify/assert"
)

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	palette := diffpane.Palette{
		Background:  "#000000",
		Foreground:  "#ffffff",
		Keyword:     "#ff00ff",
		String:      "#00ff00",
		Number:      "#ff8800",
		Comment:     "#888888",
		Operator:    "#00ffff",
		Function:    "#0000ff",
		Type:        "#ffff00",
		Constant:    "#ff8800",
		Punctuation: "#aaaaaa",
	}

	styleFunc := chroma.StyleFromPalette(palette)

	tests := []struct {
		name  string
		token chromalib.TokenType
		want  diffpane.Style
	}{
		{"keyword", chromalib.Keyword, diffpane.Style{Foreground: "#ff00ff", Bold: true}},
		{"namespace keyword", chromalib.KeywordNamespace, diffpane.Style{Foreground: "#ff00ff", Bold: true}},
		{"type keyword", chromalib.KeywordType, diffpane.Style{Foreground: "#ffff00", Bold: true}},
		{"string", chromalib.String, diffpane.Style{Foreground: "#00ff00"}},
		{"double quoted string", chromalib.StringDouble, diffpane.Style{Foreground: "#00ff00"}},
		{"number", chromalib.Number, diffpane.Style{Foreground: "#ff8800"}},
		{"hex number", chromalib.NumberHex, diffpane.Style{Foreground: "#ff8800"}},
		{"comment", chromalib.Comment, diffpane.Style{Foreground: "#888888"}},
		{"multiline comment", chromalib.CommentMultiline, diffpane.Style{Foreground: "#888888"}},
		{"operator", chromalib.Operator, diffpane.Style{Foreground: "#00ffff"}},
		{"function name", chromalib.NameFunction, diffpane.Style{Foreground: "#0000ff"}},
		{"magic function name", chromalib.NameFunctionMagic, diffpane.Style{Foreground: "#0000ff"}},
		{"builtin", chromalib.NameBuiltin, diffpane.Style{Foreground: "#ffff00"}},
		{"class name", chromalib.NameClass, diffpane.Style{Foreground: "#ffff00"}},
		{"constant", chromalib.NameConstant, diffpane.Style{Foreground: "#ff8800"}},
		{"punctuation", chromalib.Punctuation, diffpane.Style{Foreground: "#aaaaaa"}},
		{"plain name", chromalib.Name, diffpane.Style{}},
		{"error", chromalib.Error, diffpane.Style{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styleFunc(tt.token))
		})
	}
}
