package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/diffpane"
)

// StyleFromPalette returns a function that maps chroma token types to diffpane
// styles by token category.
func StyleFromPalette(p diffpane.Palette) StyleFunc {
	color := func(c diffpane.Color) diffpane.Style {
		return diffpane.Style{Foreground: string(c)}
	}

	return func(tt chromalib.TokenType) diffpane.Style {
		switch {
		case tt == chromalib.KeywordType:
			return diffpane.Style{Foreground: string(p.Type), Bold: true}
		case tt.InCategory(chromalib.Keyword):
			return diffpane.Style{Foreground: string(p.Keyword), Bold: true}
		case tt.InCategory(chromalib.Comment):
			return color(p.Comment)
		case tt.InSubCategory(chromalib.String):
			return color(p.String)
		case tt.InSubCategory(chromalib.Number):
			return color(p.Number)
		case tt.InCategory(chromalib.Operator):
			return color(p.Operator)
		case tt == chromalib.NameFunction, tt == chromalib.NameFunctionMagic:
			return color(p.Function)
		case tt == chromalib.NameBuiltin, tt == chromalib.NameClass:
			return color(p.Type)
		case tt == chromalib.NameConstant:
			return color(p.Constant)
		case tt == chromalib.Punctuation:
			return color(p.Punctuation)
		default:
			return diffpane.Style{}
		}
	}
}
