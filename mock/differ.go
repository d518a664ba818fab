package mock

import "github.com/fwojciec/diffpane"

// Compile-time interface verification.
var (
	_ diffpane.Differ     = (*Differ)(nil)
	_ diffpane.WordDiffer = (*WordDiffer)(nil)
)

// Differ is a mock implementation of diffpane.Differ.
type Differ struct {
	DiffFn func(oldText, newText string, opts diffpane.DiffOptions) diffpane.SideBySide
}

func (d *Differ) Diff(oldText, newText string, opts diffpane.DiffOptions) diffpane.SideBySide {
	return d.DiffFn(oldText, newText, opts)
}

// WordDiffer is a mock implementation of diffpane.WordDiffer.
type WordDiffer struct {
	DiffLineFn func(oldLine, newLine string, opts diffpane.DiffOptions) ([]diffpane.Piece, []diffpane.Piece)
}

func (w *WordDiffer) DiffLine(oldLine, newLine string, opts diffpane.DiffOptions) ([]diffpane.Piece, []diffpane.Piece) {
	return w.DiffLineFn(oldLine, newLine, opts)
}
