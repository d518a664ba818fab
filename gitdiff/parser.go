// Package gitdiff implements diff parsing using bluekeyes/go-gitdiff.
package gitdiff

import (
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Parser = (*Parser)(nil)

// Parser parses unified diff content using go-gitdiff and lays each file out
// as two aligned panes.
type Parser struct {
	words diffpane.WordDiffer
	opts  diffpane.DiffOptions
}

// NewParser creates a new Parser. Paired deleted and added lines are given
// word-level sub-pieces by words.
func NewParser(words diffpane.WordDiffer, opts diffpane.DiffOptions) *Parser {
	return &Parser{words: words, opts: opts}
}

// Parse reads diff content and returns the parsed result.
func (p *Parser) Parse(r io.Reader) (*diffpane.Diff, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, err
	}

	result := &diffpane.Diff{
		Files: make([]diffpane.FileDiff, 0, len(files)),
	}

	for _, f := range files {
		result.Files = append(result.Files, p.convertFile(f))
	}

	return result, nil
}

func (p *Parser) convertFile(f *gitdiff.File) diffpane.FileDiff {
	fd := diffpane.FileDiff{
		OldPath:  f.OldName,
		NewPath:  f.NewName,
		IsBinary: f.IsBinary,
	}

	switch {
	case f.IsNew:
		fd.Operation = diffpane.FileAdded
	case f.IsDelete:
		fd.Operation = diffpane.FileDeleted
	case f.IsRename:
		fd.Operation = diffpane.FileRenamed
	case f.IsCopy:
		fd.Operation = diffpane.FileCopied
	default:
		fd.Operation = diffpane.FileModified
	}

	if f.IsBinary {
		return fd
	}

	b := &paneBuilder{
		words: p.words,
		opts:  p.opts,
		old:   &diffpane.Pane{},
		new:   &diffpane.Pane{},
	}
	for _, frag := range f.TextFragments {
		b.addFragment(frag)
	}
	fd.Panes = diffpane.SideBySide{Old: b.old, New: b.new}

	return fd
}

// paneBuilder accumulates the rows of both panes. Deleted and added lines are
// buffered until the next context line or fragment end, then paired in order.
type paneBuilder struct {
	words diffpane.WordDiffer
	opts  diffpane.DiffOptions

	old, new *diffpane.Pane

	dels, adds []diffpane.Piece
}

func (b *paneBuilder) addFragment(frag *gitdiff.TextFragment) {
	oldLineNum := int(frag.OldPosition)
	newLineNum := int(frag.NewPosition)

	for _, l := range frag.Lines {
		text := lineText(l.Line)

		switch l.Op {
		case gitdiff.OpContext:
			b.flush()
			b.old.Lines = append(b.old.Lines, diffpane.Piece{Text: text, Type: diffpane.Unchanged, Position: oldLineNum})
			b.new.Lines = append(b.new.Lines, diffpane.Piece{Text: text, Type: diffpane.Unchanged, Position: newLineNum})
			oldLineNum++
			newLineNum++
		case gitdiff.OpDelete:
			if len(b.adds) > 0 {
				b.flush()
			}
			b.dels = append(b.dels, diffpane.Piece{Text: text, Type: diffpane.Deleted, Position: oldLineNum})
			oldLineNum++
		case gitdiff.OpAdd:
			b.adds = append(b.adds, diffpane.Piece{Text: text, Type: diffpane.Inserted, Position: newLineNum})
			newLineNum++
		}
	}
	b.flush()
}

// flush pairs buffered deletions with buffered additions. Pairs become
// Modified rows; the surplus faces Imaginary rows.
func (b *paneBuilder) flush() {
	paired := min(len(b.dels), len(b.adds))
	for i := 0; i < paired; i++ {
		o, n := b.dels[i], b.adds[i]
		o.SubPieces, n.SubPieces = b.words.DiffLine(o.Text, n.Text, b.opts)
		if o.SubPieces == nil {
			o.Type, n.Type = diffpane.Unchanged, diffpane.Unchanged
		} else {
			o.Type, n.Type = diffpane.Modified, diffpane.Modified
		}
		b.old.Lines = append(b.old.Lines, o)
		b.new.Lines = append(b.new.Lines, n)
	}
	for _, o := range b.dels[paired:] {
		b.old.Lines = append(b.old.Lines, o)
		b.new.Lines = append(b.new.Lines, diffpane.Piece{Type: diffpane.Imaginary})
	}
	for _, n := range b.adds[paired:] {
		b.old.Lines = append(b.old.Lines, diffpane.Piece{Type: diffpane.Imaginary})
		b.new.Lines = append(b.new.Lines, n)
	}
	b.dels, b.adds = b.dels[:0], b.adds[:0]
}

func lineText(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
