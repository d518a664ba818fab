// Package diffmatchpatch implements side-by-side text diffing using
// sergi/go-diff.
package diffmatchpatch

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/worddiff"
	dmplib "github.com/sergi/go-diff/diffmatchpatch"
	"golang.org/x/text/cases"
)

// Compile-time interface verification.
var (
	_ diffpane.Differ     = (*Differ)(nil)
	_ diffpane.WordDiffer = (*Differ)(nil)
)

// Differ computes line and word level side-by-side diffs. It is safe for
// concurrent use.
type Differ struct {
	dmp     *dmplib.DiffMatchPatch
	chunker *worddiff.Chunker
}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	dmp := dmplib.New()
	// No timeout: the same inputs must always produce the same diff.
	dmp.DiffTimeout = 0
	return &Differ{
		dmp:     dmp,
		chunker: worddiff.NewChunker(),
	}
}

// Diff aligns the lines of oldText and newText into two panes. Paired
// replacements become Modified lines carrying a word-level diff; surplus
// deletions and insertions face an Imaginary row on the other side.
func (d *Differ) Diff(oldText, newText string, opts diffpane.DiffOptions) diffpane.SideBySide {
	oldLines := SplitLines(oldText)
	newLines := SplitLines(newText)

	lineKey := lineKeyFunc(opts)
	rows := d.align(keys(oldLines, lineKey), keys(newLines, lineKey))

	oldPane := &diffpane.Pane{Lines: make([]diffpane.Piece, 0, len(rows))}
	newPane := &diffpane.Pane{Lines: make([]diffpane.Piece, 0, len(rows))}
	for _, r := range rows {
		var o, n diffpane.Piece
		switch r.kind {
		case rowEqual:
			o = diffpane.Piece{Text: oldLines[r.old], Type: diffpane.Unchanged, Position: r.old + 1}
			n = diffpane.Piece{Text: newLines[r.new], Type: diffpane.Unchanged, Position: r.new + 1}
		case rowModified:
			o = diffpane.Piece{Text: oldLines[r.old], Type: diffpane.Modified, Position: r.old + 1}
			n = diffpane.Piece{Text: newLines[r.new], Type: diffpane.Modified, Position: r.new + 1}
			o.SubPieces, n.SubPieces = d.DiffLine(o.Text, n.Text, opts)
			if o.SubPieces == nil {
				o.Type, n.Type = diffpane.Unchanged, diffpane.Unchanged
			}
		case rowDeleted:
			o = diffpane.Piece{Text: oldLines[r.old], Type: diffpane.Deleted, Position: r.old + 1}
			n = diffpane.Piece{Type: diffpane.Imaginary}
		case rowInserted:
			o = diffpane.Piece{Type: diffpane.Imaginary}
			n = diffpane.Piece{Text: newLines[r.new], Type: diffpane.Inserted, Position: r.new + 1}
		}
		oldPane.Lines = append(oldPane.Lines, o)
		newPane.Lines = append(newPane.Lines, n)
	}

	return diffpane.SideBySide{Old: oldPane, New: newPane}
}

// DiffLine computes the word-level sub-pieces of a line pair. It returns nil
// slices when every token is equal under opts.
func (d *Differ) DiffLine(oldLine, newLine string, opts diffpane.DiffOptions) (oldSubs, newSubs []diffpane.Piece) {
	oldTokens := d.chunker.Chunk(oldLine, opts.Granularity)
	newTokens := d.chunker.Chunk(newLine, opts.Granularity)

	tokenKey := tokenKeyFunc(opts)
	rows := d.align(keys(oldTokens, tokenKey), keys(newTokens, tokenKey))

	changed := false
	oldSubs = make([]diffpane.Piece, 0, len(rows))
	newSubs = make([]diffpane.Piece, 0, len(rows))
	for _, r := range rows {
		var o, n diffpane.Piece
		switch r.kind {
		case rowEqual:
			o = diffpane.Piece{Text: oldTokens[r.old], Type: diffpane.Unchanged, Position: r.old + 1}
			n = diffpane.Piece{Text: newTokens[r.new], Type: diffpane.Unchanged, Position: r.new + 1}
		case rowModified:
			o = diffpane.Piece{Text: oldTokens[r.old], Type: diffpane.Modified, Position: r.old + 1}
			n = diffpane.Piece{Text: newTokens[r.new], Type: diffpane.Modified, Position: r.new + 1}
		case rowDeleted:
			o = diffpane.Piece{Text: oldTokens[r.old], Type: diffpane.Deleted, Position: r.old + 1}
			n = diffpane.Piece{Type: diffpane.Imaginary}
		case rowInserted:
			o = diffpane.Piece{Type: diffpane.Imaginary}
			n = diffpane.Piece{Text: newTokens[r.new], Type: diffpane.Inserted, Position: r.new + 1}
		}
		if r.kind != rowEqual {
			changed = true
		}
		oldSubs = append(oldSubs, o)
		newSubs = append(newSubs, n)
	}

	if !changed {
		return nil, nil
	}
	return oldSubs, newSubs
}

// SplitLines splits text into lines on "\n", dropping a trailing "\r" from
// each line and the empty element after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

type rowKind int

const (
	rowEqual rowKind = iota
	rowModified
	rowDeleted
	rowInserted
)

// row is one aligned row; old and new index into the token slices and are
// -1 on the side a row is absent from.
type row struct {
	kind     rowKind
	old, new int
}

// align diffs two key sequences and returns the aligned rows. Within each
// change block, deletions and insertions are paired in order.
func (d *Differ) align(oldKeys, newKeys []string) []row {
	enc := newEncoder()
	diffs := d.dmp.DiffMainRunes(enc.encode(oldKeys), enc.encode(newKeys), false)

	rows := make([]row, 0, max(len(oldKeys), len(newKeys)))
	oi, ni := 0, 0
	dels, ins := 0, 0

	flush := func() {
		paired := min(dels, ins)
		for k := 0; k < paired; k++ {
			rows = append(rows, row{kind: rowModified, old: oi, new: ni})
			oi++
			ni++
		}
		for k := paired; k < dels; k++ {
			rows = append(rows, row{kind: rowDeleted, old: oi, new: -1})
			oi++
		}
		for k := paired; k < ins; k++ {
			rows = append(rows, row{kind: rowInserted, old: -1, new: ni})
			ni++
		}
		dels, ins = 0, 0
	}

	for _, df := range diffs {
		count := utf8.RuneCountInString(df.Text)
		switch df.Type {
		case dmplib.DiffEqual:
			flush()
			for k := 0; k < count; k++ {
				rows = append(rows, row{kind: rowEqual, old: oi, new: ni})
				oi++
				ni++
			}
		case dmplib.DiffDelete:
			dels += count
		case dmplib.DiffInsert:
			ins += count
		}
	}
	flush()

	return rows
}

// encoder maps comparison keys to distinct runes so token sequences can be
// diffed as rune strings.
type encoder struct {
	index map[string]rune
}

func newEncoder() *encoder {
	return &encoder{index: make(map[string]rune)}
}

func (e *encoder) encode(keys []string) []rune {
	out := make([]rune, len(keys))
	for i, k := range keys {
		r, ok := e.index[k]
		if !ok {
			r = indexRune(len(e.index))
			e.index[k] = r
		}
		out[i] = r
	}
	return out
}

// indexRune returns the i-th valid rune, skipping the surrogate range so the
// diff text survives conversion to string.
func indexRune(i int) rune {
	r := rune(i + 1)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func keys(tokens []string, key func(string) string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = key(t)
	}
	return out
}

func lineKeyFunc(opts diffpane.DiffOptions) func(string) string {
	fold := foldFunc(opts)
	return func(s string) string {
		if opts.IgnoreWhiteSpace {
			s = strings.TrimSpace(s)
		}
		return fold(s)
	}
}

func tokenKeyFunc(opts diffpane.DiffOptions) func(string) string {
	fold := foldFunc(opts)
	return func(s string) string {
		if opts.IgnoreWhiteSpace && isBlank(s) {
			return " "
		}
		return fold(s)
	}
}

// foldFunc returns the case folding applied to keys. A Caser is stateful,
// so each diff gets its own.
func foldFunc(opts diffpane.DiffOptions) func(string) string {
	if !opts.IgnoreCase {
		return func(s string) string { return s }
	}
	caser := cases.Fold()
	return caser.String
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
