// Package diffpane provides domain types and the render-model engine for
// two-pane, line- and word-level text diff views.
package diffpane

import (
	"context"
	"io"
)

// ChangeType classifies a line or word relative to the other side of a diff.
type ChangeType int

// Change types.
const (
	Unchanged ChangeType = iota
	Deleted
	Inserted
	Imaginary // placeholder row opposite a pure insertion or deletion
	Modified
)

// String returns the lowercase label used in class names.
func (t ChangeType) String() string {
	switch t {
	case Unchanged:
		return "unchanged"
	case Deleted:
		return "deleted"
	case Inserted:
		return "inserted"
	case Imaginary:
		return "imaginary"
	case Modified:
		return "modified"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ChangeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Piece is one change-tagged unit of text: a whole line, or a word or
// character within a Modified line.
type Piece struct {
	Text      string     `json:"text,omitempty"`       // Empty for Imaginary pieces
	Type      ChangeType `json:"type"`                 // Classification on this side
	Position  int        `json:"position,omitempty"`   // 1-based; 0 if the piece has no source line
	SubPieces []Piece    `json:"sub_pieces,omitempty"` // Word-level diff, only on Modified lines
}

// HasSubPieces reports whether the piece carries a word-level diff.
func (p Piece) HasSubPieces() bool {
	return len(p.SubPieces) > 0
}

// Pane is the ordered sequence of line pieces for one side of a diff.
type Pane struct {
	Lines []Piece `json:"lines"`
}

// Len returns the number of rows in the pane. A nil pane has no rows.
func (p *Pane) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// SideBySide holds the two aligned panes of a diff. Row i of Old and row i of
// New describe the same conceptual diff row. Either pane may be nil.
type SideBySide struct {
	Old *Pane `json:"old,omitempty"`
	New *Pane `json:"new,omitempty"`
}

// Side selects one of the two panes.
type Side int

// Sides.
const (
	Left  Side = iota // old text
	Right             // new text
)

// String returns the class suffix for the side.
func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Pane returns the pane of sbs selected by s.
func (s Side) Pane(sbs SideBySide) *Pane {
	if s == Right {
		return sbs.New
	}
	return sbs.Old
}

// Diff is a multi-file diff, as produced from a unified patch.
type Diff struct {
	Files []FileDiff
}

// FileOperation describes what happened to a file in a patch.
type FileOperation int

// File operations.
const (
	FileModified FileOperation = iota
	FileAdded
	FileDeleted
	FileRenamed
	FileCopied
)

// String returns a short label for the operation.
func (op FileOperation) String() string {
	switch op {
	case FileAdded:
		return "added"
	case FileDeleted:
		return "deleted"
	case FileRenamed:
		return "renamed"
	case FileCopied:
		return "copied"
	default:
		return "modified"
	}
}

// FileDiff is the side-by-side diff of a single file.
type FileDiff struct {
	OldPath   string // "a/file.go" or empty for new files
	NewPath   string // "b/file.go" or empty for deleted files
	Operation FileOperation
	IsBinary  bool // Binary files carry no panes
	Panes     SideBySide
}

// Path returns the display path of the file, without "a/" or "b/" prefixes.
func (f FileDiff) Path() string {
	path := f.NewPath
	if path == "" || path == "/dev/null" {
		path = f.OldPath
	}
	if len(path) > 2 && (path[:2] == "a/" || path[:2] == "b/") {
		path = path[2:]
	}
	return path
}

// Differ computes the side-by-side diff of two texts.
type Differ interface {
	Diff(oldText, newText string, opts DiffOptions) SideBySide
}

// WordDiffer computes the word-level sub-pieces of a modified line pair.
type WordDiffer interface {
	// DiffLine returns the sub-pieces of both lines, or nil slices when the
	// lines are equal under opts.
	DiffLine(oldLine, newLine string, opts DiffOptions) (oldSubs, newSubs []Piece)
}

// Parser parses unified diff content into per-file side-by-side diffs.
type Parser interface {
	Parse(r io.Reader) (*Diff, error)
}

// Renderer writes a view as markup.
type Renderer interface {
	Render(w io.Writer, view View) error
}

// Encoder writes a file view as a machine-readable record.
type Encoder interface {
	Encode(w io.Writer, path string, view View) error
}

// Viewer displays file views and blocks until the user exits.
type Viewer interface {
	View(ctx context.Context, files []FileView) error
}

// FileView pairs a file path with its aligned panes. Viewers build the View
// themselves so presentation options can change while displaying.
type FileView struct {
	Path  string
	Panes SideBySide
}

// GitRunner provides access to file contents in a git repository.
type GitRunner interface {
	// Show returns the contents of path at revision rev.
	Show(ctx context.Context, repoPath, rev, path string) (string, error)
	// Diff returns the unified patch between two revisions.
	Diff(ctx context.Context, repoPath, base, head string) (string, error)
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}

// ConfigLoader loads persisted configuration.
type ConfigLoader interface {
	Load(path string) (*Config, error)
}
