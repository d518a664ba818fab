package diffpane

import "strings"

// ColorPair represents a foreground and background color combination.
// Colors are hex strings in "#RRGGBB" format. Empty strings mean no override.
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for every class label a view can carry.
type Styles struct {
	Unchanged ColorPair // Line rows by change type
	Inserted  ColorPair
	Deleted   ColorPair
	Modified  ColorPair
	Imaginary ColorPair

	InsertedHighlight ColorPair // "{type}-character" spans
	DeletedHighlight  ColorPair
	ModifiedHighlight ColorPair

	InsertedWord ColorPair // "{type}-word" spans
	DeletedWord  ColorPair
	ModifiedWord ColorPair

	LineNumber    ColorPair // Gutter
	Header        ColorPair // Stats header
	HiddenSummary ColorPair // "N lines hidden" rows
	Separator     ColorPair // Divider between panes
}

// Line returns the style for a line row of type t.
func (s Styles) Line(t ChangeType) ColorPair {
	switch t {
	case Inserted:
		return s.Inserted
	case Deleted:
		return s.Deleted
	case Modified:
		return s.Modified
	case Imaginary:
		return s.Imaginary
	default:
		return s.Unchanged
	}
}

// Label returns the style for a span label such as "inserted-character" or
// "modified-word". Unknown labels get an empty pair.
func (s Styles) Label(label string) ColorPair {
	typ, level, ok := strings.Cut(label, "-")
	if !ok {
		return ColorPair{}
	}
	switch level {
	case "character":
		switch typ {
		case "inserted":
			return s.InsertedHighlight
		case "deleted":
			return s.DeletedHighlight
		case "modified":
			return s.ModifiedHighlight
		}
	case "word":
		switch typ {
		case "inserted":
			return s.InsertedWord
		case "deleted":
			return s.DeletedWord
		case "modified":
			return s.ModifiedWord
		}
	}
	return ColorPair{}
}

// Color is a hex color string such as "#ff0000".
type Color string

// Palette holds the semantic colors used for syntax highlighting.
type Palette struct {
	Background Color
	Foreground Color

	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color
}

// Theme provides styles for rendering diffs.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
