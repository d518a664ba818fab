package diffpane

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NodeKind discriminates the variants of RenderNode.
type NodeKind int

// Node kinds.
const (
	NodeText NodeKind = iota // literal text, no wrapping
	NodeSpan                 // wrapping element carrying a class label
)

// String returns "text" or "span".
func (k NodeKind) String() string {
	if k == NodeSpan {
		return "span"
	}
	return "text"
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// RenderNode is one node of a line's markup tree: either literal text or a
// labelled span wrapping further nodes.
type RenderNode struct {
	Kind     NodeKind     `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Label    string       `json:"label,omitempty"`
	Children []RenderNode `json:"children,omitempty"`
}

// Text returns a literal text node.
func Text(s string) RenderNode {
	return RenderNode{Kind: NodeText, Text: s}
}

// Span returns a span node labelled label wrapping children.
func Span(label string, children ...RenderNode) RenderNode {
	return RenderNode{Kind: NodeSpan, Label: label, Children: children}
}

// Content returns the text the node displays.
func (n RenderNode) Content() string {
	if n.Kind == NodeText {
		return n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.Content())
	}
	return sb.String()
}

// CharacterLabel returns the class label for a changed run of characters.
func CharacterLabel(t ChangeType) string {
	return t.String() + "-character"
}

// WordLabel returns the class label for a partially changed word.
func WordLabel(t ChangeType) string {
	return t.String() + "-word"
}

// LineNodes returns the render nodes for a line. Lines with empty text render
// as nothing and lines without sub-pieces as a single text node.
func LineNodes(line Piece) []RenderNode {
	if line.Text == "" {
		return nil
	}
	if !line.HasSubPieces() {
		return []RenderNode{Text(line.Text)}
	}
	return BuildSpans(line)
}

// BuildSpans converts the sub-pieces of a line into a nested span tree.
//
// Sub-pieces are grouped into words separated by whitespace. A word changed
// as a whole becomes a single character span; a word mixing changed and
// unchanged runs is wrapped in a word span labelled after its first changed
// run, with a character span around every changed run. Unchanged words and
// whitespace are emitted as text, and adjacent text nodes are merged.
// Imaginary and empty sub-pieces are skipped.
func BuildSpans(line Piece) []RenderNode {
	if line.Text == "" {
		return nil
	}

	frags := splitFragments(line.SubPieces)
	var nodes []RenderNode
	for i := 0; i < len(frags); {
		j := i + 1
		for j < len(frags) && frags[j].space == frags[i].space {
			j++
		}
		if frags[i].space {
			nodes = appendWhitespace(nodes, frags[i:j])
		} else {
			nodes = appendWord(nodes, frags[i:j])
		}
		i = j
	}
	return nodes
}

// fragment is a piece of sub-piece text that is either entirely whitespace
// or contains none.
type fragment struct {
	text  string
	typ   ChangeType
	space bool
}

// changeRun is a maximal run of fragments sharing one change type.
type changeRun struct {
	text string
	typ  ChangeType
}

// splitFragments drops imaginary and empty sub-pieces and splits the rest at
// whitespace boundaries, preserving order.
func splitFragments(pieces []Piece) []fragment {
	frags := make([]fragment, 0, len(pieces))
	for _, p := range pieces {
		if p.Type == Imaginary || p.Text == "" {
			continue
		}
		s := p.Text
		for s != "" {
			r, size := utf8.DecodeRuneInString(s)
			space := unicode.IsSpace(r)
			end := size
			for end < len(s) {
				r, size = utf8.DecodeRuneInString(s[end:])
				if unicode.IsSpace(r) != space {
					break
				}
				end += size
			}
			frags = append(frags, fragment{text: s[:end], typ: p.Type, space: space})
			s = s[end:]
		}
	}
	return frags
}

func changeRuns(frags []fragment) []changeRun {
	var runs []changeRun
	for _, f := range frags {
		if n := len(runs); n > 0 && runs[n-1].typ == f.typ {
			runs[n-1].text += f.text
			continue
		}
		runs = append(runs, changeRun{text: f.text, typ: f.typ})
	}
	return runs
}

func appendWord(nodes []RenderNode, frags []fragment) []RenderNode {
	runs := changeRuns(frags)

	dominant := -1
	for i, r := range runs {
		if r.typ != Unchanged {
			dominant = i
			break
		}
	}

	switch {
	case dominant < 0:
		var sb strings.Builder
		for _, r := range runs {
			sb.WriteString(r.text)
		}
		return appendNode(nodes, Text(sb.String()))
	case len(runs) == 1:
		return appendNode(nodes, Span(CharacterLabel(runs[0].typ), Text(runs[0].text)))
	}

	children := make([]RenderNode, 0, len(runs))
	for _, r := range runs {
		if r.typ == Unchanged {
			children = append(children, Text(r.text))
			continue
		}
		children = append(children, Span(CharacterLabel(r.typ), Text(r.text)))
	}
	return appendNode(nodes, Span(WordLabel(runs[dominant].typ), children...))
}

func appendWhitespace(nodes []RenderNode, frags []fragment) []RenderNode {
	for _, r := range changeRuns(frags) {
		if r.typ == Unchanged {
			nodes = appendNode(nodes, Text(r.text))
			continue
		}
		nodes = appendNode(nodes, Span(CharacterLabel(r.typ), Text(r.text)))
	}
	return nodes
}

// appendNode appends n, merging it into a trailing text node when both are text.
func appendNode(nodes []RenderNode, n RenderNode) []RenderNode {
	if last := len(nodes) - 1; last >= 0 && n.Kind == NodeText && nodes[last].Kind == NodeText {
		nodes[last].Text += n.Text
		return nodes
	}
	return append(nodes, n)
}
