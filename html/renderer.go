// Package html renders diff views as two-pane HTML markup using
// golang.org/x/net/html.
package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/diffpane"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Compile-time interface verification.
var _ diffpane.Renderer = (*Renderer)(nil)

// Renderer writes a View as a div.text-diff fragment.
type Renderer struct {
	header bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeader controls whether the statistics header is rendered.
func WithHeader(enabled bool) Option {
	return func(r *Renderer) {
		r.header = enabled
	}
}

// NewRenderer creates a new Renderer. The header is rendered by default.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{header: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the markup for view to w.
func (r *Renderer) Render(w io.Writer, view diffpane.View) error {
	root := element(atom.Div, "text-diff")

	if r.header {
		root.AppendChild(headerNode(view.Stats))
	}

	if !view.Empty() {
		panes := element(atom.Div, "diff-panes")
		panes.Attr = append(panes.Attr, html.Attribute{Key: "style", Val: panesStyle(view.Options)})
		panes.AppendChild(paneNode(view.Left))
		panes.AppendChild(paneNode(view.Right))
		root.AppendChild(panes)
	}

	if err := html.Render(w, root); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func panesStyle(opts diffpane.Options) string {
	if opts.CollapseContent {
		return fmt.Sprintf("max-height: %dpx; overflow: auto;", opts.MaxHeightPixels)
	}
	return "max-height: auto;"
}

func headerNode(s diffpane.Stats) *html.Node {
	header := element(atom.Div, "diff-header")
	stats := []struct {
		class string
		label string
		n     int
	}{
		{"line-additions", "+", s.LineAdditions},
		{"line-modifications", "~", s.LineModifications},
		{"line-deletions", "-", s.LineDeletions},
		{"word-additions", "+", s.WordAdditions},
		{"word-modifications", "~", s.WordModifications},
		{"word-deletions", "-", s.WordDeletions},
	}
	for i, st := range stats {
		if i == 3 {
			header.AppendChild(text(" "))
		}
		span := element(atom.Span, "diff-stat", st.class)
		span.AppendChild(text(fmt.Sprintf("%s%d", st.label, st.n)))
		header.AppendChild(span)
	}
	return header
}

func paneNode(pv diffpane.PaneView) *html.Node {
	pane := element(atom.Div, "diff-pane", "diff-pane-"+pv.Side.String())
	table := element(atom.Table, "diff")
	tbody := element(atom.Tbody)
	for _, row := range pv.Rows {
		tbody.AppendChild(rowNode(row))
	}
	table.AppendChild(tbody)
	pane.AppendChild(table)
	return pane
}

func rowNode(row diffpane.Row) *html.Node {
	tr := element(atom.Tr)

	if row.Kind == diffpane.RowHidden {
		td := element(atom.Td, "diff-hidden-summary")
		td.Attr = append(td.Attr, html.Attribute{Key: "colspan", Val: "2"})
		td.AppendChild(text(row.Summary()))
		tr.AppendChild(td)
		return tr
	}

	class := row.Class()

	number := element(atom.Td, "line-number", class)
	if row.Position <= 0 {
		// Absent positions are written as an entity.
		number.AppendChild(&html.Node{Type: html.RawNode, Data: "&nbsp;"})
	} else {
		number.AppendChild(text(row.PositionLabel()))
	}
	tr.AppendChild(number)

	line := element(atom.Td, "line", class+"-line")
	lineText := element(atom.Span, "line-text")
	appendNodes(lineText, row.Nodes)
	line.AppendChild(lineText)
	tr.AppendChild(line)

	return tr
}

func appendNodes(parent *html.Node, nodes []diffpane.RenderNode) {
	for _, n := range nodes {
		if n.Kind == diffpane.NodeText {
			parent.AppendChild(text(n.Text))
			continue
		}
		span := element(atom.Span, n.Label)
		appendNodes(span, n.Children)
		parent.AppendChild(span)
	}
}

func element(a atom.Atom, classes ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if len(classes) > 0 {
		n.Attr = []html.Attribute{{Key: "class", Val: strings.Join(classes, " ")}}
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
