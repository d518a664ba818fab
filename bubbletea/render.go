package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpane"
	dplipgloss "github.com/fwojciec/diffpane/lipgloss"
	"github.com/mattn/go-runewidth"
)

// minGutterWidth is the minimum width of the line number column of a pane.
const minGutterWidth = 3

// separator divides the left and right panes.
const separator = " │ "

// renderConfig holds the parameters shared by all files of a render pass.
type renderConfig struct {
	styles   diffpane.Styles
	renderer *lipgloss.Renderer
	width    int
}

// fileRender is the input for rendering one file: its view plus the syntax
// tokens of each pane keyed by line position.
type fileRender struct {
	path   string
	view   diffpane.View
	tokens [2]map[int][]diffpane.Token
}

// segment is a run of text sharing one style.
type segment struct {
	text  string
	style lipgloss.Style
}

// renderFiles renders every file below a header line and returns the content
// together with the line index of each file header.
func renderFiles(files []fileRender, cfg renderConfig) (string, []int) {
	var sb strings.Builder
	positions := make([]int, 0, len(files))
	line := 0

	for i, f := range files {
		if i > 0 {
			sb.WriteString("\n")
			line++
		}
		positions = append(positions, line)

		sb.WriteString(renderHeader(f.path, f.view.Stats, cfg))
		sb.WriteString("\n")
		line++

		body := renderBody(f, cfg)
		sb.WriteString(body)
		sb.WriteString("\n")
		line += strings.Count(body, "\n") + 1
	}

	return sb.String(), positions
}

// renderHeader formats "── path ─────── lines +1 ~2 -3, words +4 ~5 -6 ──".
func renderHeader(path string, stats diffpane.Stats, cfg renderConfig) string {
	style := dplipgloss.Style(cfg.renderer, cfg.styles.Header)

	middle := "── " + path + " "
	end := " " + stats.String() + " ──"
	fill := cfg.width - runewidth.StringWidth(middle) - runewidth.StringWidth(end)
	if fill < 3 {
		fill = 3
	}

	header := middle + strings.Repeat("─", fill) + end
	if runewidth.StringWidth(header) > cfg.width {
		header = FitWidth(header, cfg.width)
	}
	return style.Render(header)
}

func renderBody(f fileRender, cfg renderConfig) string {
	if f.view.Empty() {
		return dplipgloss.Style(cfg.renderer, cfg.styles.Unchanged).Render("(no changes)")
	}

	colWidth := (cfg.width - runewidth.StringWidth(separator)) / 2
	if colWidth < minGutterWidth+2 {
		colWidth = minGutterWidth + 2
	}
	gutter := gutterWidth(f.view)

	left := renderPane(f.view.Left, f.tokens[diffpane.Left], gutter, colWidth, cfg)
	right := renderPane(f.view.Right, f.tokens[diffpane.Right], gutter, colWidth, cfg)

	rows := max(len(left), len(right))
	sep := dplipgloss.Style(cfg.renderer, cfg.styles.Separator).Render(
		strings.TrimSuffix(strings.Repeat(separator+"\n", rows), "\n"),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(padRows(left, rows, colWidth), "\n"),
		sep,
		strings.Join(padRows(right, rows, colWidth), "\n"),
	)
}

// renderPane renders one pane column, one string per row.
func renderPane(pv diffpane.PaneView, tokens map[int][]diffpane.Token, gutter, colWidth int, cfg renderConfig) []string {
	contentWidth := colWidth - gutter - 1
	lineNumStyle := dplipgloss.Style(cfg.renderer, cfg.styles.LineNumber)
	summaryStyle := dplipgloss.Style(cfg.renderer, cfg.styles.HiddenSummary)

	out := make([]string, 0, len(pv.Rows))
	for _, row := range pv.Rows {
		if row.Kind == diffpane.RowHidden {
			out = append(out, summaryStyle.Render(FitWidth("⋯ "+row.Summary(), colWidth)))
			continue
		}

		lineColors := cfg.styles.Line(row.Type)
		lineStyle := dplipgloss.Style(cfg.renderer, lineColors)

		var segs []segment
		if hasSpans(row.Nodes) {
			segs = nodeSegments(row.Nodes, lineStyle, lineColors, cfg)
		} else if toks, ok := tokens[row.Position]; ok && row.Position > 0 {
			segs = tokenSegments(toks, lineColors, cfg.renderer)
		} else {
			segs = []segment{{text: row.Text, style: lineStyle}}
		}

		number := lineNumStyle.Render(formatLineNum(row.Position, gutter) + " ")
		out = append(out, number+renderSegments(segs, contentWidth, lineStyle))
	}
	return out
}

// nodeSegments flattens a span tree. Word spans color their whole extent;
// character spans inside them override it.
func nodeSegments(nodes []diffpane.RenderNode, base lipgloss.Style, baseColors diffpane.ColorPair, cfg renderConfig) []segment {
	var segs []segment
	for _, n := range nodes {
		if n.Kind == diffpane.NodeText {
			segs = append(segs, segment{text: n.Text, style: base})
			continue
		}
		colors := overlay(baseColors, cfg.styles.Label(n.Label))
		style := dplipgloss.Style(cfg.renderer, colors)
		if strings.HasSuffix(n.Label, "-character") {
			style = style.Bold(true)
		}
		segs = append(segs, nodeSegments(n.Children, style, colors, cfg)...)
	}
	return segs
}

// tokenSegments combines syntax foregrounds with the line background.
func tokenSegments(tokens []diffpane.Token, colors diffpane.ColorPair, r *lipgloss.Renderer) []segment {
	segs := make([]segment, 0, len(tokens))
	for _, tok := range tokens {
		pair := colors
		if tok.Style.Foreground != "" {
			pair.Foreground = tok.Style.Foreground
		}
		style := dplipgloss.Style(r, pair)
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		segs = append(segs, segment{text: tok.Text, style: style})
	}
	return segs
}

// renderSegments writes segments into exactly width cells, expanding tabs,
// truncating with an ellipsis and padding with the pad style.
func renderSegments(segs []segment, width int, pad lipgloss.Style) string {
	var sb strings.Builder
	col := 0
	for i, seg := range segs {
		text := ExpandTabs(seg.text, col)
		w := runewidth.StringWidth(text)
		if col+w > width || (col+w == width && hasMoreText(segs[i+1:])) {
			text = runewidth.Truncate(text, width-col, "…")
			sb.WriteString(seg.style.Render(text))
			col += runewidth.StringWidth(text)
			break
		}
		sb.WriteString(seg.style.Render(text))
		col += w
	}
	if col < width {
		sb.WriteString(pad.Render(strings.Repeat(" ", width-col)))
	}
	return sb.String()
}

func hasMoreText(segs []segment) bool {
	for _, s := range segs {
		if s.text != "" {
			return true
		}
	}
	return false
}

func hasSpans(nodes []diffpane.RenderNode) bool {
	for _, n := range nodes {
		if n.Kind == diffpane.NodeSpan {
			return true
		}
	}
	return false
}

// overlay returns top with empty colors taken from base.
func overlay(base, top diffpane.ColorPair) diffpane.ColorPair {
	if top.Foreground == "" {
		top.Foreground = base.Foreground
	}
	if top.Background == "" {
		top.Background = base.Background
	}
	return top
}

func padRows(rows []string, n, width int) []string {
	blank := strings.Repeat(" ", width)
	for len(rows) < n {
		rows = append(rows, blank)
	}
	return rows
}

// gutterWidth returns the digit width of the largest position in the view.
func gutterWidth(v diffpane.View) int {
	maxPos := 0
	for _, pv := range []diffpane.PaneView{v.Left, v.Right} {
		for _, row := range pv.Rows {
			maxPos = max(maxPos, row.Position)
		}
	}
	return max(digitWidth(maxPos), minGutterWidth)
}

// formatLineNum right-aligns num, or returns blanks for absent positions.
func formatLineNum(num, width int) string {
	if num <= 0 {
		return fmt.Sprintf("%*s", width, "")
	}
	return fmt.Sprintf("%*d", width, num)
}

// digitWidth returns the number of digits needed to display n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
