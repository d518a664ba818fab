package html_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloBlazor() diffpane.SideBySide {
	return diffpane.SideBySide{
		Old: &diffpane.Pane{Lines: []diffpane.Piece{
			{Text: "Hello World", Type: diffpane.Modified, Position: 1, SubPieces: []diffpane.Piece{
				{Text: "Hello", Type: diffpane.Unchanged, Position: 1},
				{Text: " ", Type: diffpane.Unchanged, Position: 2},
				{Text: "World", Type: diffpane.Modified, Position: 3},
			}},
			{Type: diffpane.Imaginary},
		}},
		New: &diffpane.Pane{Lines: []diffpane.Piece{
			{Text: "Hello Blazor", Type: diffpane.Modified, Position: 1, SubPieces: []diffpane.Piece{
				{Text: "Hello", Type: diffpane.Unchanged, Position: 1},
				{Text: " ", Type: diffpane.Unchanged, Position: 2},
				{Text: "Blazor", Type: diffpane.Modified, Position: 3},
			}},
			{Text: "a < b", Type: diffpane.Inserted, Position: 2},
		}},
	}
}

func render(t *testing.T, r *html.Renderer, view diffpane.View) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, view))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders two panes with one row per line", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		assert.Equal(t, 1, doc.Find("div.text-diff > div.diff-panes").Length())
		left := doc.Find("div.diff-pane.diff-pane-left table.diff tr")
		right := doc.Find("div.diff-pane.diff-pane-right table.diff tr")
		assert.Equal(t, 2, left.Length())
		assert.Equal(t, 2, right.Length())
	})

	t.Run("marks line numbers and line cells with the change class", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		right := doc.Find("div.diff-pane-right tr")
		first := right.Eq(0)
		assert.Equal(t, "1", first.Find("td.line-number.modified").Text())
		assert.Equal(t, 1, first.Find("td.line.modified-line span.line-text").Length())

		imaginary := doc.Find("div.diff-pane-left tr").Eq(1)
		assert.Equal(t, diffpane.NonBreakingSpace, imaginary.Find("td.line-number.imaginary").Text())
		assert.Empty(t, imaginary.Find("td.imaginary-line span.line-text").Text())
	})

	t.Run("writes absent line numbers as an nbsp entity", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, html.NewRenderer().Render(&buf, diffpane.NewView(helloBlazor(), diffpane.DefaultOptions())))

		assert.Contains(t, buf.String(), `<td class="line-number imaginary">&nbsp;</td>`)
		assert.NotContains(t, buf.String(), diffpane.NonBreakingSpace)
	})

	t.Run("wraps changed words in labelled spans", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		lineText := doc.Find("div.diff-pane-right tr").Eq(0).Find("span.line-text")
		assert.Equal(t, "Hello Blazor", lineText.Text())
		assert.Equal(t, "Blazor", lineText.Find("span.modified-character").Text())
	})

	t.Run("escapes line text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, html.NewRenderer().Render(&buf, diffpane.NewView(helloBlazor(), diffpane.DefaultOptions())))

		assert.Contains(t, buf.String(), "a &lt; b")
	})

	t.Run("renders hidden summaries", func(t *testing.T) {
		t.Parallel()

		lines := make([]diffpane.Piece, 10)
		for i := range lines {
			lines[i] = diffpane.Piece{Text: "same", Type: diffpane.Unchanged, Position: i + 1}
		}
		changed := append([]diffpane.Piece(nil), lines...)
		changed[4] = diffpane.Piece{Text: "other", Type: diffpane.Inserted, Position: 5}
		opts := diffpane.DefaultOptions()
		opts.HideUnchangedLines = true
		opts.ContextLines = 1

		view := diffpane.NewView(diffpane.SideBySide{Old: &diffpane.Pane{Lines: lines}, New: &diffpane.Pane{Lines: changed}}, opts)
		doc := render(t, html.NewRenderer(), view)

		summaries := doc.Find("div.diff-pane-right td.diff-hidden-summary")
		require.Equal(t, 2, summaries.Length())
		assert.Equal(t, "3 lines hidden", summaries.Eq(0).Text())
		assert.Equal(t, "4 lines hidden", summaries.Eq(1).Text())
		colspan, _ := summaries.Eq(0).Attr("colspan")
		assert.Equal(t, "2", colspan)
	})

	t.Run("caps pane height when collapsing content", func(t *testing.T) {
		t.Parallel()

		opts := diffpane.DefaultOptions()
		opts.CollapseContent = true
		opts.MaxHeightPixels = 120

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), opts))

		style, _ := doc.Find("div.diff-panes").Attr("style")
		assert.Equal(t, "max-height: 120px; overflow: auto;", style)
	})

	t.Run("leaves height unbounded by default", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		style, _ := doc.Find("div.diff-panes").Attr("style")
		assert.Equal(t, "max-height: auto;", style)
	})

	t.Run("renders statistics header", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		assert.Equal(t, "+1", doc.Find("div.diff-header span.line-additions").Text())
		assert.Equal(t, "~1", doc.Find("div.diff-header span.line-modifications").Text())
	})

	t.Run("omits header when disabled", func(t *testing.T) {
		t.Parallel()

		doc := render(t, html.NewRenderer(html.WithHeader(false)), diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		assert.Zero(t, doc.Find("div.diff-header").Length())
	})

	t.Run("empty view renders no panes", func(t *testing.T) {
		t.Parallel()

		view := diffpane.NewView(diffpane.SideBySide{Old: &diffpane.Pane{}, New: &diffpane.Pane{}}, diffpane.DefaultOptions())
		doc := render(t, html.NewRenderer(), view)

		assert.Equal(t, 1, doc.Find("div.text-diff").Length())
		assert.Zero(t, doc.Find("div.diff-panes").Length())
	})

	t.Run("returns write errors", func(t *testing.T) {
		t.Parallel()

		err := html.NewRenderer().Render(failingWriter{}, diffpane.NewView(helloBlazor(), diffpane.DefaultOptions()))

		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}
