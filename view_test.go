package diffpane_test

import (
	"testing"

	"github.com/fwojciec/diffpane"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewView(t *testing.T) {
	t.Parallel()

	t.Run("renders every line when nothing is hidden", func(t *testing.T) {
		t.Parallel()

		sbs := diffpane.SideBySide{
			Old: &diffpane.Pane{Lines: []diffpane.Piece{
				{Text: "first", Type: diffpane.Unchanged, Position: 1},
				{Type: diffpane.Imaginary},
			}},
			New: &diffpane.Pane{Lines: []diffpane.Piece{
				{Text: "first", Type: diffpane.Unchanged, Position: 1},
				{Text: "second", Type: diffpane.Inserted, Position: 2},
			}},
		}

		view := diffpane.NewView(sbs, diffpane.DefaultOptions())

		require.Len(t, view.Left.Rows, 2)
		require.Len(t, view.Right.Rows, 2)
		assert.Equal(t, diffpane.Left, view.Left.Side)
		assert.Equal(t, diffpane.Right, view.Right.Side)
		assert.Equal(t, 1, view.Stats.LineAdditions)

		imaginary := view.Left.Rows[1]
		assert.Equal(t, "imaginary", imaginary.Class())
		assert.Equal(t, diffpane.NonBreakingSpace, imaginary.PositionLabel())
		assert.Empty(t, imaginary.Nodes)

		inserted := view.Right.Rows[1]
		assert.Equal(t, "inserted", inserted.Class())
		assert.Equal(t, "2", inserted.PositionLabel())
		assert.Equal(t, []diffpane.RenderNode{diffpane.Text("second")}, inserted.Nodes)
	})

	t.Run("summarizes hidden rows when unchanged lines are hidden", func(t *testing.T) {
		t.Parallel()

		pane := paneWithChanges(10, 4)
		opts := diffpane.DefaultOptions()
		opts.HideUnchangedLines = true
		opts.ContextLines = 1

		view := diffpane.NewView(diffpane.SideBySide{Old: pane, New: pane}, opts)

		rows := view.Left.Rows
		require.Len(t, rows, 5)
		assert.Equal(t, diffpane.RowHidden, rows[0].Kind)
		assert.Equal(t, "3 lines hidden", rows[0].Summary())
		assert.Equal(t, "Line 4", rows[1].Text)
		assert.Equal(t, "Line 5", rows[2].Text)
		assert.Equal(t, "Line 6", rows[3].Text)
		assert.Equal(t, "4 lines hidden", rows[4].Summary())
	})

	t.Run("absent pane yields no rows", func(t *testing.T) {
		t.Parallel()

		view := diffpane.NewView(diffpane.SideBySide{
			New: &diffpane.Pane{Lines: []diffpane.Piece{{Text: "x", Type: diffpane.Inserted, Position: 1}}},
		}, diffpane.DefaultOptions())

		assert.Empty(t, view.Left.Rows)
		assert.Len(t, view.Right.Rows, 1)
		assert.False(t, view.Empty())
	})

	t.Run("empty panes produce an empty view", func(t *testing.T) {
		t.Parallel()

		view := diffpane.NewView(diffpane.SideBySide{Old: &diffpane.Pane{}, New: &diffpane.Pane{}}, diffpane.DefaultOptions())

		assert.True(t, view.Empty())
	})
}

func TestRow_Summary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 line hidden", diffpane.Row{Kind: diffpane.RowHidden, Hidden: 1}.Summary())
	assert.Equal(t, "12 lines hidden", diffpane.Row{Kind: diffpane.RowHidden, Hidden: 12}.Summary())
}

func TestChangeType_String(t *testing.T) {
	t.Parallel()

	cases := map[diffpane.ChangeType]string{
		diffpane.Unchanged: "unchanged",
		diffpane.Inserted:  "inserted",
		diffpane.Deleted:   "deleted",
		diffpane.Modified:  "modified",
		diffpane.Imaginary: "imaginary",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.String())
	}
}
