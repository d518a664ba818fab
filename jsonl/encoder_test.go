package jsonl_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloView() diffpane.View {
	sbs := diffpane.SideBySide{
		Old: &diffpane.Pane{Lines: []diffpane.Piece{{
			Text: "Hello World", Type: diffpane.Modified, Position: 1,
			SubPieces: []diffpane.Piece{
				{Text: "Hello", Type: diffpane.Unchanged, Position: 1},
				{Text: " ", Type: diffpane.Unchanged, Position: 2},
				{Text: "World", Type: diffpane.Modified, Position: 3},
			},
		}}},
		New: &diffpane.Pane{Lines: []diffpane.Piece{{
			Text: "Hello Blazor", Type: diffpane.Modified, Position: 1,
			SubPieces: []diffpane.Piece{
				{Text: "Hello", Type: diffpane.Unchanged, Position: 1},
				{Text: " ", Type: diffpane.Unchanged, Position: 2},
				{Text: "Blazor", Type: diffpane.Modified, Position: 3},
			},
		}}},
	}
	return diffpane.NewView(sbs, diffpane.DefaultOptions())
}

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes one record per call", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		enc := jsonl.NewEncoder()

		require.NoError(t, enc.Encode(&buf, "a.txt", helloView()))
		require.NoError(t, enc.Encode(&buf, "b.txt", helloView()))

		var paths []string
		scanner := bufio.NewScanner(&buf)
		for scanner.Scan() {
			var rec map[string]any
			require.NoError(t, json.Unmarshal(scanner.Bytes(), &rec))
			paths = append(paths, rec["path"].(string))
		}
		assert.Equal(t, []string{"a.txt", "b.txt"}, paths)
	})

	t.Run("labels enums by name", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		require.NoError(t, jsonl.NewEncoder().Encode(&buf, "greeting.txt", helloView()))

		out := buf.String()
		assert.Contains(t, out, `"line_modifications":1`)
		assert.Contains(t, out, `"side":"right"`)
		assert.Contains(t, out, `"type":"modified"`)
		assert.Contains(t, out, `"label":"modified-character"`)
		assert.Contains(t, out, `"kind":"span"`)
		assert.Contains(t, out, `"text":"Hello "`)
	})

	t.Run("returns write errors", func(t *testing.T) {
		t.Parallel()

		err := jsonl.NewEncoder().Encode(failingWriter{}, "x", helloView())

		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}
