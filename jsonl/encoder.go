// Package jsonl writes diff views as JSON lines.
package jsonl

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Encoder = (*Encoder)(nil)

// Record is the JSON line written for one file.
type Record struct {
	Path  string            `json:"path"`
	Stats diffpane.Stats    `json:"stats"`
	Left  diffpane.PaneView `json:"left"`
	Right diffpane.PaneView `json:"right"`
}

// Encoder writes one Record per file view.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes view as a single JSON line to w.
func (e *Encoder) Encode(w io.Writer, path string, view diffpane.View) error {
	data, err := json.Marshal(Record{
		Path:  path,
		Stats: view.Stats,
		Left:  view.Left,
		Right: view.Right,
	})
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	return nil
}
