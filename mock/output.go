package mock

import (
	"io"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var (
	_ diffpane.Renderer = (*Renderer)(nil)
	_ diffpane.Encoder  = (*Encoder)(nil)
)

// Renderer is a mock implementation of diffpane.Renderer.
type Renderer struct {
	RenderFn func(w io.Writer, view diffpane.View) error
}

func (r *Renderer) Render(w io.Writer, view diffpane.View) error {
	return r.RenderFn(w, view)
}

// Encoder is a mock implementation of diffpane.Encoder.
type Encoder struct {
	EncodeFn func(w io.Writer, path string, view diffpane.View) error
}

func (e *Encoder) Encode(w io.Writer, path string, view diffpane.View) error {
	return e.EncodeFn(w, path, view)
}
