package mock

import "github.com/fwojciec/diffpane"

// Compile-time interface verification.
var _ diffpane.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of diffpane.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
