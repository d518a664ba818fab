// Package clipboard provides clipboard operations using atotto/clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/diffpane"
)

// Ensure System implements the Clipboard interface.
var _ diffpane.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return clipboard.WriteAll(content)
}
