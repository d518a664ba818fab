package mock

import (
	"context"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of diffpane.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, files []diffpane.FileView) error
}

func (v *Viewer) View(ctx context.Context, files []diffpane.FileView) error {
	return v.ViewFn(ctx, files)
}
