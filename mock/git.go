package mock

import (
	"context"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of diffpane.GitRunner.
type GitRunner struct {
	ShowFn func(ctx context.Context, repoPath, rev, path string) (string, error)
	DiffFn func(ctx context.Context, repoPath, base, head string) (string, error)
}

func (g *GitRunner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return g.ShowFn(ctx, repoPath, rev, path)
}

func (g *GitRunner) Diff(ctx context.Context, repoPath, base, head string) (string, error) {
	return g.DiffFn(ctx, repoPath, base, head)
}
