// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Show returns the contents of path at revision rev.
func (r *Runner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	out, err := r.run(ctx, repoPath, "show", rev+":"+path)
	if err != nil {
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return out, nil
}

// Diff returns the unified patch between base and head. An empty head diffs
// base against the working tree.
func (r *Runner) Diff(ctx context.Context, repoPath, base, head string) (string, error) {
	args := []string{"diff", "--no-color", "--no-ext-diff", base}
	if head != "" {
		args = append(args, head)
	}
	out, err := r.run(ctx, repoPath, args...)
	if err != nil {
		return "", fmt.Errorf("git diff failed: %w", err)
	}
	return out, nil
}

func (r *Runner) run(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoPath}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.New(string(exitErr.Stderr))
		}
		return "", err
	}
	return string(output), nil
}
