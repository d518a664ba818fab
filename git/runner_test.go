package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffpane/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRepo creates a temporary git repository with two commits touching
// greeting.txt.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()

	runGit(t, dir, "init", "-b", "main")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "greeting.txt", "Hello World\n")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "Initial commit")

	writeFile(t, dir, "greeting.txt", "Hello Blazor\n")
	runGit(t, dir, "commit", "-am", "Update greeting")

	return dir
}

// runGit executes a git command in the given directory.
func runGit(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "command git %v failed: %s", args, string(output))
	return string(output)
}

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
}

func TestRunner_Show(t *testing.T) {
	t.Parallel()

	t.Run("returns file contents at a revision", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		runner := git.NewRunner()

		before, err := runner.Show(context.Background(), dir, "HEAD~1", "greeting.txt")
		require.NoError(t, err)
		after, err := runner.Show(context.Background(), dir, "HEAD", "greeting.txt")
		require.NoError(t, err)

		assert.Equal(t, "Hello World\n", before)
		assert.Equal(t, "Hello Blazor\n", after)
	})

	t.Run("fails for a missing path", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		_, err := git.NewRunner().Show(context.Background(), dir, "HEAD", "missing.txt")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "git show failed")
	})
}

func TestRunner_Diff(t *testing.T) {
	t.Parallel()

	t.Run("returns the patch between revisions", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		patch, err := git.NewRunner().Diff(context.Background(), dir, "HEAD~1", "HEAD")

		require.NoError(t, err)
		assert.Contains(t, patch, "diff --git a/greeting.txt b/greeting.txt")
		assert.Contains(t, patch, "-Hello World")
		assert.Contains(t, patch, "+Hello Blazor")
	})

	t.Run("empty head diffs against the working tree", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)
		writeFile(t, dir, "greeting.txt", "Hello again\n")

		patch, err := git.NewRunner().Diff(context.Background(), dir, "HEAD", "")

		require.NoError(t, err)
		assert.Contains(t, patch, "+Hello again")
	})

	t.Run("fails for an unknown revision", func(t *testing.T) {
		t.Parallel()
		dir := setupTestRepo(t)

		_, err := git.NewRunner().Diff(context.Background(), dir, "nope", "HEAD")

		require.Error(t, err)
	})
}
