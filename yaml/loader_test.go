package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, diffpane.DefaultConfig(), *cfg)
	})

	t.Run("overrides only the fields present", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
ignore_case: true
hide_unchanged_lines: true
context_lines: 5
theme: light
format: html
`)

		cfg, err := yaml.NewLoader().Load(path)

		require.NoError(t, err)
		assert.True(t, cfg.IgnoreCase)
		assert.True(t, cfg.HideUnchangedLines)
		assert.Equal(t, 5, cfg.ContextLines)
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, "html", cfg.Format)
		assert.Equal(t, 300, cfg.MaxHeightPixels, "unset fields keep defaults")
		assert.Equal(t, "words", cfg.Granularity)
	})

	t.Run("negative context lines clamp to zero", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "context_lines: -4\n")

		cfg, err := yaml.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, 0, cfg.ContextLines)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "context_lines: [not a number\n")

		cfg, err := yaml.NewLoader().Load(path)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), path)
	})
}

func TestDefaultPath(t *testing.T) {
	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

		assert.Equal(t, filepath.Join("/tmp/xdg", "diffpane", "config.yaml"), yaml.DefaultPath())
	})

	t.Run("falls back to the home directory", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(home, ".config", "diffpane", "config.yaml"), yaml.DefaultPath())
	})
}
