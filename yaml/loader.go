// Package yaml loads diffpane configuration files using gopkg.in/yaml.v3.
package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffpane"
	"gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ diffpane.ConfigLoader = (*Loader)(nil)

// Loader reads a Config from a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration at path. Fields absent from the file keep
// their defaults, and a missing file yields DefaultConfig.
func (l *Loader) Load(path string) (*diffpane.Config, error) {
	cfg := diffpane.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ContextLines < 0 {
		cfg.ContextLines = 0
	}

	return &cfg, nil
}

// DefaultPath returns the configuration file location:
// $XDG_CONFIG_HOME/diffpane/config.yaml, falling back to
// ~/.config/diffpane/config.yaml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "diffpane", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "diffpane", "config.yaml")
}
