package mock

import "github.com/fwojciec/diffpane"

// Compile-time interface verification.
var _ diffpane.ConfigLoader = (*ConfigLoader)(nil)

// ConfigLoader is a mock implementation of diffpane.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(path string) (*diffpane.Config, error)
}

func (c *ConfigLoader) Load(path string) (*diffpane.Config, error) {
	return c.LoadFn(path)
}
