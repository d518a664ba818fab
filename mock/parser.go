// Package mock provides test doubles for diffpane interfaces.
package mock

import (
	"io"

	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Parser = (*Parser)(nil)

// Parser is a mock implementation of diffpane.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*diffpane.Diff, error)
}

func (p *Parser) Parse(r io.Reader) (*diffpane.Diff, error) {
	return p.ParseFn(r)
}
