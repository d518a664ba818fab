package chroma

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.LanguageDetector = (*Detector)(nil)

// Detector detects programming languages using chroma's lexer registry.
type Detector struct{}

// NewDetector creates a new chroma-based language detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the language name for the file at path, falling back to
// analysing content when the file name matches no lexer. Strips "a/" or
// "b/" prefixes common in diff output.
func (d *Detector) Detect(path, content string) string {
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")

	if path != "" {
		if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
			return lexer.Config().Name
		}
	}

	if content == "" {
		return ""
	}
	if lexer := lexers.Analyse(content); lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
