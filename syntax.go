package diffpane

// Token is a syntax-highlighted fragment of a line.
type Token struct {
	Text  string
	Style Style
}

// Style is the syntax styling of a token.
type Style struct {
	Foreground string // Hex color or empty for the line's default
	Bold       bool
}

// Tokenizer splits source text into syntax tokens.
type Tokenizer interface {
	// TokenizeLines lexes lines as one document, so constructs spanning
	// lines are styled correctly, and returns one token slice per line.
	// It returns nil if the language is not supported.
	TokenizeLines(language string, lines []string) [][]Token
}

// LanguageDetector determines the language of a file.
type LanguageDetector interface {
	// Detect returns an empty string if the language is unknown. The path
	// is consulted first and content only when the path is inconclusive.
	Detect(path, content string) string
}
