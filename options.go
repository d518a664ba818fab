package diffpane

import "fmt"

// Granularity selects how a modified line is split into sub-pieces.
type Granularity int

// Granularities.
const (
	Words Granularity = iota
	Characters
)

// String returns "words" or "characters".
func (g Granularity) String() string {
	if g == Characters {
		return "characters"
	}
	return "words"
}

// ParseGranularity parses "words" or "characters". Anything else is an error.
func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "", "words":
		return Words, nil
	case "characters":
		return Characters, nil
	}
	return Words, fmt.Errorf("unknown granularity %q", s)
}

// DiffOptions are passed through to the upstream diff computation.
type DiffOptions struct {
	IgnoreCase       bool
	IgnoreWhiteSpace bool
	Granularity      Granularity
}

// Options are the caller-supplied presentation options for a diff view.
type Options struct {
	IgnoreCase         bool `yaml:"ignore_case"`
	IgnoreWhiteSpace   bool `yaml:"ignore_whitespace"`
	HideUnchangedLines bool `yaml:"hide_unchanged_lines"`
	ContextLines       int  `yaml:"context_lines"`
	CollapseContent    bool `yaml:"collapse_content"`
	MaxHeightPixels    int  `yaml:"max_height_pixels"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ContextLines:    3,
		MaxHeightPixels: 300,
	}
}

// DiffOptions returns the subset of o consumed by a Differ.
func (o Options) DiffOptions() DiffOptions {
	return DiffOptions{
		IgnoreCase:       o.IgnoreCase,
		IgnoreWhiteSpace: o.IgnoreWhiteSpace,
	}
}

// Config is the persisted configuration of the diffpane command.
type Config struct {
	Options `yaml:",inline"`
	Theme   string `yaml:"theme"`  // "dark" or "light"
	Format  string `yaml:"format"` // "tui", "html" or "json"
	Header  bool   `yaml:"header"` // Render the stats header in HTML output

	Granularity string `yaml:"granularity"` // "words" or "characters"
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Options: DefaultOptions(),
		Theme:   "dark",
		Format:  "tui",
		Header:  true,

		Granularity: "words",
	}
}
