// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpane"
)

// Compile-time interface verification.
var _ diffpane.Theme = (*Theme)(nil)

// Theme implements diffpane.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  diffpane.Styles
	palette diffpane.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() diffpane.Styles {
	return t.styles
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() diffpane.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// ThemeByName returns the theme called "dark" or "light".
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// Style converts a color pair into a lipgloss style bound to renderer r.
// Empty colors are left unset.
func Style(r *lipgloss.Renderer, c diffpane.ColorPair) lipgloss.Style {
	s := r.NewStyle()
	if c.Foreground != "" {
		s = s.Foreground(lipgloss.Color(c.Foreground))
	}
	if c.Background != "" {
		s = s.Background(lipgloss.Color(c.Background))
	}
	return s
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Line backgrounds are very dark so syntax colors stay readable; changed
// characters get bright backgrounds, changed words a medium one.
func DarkTheme() *Theme {
	return &Theme{
		styles: diffpane.Styles{
			Unchanged: diffpane.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Inserted: diffpane.ColorPair{
				Foreground: "#a6e3a1", // Green
				Background: "#004000",
			},
			Deleted: diffpane.ColorPair{
				Foreground: "#f38ba8", // Red
				Background: "#3f0001",
			},
			Modified: diffpane.ColorPair{
				Foreground: "#f9e2af", // Yellow
				Background: "#2e2a10",
			},
			Imaginary: diffpane.ColorPair{
				Background: "#181825", // Mantle
			},
			InsertedHighlight: diffpane.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#a6e3a1",
			},
			DeletedHighlight: diffpane.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f38ba8",
			},
			ModifiedHighlight: diffpane.ColorPair{
				Foreground: "#1e1e2e",
				Background: "#f9e2af",
			},
			InsertedWord: diffpane.ColorPair{
				Background: "#1f5e1f",
			},
			DeletedWord: diffpane.ColorPair{
				Background: "#6b1a24",
			},
			ModifiedWord: diffpane.ColorPair{
				Background: "#5c5020",
			},
			LineNumber: diffpane.ColorPair{
				Foreground: "#6c7086",
			},
			Header: diffpane.ColorPair{
				Foreground: "#f9e2af",
				Background: "#313244", // Surface
			},
			HiddenSummary: diffpane.ColorPair{
				Foreground: "#89b4fa", // Blue
			},
			Separator: diffpane.ColorPair{
				Foreground: "#45475a",
			},
		},
		palette: diffpane.Palette{
			// Catppuccin Mocha
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: diffpane.Styles{
			Unchanged: diffpane.ColorPair{
				Foreground: "#9ca0b0",
			},
			Inserted: diffpane.ColorPair{
				Foreground: "#40a02b",
				Background: "#d4f4d4",
			},
			Deleted: diffpane.ColorPair{
				Foreground: "#d20f39",
				Background: "#f4d4d4",
			},
			Modified: diffpane.ColorPair{
				Foreground: "#df8e1d",
				Background: "#f7ecd2",
			},
			Imaginary: diffpane.ColorPair{
				Background: "#e6e9ef", // Mantle
			},
			InsertedHighlight: diffpane.ColorPair{
				Foreground: "#ffffff",
				Background: "#40a02b",
			},
			DeletedHighlight: diffpane.ColorPair{
				Foreground: "#ffffff",
				Background: "#d20f39",
			},
			ModifiedHighlight: diffpane.ColorPair{
				Foreground: "#ffffff",
				Background: "#df8e1d",
			},
			InsertedWord: diffpane.ColorPair{
				Background: "#a9e0a9",
			},
			DeletedWord: diffpane.ColorPair{
				Background: "#eeb0b0",
			},
			ModifiedWord: diffpane.ColorPair{
				Background: "#f0d8a0",
			},
			LineNumber: diffpane.ColorPair{
				Foreground: "#9ca0b0",
			},
			Header: diffpane.ColorPair{
				Foreground: "#df8e1d",
				Background: "#e6e9ef",
			},
			HiddenSummary: diffpane.ColorPair{
				Foreground: "#1e66f5",
			},
			Separator: diffpane.ColorPair{
				Foreground: "#bcc0cc",
			},
		},
		palette: diffpane.Palette{
			// Catppuccin Latte
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
