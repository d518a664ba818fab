package lipgloss_test

import (
	"io"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes(t *testing.T) {
	t.Parallel()

	themes := map[string]*lipgloss.Theme{
		"dark":  lipgloss.DarkTheme(),
		"light": lipgloss.LightTheme(),
	}

	for name, theme := range themes {
		name, theme := name, theme
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var _ diffpane.Theme = theme
			styles := theme.Styles()

			t.Run("colors every changed line type", func(t *testing.T) {
				for _, typ := range []diffpane.ChangeType{diffpane.Inserted, diffpane.Deleted, diffpane.Modified} {
					assert.NotEmpty(t, styles.Line(typ).Background, typ.String())
				}
			})

			t.Run("colors every span label", func(t *testing.T) {
				for _, typ := range []diffpane.ChangeType{diffpane.Inserted, diffpane.Deleted, diffpane.Modified} {
					assert.NotEmpty(t, styles.Label(diffpane.CharacterLabel(typ)).Background)
					assert.NotEmpty(t, styles.Label(diffpane.WordLabel(typ)).Background)
				}
			})

			t.Run("character highlights differ from word highlights", func(t *testing.T) {
				assert.NotEqual(t, styles.InsertedHighlight, styles.InsertedWord)
				assert.NotEqual(t, styles.DeletedHighlight, styles.DeletedWord)
			})

			t.Run("has syntax palette", func(t *testing.T) {
				p := theme.Palette()
				assert.NotEmpty(t, p.Keyword)
				assert.NotEmpty(t, p.String)
				assert.NotEmpty(t, p.Comment)
			})
		})
	}
}

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.DarkTheme(), lipgloss.DefaultTheme())
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := lipgloss.ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.DarkTheme(), dark)

	light, err := lipgloss.ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.LightTheme(), light)

	_, err = lipgloss.ThemeByName("neon")
	require.Error(t, err)
}

func TestStyle(t *testing.T) {
	t.Parallel()

	r := lg.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)

	t.Run("applies both colors", func(t *testing.T) {
		t.Parallel()

		out := lipgloss.Style(r, diffpane.ColorPair{Foreground: "#ff0000", Background: "#00ff00"}).Render("x")

		assert.Contains(t, out, "38;2;255;0;0")
		assert.Contains(t, out, "48;2;0;255;0")
	})

	t.Run("empty pair renders plain text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", lipgloss.Style(r, diffpane.ColorPair{}).Render("x"))
	})
}
