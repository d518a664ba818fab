// Package bubbletea provides a side-by-side terminal diff viewer using the
// Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/diffpane"
	dplipgloss "github.com/fwojciec/diffpane/lipgloss"
	"github.com/mattn/go-runewidth"
)

// statusBarHeight is the number of rows below the viewport.
const statusBarHeight = 1

// hintSeparator divides the key hints of the status bar.
const hintSeparator = "  "

// Model is the Bubble Tea model for viewing side-by-side diffs.
type Model struct {
	files   []diffpane.FileView
	opts    diffpane.Options
	tokens  [][2]map[int][]diffpane.Token
	content string

	// Line index of each file header within content.
	filePositions []int

	clipboard diffpane.Clipboard

	viewport   viewport.Model
	keymap     KeyMap
	styles     diffpane.Styles
	palette    diffpane.Palette
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	pendingKey string
	message    string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer         *lipgloss.Renderer
	theme            diffpane.Theme
	languageDetector diffpane.LanguageDetector
	tokenizer        diffpane.Tokenizer
	clipboard        diffpane.Clipboard
	options          *diffpane.Options
	keymap           *KeyMap
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t diffpane.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d diffpane.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t diffpane.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard sets the clipboard used by the yank binding.
func WithClipboard(c diffpane.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithOptions sets the initial presentation options.
func WithOptions(o diffpane.Options) ModelOption {
	return func(cfg *modelConfig) {
		cfg.options = &o
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keymap = &km
	}
}

// NewModel creates a new Model displaying files.
func NewModel(files []diffpane.FileView, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	theme := cfg.theme
	if theme == nil {
		theme = dplipgloss.DefaultTheme()
	}
	renderer := cfg.renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	options := diffpane.DefaultOptions()
	if cfg.options != nil {
		options = *cfg.options
	}
	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	return Model{
		files:     files,
		opts:      options,
		tokens:    highlight(files, cfg.languageDetector, cfg.tokenizer),
		clipboard: cfg.clipboard,
		keymap:    keymap,
		styles:    theme.Styles(),
		palette:   theme.Palette(),
		renderer:  renderer,
	}
}

// highlight tokenizes the lines of every pane, keyed by line position.
func highlight(files []diffpane.FileView, detector diffpane.LanguageDetector, tokenizer diffpane.Tokenizer) [][2]map[int][]diffpane.Token {
	out := make([][2]map[int][]diffpane.Token, len(files))
	if detector == nil || tokenizer == nil {
		return out
	}

	for i, f := range files {
		panes := [2]*diffpane.Pane{f.Panes.Old, f.Panes.New}
		language := detector.Detect(f.Path, paneText(f.Panes.New))
		if language == "" {
			continue
		}
		for side, pane := range panes {
			if pane == nil {
				continue
			}
			var lines []string
			var positions []int
			for _, l := range pane.Lines {
				if l.Position > 0 {
					lines = append(lines, l.Text)
					positions = append(positions, l.Position)
				}
			}
			toks := tokenizer.TokenizeLines(language, lines)
			if toks == nil {
				continue
			}
			byPos := make(map[int][]diffpane.Token, len(toks))
			for j, t := range toks {
				if j < len(positions) {
					byPos[positions[j]] = t
				}
			}
			out[i][side] = byPos
		}
	}
	return out
}

// paneText joins the lines of pane that exist in the source text.
func paneText(pane *diffpane.Pane) string {
	if pane == nil {
		return ""
	}
	lines := make([]string, 0, len(pane.Lines))
	for _, l := range pane.Lines {
		if l.Type != diffpane.Imaginary {
			lines = append(lines, l.Text)
		}
	}
	return strings.Join(lines, "\n")
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.message = ""

		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}
		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}
		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfViewUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfViewDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.LineUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.LineDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.NextFile):
			m.gotoFile(m.currentFile() + 1)
			return m, nil
		case key.Matches(msg, m.keymap.PrevFile):
			m.gotoFile(m.currentFile() - 1)
			return m, nil
		case key.Matches(msg, m.keymap.ToggleHidden):
			m.toggleHidden()
			return m, nil
		case key.Matches(msg, m.keymap.Yank):
			m.yank()
			return m, nil
		}
	case tea.WindowSizeMsg:
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.rerender()
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			if widthChanged {
				m.rerender()
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// Options returns the current presentation options.
func (m Model) Options() diffpane.Options {
	return m.opts
}

// FilePositions returns the content line of each file header.
func (m Model) FilePositions() []int {
	return m.filePositions
}

// Message returns the transient status message, if any.
func (m Model) Message() string {
	return m.message
}

// rerender rebuilds every file view with the current options and replaces
// the viewport content.
func (m *Model) rerender() {
	renders := make([]fileRender, len(m.files))
	for i, f := range m.files {
		renders[i] = fileRender{
			path:   f.Path,
			view:   diffpane.NewView(f.Panes, m.opts),
			tokens: m.tokens[i],
		}
	}

	cfg := renderConfig{styles: m.styles, renderer: m.renderer, width: m.width}
	if len(renders) == 0 {
		m.content = m.newStyle(m.styles.Unchanged).Render("No changes.")
		m.filePositions = nil
	} else {
		m.content, m.filePositions = renderFiles(renders, cfg)
	}
	m.viewport.SetContent(m.content)
}

func (m *Model) toggleHidden() {
	current := m.currentFile()
	m.opts.HideUnchangedLines = !m.opts.HideUnchangedLines
	m.rerender()
	m.gotoFile(current)
	if m.opts.HideUnchangedLines {
		m.message = "hiding unchanged lines"
	} else {
		m.message = "showing all lines"
	}
}

// yank copies the new text of the current file to the clipboard.
func (m *Model) yank() {
	if m.clipboard == nil || len(m.files) == 0 {
		return
	}
	f := m.files[m.currentFile()]
	if err := m.clipboard.Copy(paneText(f.Panes.New)); err != nil {
		m.message = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.message = "copied " + f.Path
}

// currentFile returns the index of the file whose header is at or above the
// top of the viewport.
func (m Model) currentFile() int {
	current := 0
	for i, pos := range m.filePositions {
		if pos <= m.viewport.YOffset {
			current = i
		}
	}
	return current
}

func (m *Model) gotoFile(i int) {
	if len(m.filePositions) == 0 {
		return
	}
	i = max(0, min(i, len(m.filePositions)-1))
	m.viewport.SetYOffset(m.filePositions[i])
}

func (m Model) newStyle(c diffpane.ColorPair) lipgloss.Style {
	return dplipgloss.Style(m.renderer, c)
}

// statusBarView renders the status bar with position info and key hints.
func (m Model) statusBarView() string {
	barColors := diffpane.ColorPair{
		Foreground: string(m.palette.Foreground),
		Background: m.styles.Header.Background,
	}
	barStyle := m.newStyle(barColors)
	dimStyle := m.newStyle(diffpane.ColorPair{
		Foreground: m.styles.LineNumber.Foreground,
		Background: barColors.Background,
	})
	sep := m.newStyle(diffpane.ColorPair{
		Foreground: m.styles.Separator.Foreground,
		Background: barColors.Background,
	}).Render(separator)

	total := len(m.files)
	current := 0
	if total > 0 {
		current = m.currentFile() + 1
	}
	fileWidth := digitWidth(total)

	fields := []string{
		fmt.Sprintf("file %*d/%-*d", fileWidth, current, fileWidth, total),
		m.scrollPosition(),
	}
	if m.message != "" {
		fields = append(fields, m.message)
	}

	var hints []string
	for _, b := range m.keymap.ShortHelp() {
		hints = append(hints, b.Help().Key+":"+b.Help().Desc)
	}

	// Drop hints from the right until the bar fits the window.
	for len(hints) > 0 && statusWidth(fields, hints) > m.width {
		hints = hints[:len(hints)-1]
	}
	if statusWidth(fields, nil) > m.width {
		return barStyle.Render(FitWidth(strings.Join(fields, separator), m.width))
	}

	rendered := make([]string, len(fields))
	for i, f := range fields {
		rendered[i] = barStyle.Render(f)
	}
	content := strings.Join(rendered, sep)
	if len(hints) > 0 {
		content += sep + dimStyle.Render(strings.Join(hints, hintSeparator))
	}

	// Right-align by padding left side with background
	if contentWidth := lipgloss.Width(content); m.width > contentWidth {
		content = barStyle.Render(strings.Repeat(" ", m.width-contentWidth)) + content
	}

	return content
}

// statusWidth returns the display width of the status bar built from fields
// and hints.
func statusWidth(fields, hints []string) int {
	w := runewidth.StringWidth(strings.Join(fields, separator))
	if len(hints) > 0 {
		w += runewidth.StringWidth(separator + strings.Join(hints, hintSeparator))
	}
	return w
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	return fmt.Sprintf("%2d%%", int(m.viewport.ScrollPercent()*100))
}

// Compile-time interface verification.
var _ diffpane.Viewer = (*Viewer)(nil)

// Viewer implements diffpane.Viewer using a Bubble Tea TUI.
type Viewer struct {
	programOpts []tea.ProgramOption
	modelOpts   []ModelOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithProgramOptions appends options passed to the Bubble Tea program.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// WithModelOptions appends options passed to every Model the viewer creates.
func WithModelOptions(opts ...ModelOption) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays files and blocks until the user exits. Cancelling ctx
// terminates the program and returns the context's error.
func (v *Viewer) View(ctx context.Context, files []diffpane.FileView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := NewModel(files, v.modelOpts...)
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, v.programOpts...)

	_, err := tea.NewProgram(m, opts...).Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
