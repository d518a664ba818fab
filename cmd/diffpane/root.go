package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/diffpane"
	"github.com/fwojciec/diffpane/bubbletea"
	"github.com/fwojciec/diffpane/chroma"
	"github.com/fwojciec/diffpane/clipboard"
	"github.com/fwojciec/diffpane/diffmatchpatch"
	"github.com/fwojciec/diffpane/git"
	"github.com/fwojciec/diffpane/gitdiff"
	"github.com/fwojciec/diffpane/html"
	"github.com/fwojciec/diffpane/jsonl"
	dplipgloss "github.com/fwojciec/diffpane/lipgloss"
	"github.com/fwojciec/diffpane/yaml"
	"github.com/spf13/cobra"
)

// BuildFunc creates the App for a resolved configuration.
type BuildFunc func(cfg diffpane.Config, logger *log.Logger) (*App, error)

// NewRootCommand returns the diffpane command. Flags override values from
// the configuration file read by loader.
func NewRootCommand(loader diffpane.ConfigLoader, build BuildFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diffpane [flags] [OLD NEW | PATH...]",
		Short: "Side-by-side line and word diffs",
		Long: `diffpane shows two texts side by side with changed words highlighted.

Input is read from two files, from a git revision range (--rev), or from a
unified patch on stdin:

  diffpane old.txt new.txt
  diffpane --rev main..feature
  diffpane --rev HEAD~1 main.go
  git diff | diffpane`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			level := log.InfoLevel
			if debug {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Level:           level,
				Prefix:          "diffpane",
				ReportTimestamp: debug,
			})

			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = yaml.DefaultPath()
			}
			cfg, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			logger.Debug("resolved config", "path", path, "format", cfg.Format, "theme", cfg.Theme,
				"hide_unchanged", cfg.HideUnchangedLines, "context", cfg.ContextLines)

			in, err := resolveInput(cmd, args)
			if err != nil {
				return err
			}

			app, err := build(*cfg, logger)
			if err != nil {
				return err
			}
			app.Stdout = cmd.OutOrStdout()

			return app.Run(cmd.Context(), in)
		},
	}

	defaults := diffpane.DefaultConfig()
	flags := cmd.Flags()
	flags.String("config", "", "Configuration file (default $XDG_CONFIG_HOME/diffpane/config.yaml)")
	flags.Bool("ignore-case", defaults.IgnoreCase, "Ignore case differences")
	flags.Bool("ignore-whitespace", defaults.IgnoreWhiteSpace, "Ignore whitespace differences")
	flags.Bool("hide-unchanged", defaults.HideUnchangedLines, "Hide unchanged lines outside the context window")
	flags.Int("context", defaults.ContextLines, "Unchanged lines kept around each change")
	flags.Bool("collapse", defaults.CollapseContent, "Limit the height of HTML output")
	flags.Int("max-height", defaults.MaxHeightPixels, "Maximum HTML height in pixels when collapsing")
	flags.String("format", defaults.Format, "Output format (tui, html, json)")
	flags.String("theme", defaults.Theme, "Color theme (dark, light)")
	flags.String("granularity", defaults.Granularity, "Sub-line diff granularity (words, characters)")
	flags.Bool("no-header", false, "Omit the statistics header from HTML output")
	flags.Bool("debug", false, "Enable debug logging")
	flags.String("repo", ".", "Repository used with --rev")
	flags.String("rev", "", "Revision or range to diff (BASE or BASE..HEAD)")

	return cmd
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(cmd *cobra.Command, cfg *diffpane.Config) error {
	flags := cmd.Flags()
	if flags.Changed("ignore-case") {
		cfg.IgnoreCase, _ = flags.GetBool("ignore-case")
	}
	if flags.Changed("ignore-whitespace") {
		cfg.IgnoreWhiteSpace, _ = flags.GetBool("ignore-whitespace")
	}
	if flags.Changed("hide-unchanged") {
		cfg.HideUnchangedLines, _ = flags.GetBool("hide-unchanged")
	}
	if flags.Changed("context") {
		cfg.ContextLines, _ = flags.GetInt("context")
	}
	if flags.Changed("collapse") {
		cfg.CollapseContent, _ = flags.GetBool("collapse")
	}
	if flags.Changed("max-height") {
		cfg.MaxHeightPixels, _ = flags.GetInt("max-height")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Changed("granularity") {
		cfg.Granularity, _ = flags.GetString("granularity")
	}
	if noHeader, _ := flags.GetBool("no-header"); noHeader {
		cfg.Header = false
	}

	cfg.ContextLines = max(cfg.ContextLines, 0)

	switch cfg.Format {
	case "tui", "html", "json":
	default:
		return fmt.Errorf("invalid format %q: want tui, html or json", cfg.Format)
	}
	if _, err := diffpane.ParseGranularity(cfg.Granularity); err != nil {
		return err
	}
	return nil
}

// resolveInput maps positional arguments and --rev to an Input.
func resolveInput(cmd *cobra.Command, args []string) (Input, error) {
	repo, _ := cmd.Flags().GetString("repo")
	rev, _ := cmd.Flags().GetString("rev")

	if rev != "" {
		if strings.Contains(rev, "...") {
			return Input{}, fmt.Errorf("symmetric revision range %q is not supported: use BASE..HEAD", rev)
		}
		base, head, _ := strings.Cut(rev, "..")
		if base == "" {
			return Input{}, fmt.Errorf("invalid revision range %q", rev)
		}
		return Input{Repo: repo, Base: base, Head: head, Paths: args}, nil
	}

	switch len(args) {
	case 2:
		return Input{OldPath: args[0], NewPath: args[1]}, nil
	case 0:
		stdin := cmd.InOrStdin()
		if f, ok := stdin.(*os.File); ok {
			stat, err := f.Stat()
			if err != nil {
				return Input{}, fmt.Errorf("error checking stdin: %w", err)
			}
			if stat.Mode()&os.ModeCharDevice != 0 {
				return Input{}, ErrNoInput
			}
		}
		return Input{Stdin: stdin}, nil
	default:
		return Input{}, fmt.Errorf("expected two files, got %d arguments", len(args))
	}
}

func newLoader() diffpane.ConfigLoader {
	return yaml.NewLoader()
}

// buildApp wires the production implementations.
func buildApp(cfg diffpane.Config, logger *log.Logger) (*App, error) {
	theme, err := dplipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, err
	}
	tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette()))
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %w", err)
	}

	differ := diffmatchpatch.NewDiffer()
	app := &App{
		Logger:   logger,
		Config:   cfg,
		Differ:   differ,
		Git:      git.NewRunner(),
		Renderer: html.NewRenderer(html.WithHeader(cfg.Header)),
		Encoder:  jsonl.NewEncoder(),
		Viewer: bubbletea.NewViewer(bubbletea.WithModelOptions(
			bubbletea.WithTheme(theme),
			bubbletea.WithOptions(cfg.Options),
			bubbletea.WithLanguageDetector(chroma.NewDetector()),
			bubbletea.WithTokenizer(tokenizer),
			bubbletea.WithClipboard(clipboard.NewSystem()),
		)),
	}
	app.Parser = gitdiff.NewParser(differ, app.diffOptions())

	return app, nil
}
