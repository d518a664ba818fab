package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/fwojciec/diffpane"
	"golang.org/x/sync/errgroup"
)

// ErrNoChanges is returned when the input contains no changes to display.
var ErrNoChanges = errors.New("no changes to display")

// ErrNoInput is returned when no diff input is provided.
var ErrNoInput = errors.New("no input: pipe a diff, pass two files or use --rev")

// Input selects where the diff comes from. Exactly one source is used, in
// order: two files, a revision range, stdin.
type Input struct {
	OldPath string
	NewPath string

	Repo  string
	Base  string
	Head  string
	Paths []string // With a revision range, diff these files in full.

	Stdin io.Reader
}

// App encapsulates the application logic for testing.
type App struct {
	Stdout io.Writer
	Logger *log.Logger
	Config diffpane.Config

	Differ   diffpane.Differ
	Parser   diffpane.Parser
	Git      diffpane.GitRunner
	Viewer   diffpane.Viewer
	Renderer diffpane.Renderer
	Encoder  diffpane.Encoder
}

// Run loads the diff selected by in and writes it in the configured format.
func (a *App) Run(ctx context.Context, in Input) error {
	files, err := a.load(ctx, in)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoChanges
	}
	a.Logger.Debug("loaded diff", "files", len(files), "format", a.Config.Format)

	switch a.Config.Format {
	case "", "tui":
		return a.Viewer.View(ctx, files)
	case "html":
		views, err := a.views(ctx, files)
		if err != nil {
			return err
		}
		for _, v := range views {
			if err := a.Renderer.Render(a.Stdout, v); err != nil {
				return fmt.Errorf("render: %w", err)
			}
		}
		return nil
	case "json":
		views, err := a.views(ctx, files)
		if err != nil {
			return err
		}
		for i, v := range views {
			if err := a.Encoder.Encode(a.Stdout, files[i].Path, v); err != nil {
				return fmt.Errorf("encode %s: %w", files[i].Path, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", a.Config.Format)
	}
}

func (a *App) load(ctx context.Context, in Input) ([]diffpane.FileView, error) {
	switch {
	case in.OldPath != "" || in.NewPath != "":
		return a.loadFiles(in.OldPath, in.NewPath)
	case in.Base != "" && len(in.Paths) > 0:
		return a.loadRevisionFiles(ctx, in)
	case in.Base != "":
		patch, err := a.Git.Diff(ctx, in.Repo, in.Base, in.Head)
		if err != nil {
			return nil, err
		}
		return a.parse(strings.NewReader(patch))
	case in.Stdin != nil:
		return a.parse(in.Stdin)
	default:
		return nil, ErrNoInput
	}
}

func (a *App) loadFiles(oldPath, newPath string) ([]diffpane.FileView, error) {
	oldText, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, err
	}
	newText, err := os.ReadFile(newPath)
	if err != nil {
		return nil, err
	}

	panes := a.Differ.Diff(string(oldText), string(newText), a.diffOptions())
	if !changed(panes) {
		return nil, nil
	}
	return []diffpane.FileView{{Path: newPath, Panes: panes}}, nil
}

// loadRevisionFiles diffs the full contents of each path at both revisions.
// worktreePath resolves a repository-relative path against the working tree
// of repo.
func worktreePath(repo, path string) string {
	if repo == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(repo, path)
}

func (a *App) loadRevisionFiles(ctx context.Context, in Input) ([]diffpane.FileView, error) {
	results := make([]diffpane.FileView, len(in.Paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range in.Paths {
		i, path := i, path
		g.Go(func() error {
			oldText, err := a.Git.Show(gctx, in.Repo, in.Base, path)
			if err != nil {
				return fmt.Errorf("%s at %s: %w", path, in.Base, err)
			}
			var newText string
			if in.Head == "" {
				data, err := os.ReadFile(worktreePath(in.Repo, path))
				if err != nil {
					return err
				}
				newText = string(data)
			} else {
				newText, err = a.Git.Show(gctx, in.Repo, in.Head, path)
				if err != nil {
					return fmt.Errorf("%s at %s: %w", path, in.Head, err)
				}
			}
			results[i] = diffpane.FileView{
				Path:  path,
				Panes: a.Differ.Diff(oldText, newText, a.diffOptions()),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := results[:0]
	for _, f := range results {
		if changed(f.Panes) {
			files = append(files, f)
		} else {
			a.Logger.Debug("skipping unchanged file", "path", f.Path)
		}
	}
	return files, nil
}

func (a *App) parse(r io.Reader) ([]diffpane.FileView, error) {
	diff, err := a.Parser.Parse(r)
	if err != nil {
		return nil, err
	}

	files := make([]diffpane.FileView, 0, len(diff.Files))
	for _, f := range diff.Files {
		if f.IsBinary {
			a.Logger.Debug("skipping binary file", "path", f.Path())
			continue
		}
		files = append(files, diffpane.FileView{Path: f.Path(), Panes: f.Panes})
	}
	return files, nil
}

// views builds the view of every file in parallel, keeping file order.
func (a *App) views(ctx context.Context, files []diffpane.FileView) ([]diffpane.View, error) {
	views := make([]diffpane.View, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			views[i] = diffpane.NewView(f.Panes, a.Config.Options)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (a *App) diffOptions() diffpane.DiffOptions {
	opts := a.Config.Options.DiffOptions()
	// Validated when the configuration was resolved.
	opts.Granularity, _ = diffpane.ParseGranularity(a.Config.Granularity)
	return opts
}

// changed reports whether any line of panes differs.
func changed(panes diffpane.SideBySide) bool {
	stats := diffpane.ComputeStats(panes.Old, panes.New)
	return stats.LineAdditions+stats.LineDeletions+stats.LineModifications > 0
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return NewRootCommand(newLoader(), buildApp).ExecuteContext(ctx)
}
