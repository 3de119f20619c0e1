package open

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/huh"
	"github.com/indaco/kopen/internal/discovery"
	"github.com/indaco/kopen/internal/logger"
	"github.com/indaco/kopen/internal/tui"
	"github.com/indaco/kopen/internal/walker"
)

var (
	// ErrNotProjectFile is returned for a regular file that is not a project
	// descriptor.
	ErrNotProjectFile = errors.New("not a kicad project file or a directory")

	// ErrPathNotFound is returned for a path that does not exist.
	ErrPathNotFound = errors.New("not a kicad project file or directory")
)

// Opener resolves a target path to a project file and launches KiCad on it.
type Opener struct {
	finder      ProjectFinder
	launcher    Launcher
	prompter    Prompter
	pick        bool
	interactive func() bool
}

// NewOpener creates an Opener. With pick set, an ambiguous search asks the
// user to choose when the terminal is interactive.
func NewOpener(finder ProjectFinder, launcher Launcher, prompter Prompter, pick bool) *Opener {
	return &Opener{
		finder:      finder,
		launcher:    launcher,
		prompter:    prompter,
		pick:        pick,
		interactive: tui.IsInteractive,
	}
}

// Resolve maps target to a project file:
//   - a .kicad_pro file is returned as is, without searching;
//   - a directory is searched;
//   - any other file, or a missing path, is an error.
func (o *Opener) Resolve(ctx context.Context, target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, target)
		}
		return "", err
	}

	if !info.IsDir() {
		if info.Mode().IsRegular() && walker.MatchesExt(info.Name(), walker.ProjectExt) {
			return target, nil
		}
		return "", fmt.Errorf("%w: %s", ErrNotProjectFile, target)
	}

	project, err := o.finder.Find(ctx, target)
	if err == nil {
		return project, nil
	}

	var manyErr *discovery.MultipleProjectsFoundError
	if o.pick && errors.As(err, &manyErr) && o.interactive() {
		return o.choose(target, manyErr.Paths)
	}
	return "", err
}

// Open resolves target and launches KiCad on the result. It returns the
// launched project path.
func (o *Opener) Open(ctx context.Context, target string) (string, error) {
	project, err := o.Resolve(ctx, target)
	if err != nil {
		return "", err
	}

	if abs, err := filepath.Abs(project); err == nil {
		project = abs
	}

	logger.Named("open").Debug().Str("project", project).Msg("launching")
	if err := o.launcher.Launch(project); err != nil {
		return "", err
	}
	return project, nil
}

// choose asks the user to pick among candidates, listed in sorted order with
// labels relative to root.
func (o *Opener) choose(root string, candidates []string) (string, error) {
	sorted := slices.Clone(candidates)
	slices.Sort(sorted)

	options := make([]huh.Option[string], len(sorted))
	for i, path := range sorted {
		label := path
		if rel, err := filepath.Rel(root, path); err == nil {
			label = rel
		}
		options[i] = huh.NewOption(label, path)
	}

	return o.prompter.Select(
		"Multiple KiCad projects found",
		fmt.Sprintf("Choose the project to open under %s", root),
		options,
	)
}
