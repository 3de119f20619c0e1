package open

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/kopen/internal/commands/search"
	"github.com/indaco/kopen/internal/config"
	"github.com/indaco/kopen/internal/launcher"
	"github.com/indaco/kopen/internal/printer"
	"github.com/urfave/cli/v3"
)

// ErrRecentWithPath is returned when --recent is combined with a path.
var ErrRecentWithPath = errors.New("--recent cannot be combined with a path")

// newLauncherFn is swapped in tests.
var newLauncherFn = func(binary string) Launcher {
	return launcher.New(binary)
}

// Action returns the root command action.
func Action(cfg *config.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		return runOpenCmd(ctx, cmd, cfg)
	}
}

// runOpenCmd executes the root action.
func runOpenCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	binary := cfg.Kicad
	if cmd.IsSet("kicad") {
		binary = cmd.String("kicad")
	}
	l := newLauncherFn(binary)

	if cmd.Bool("recent") {
		if cmd.Args().Len() > 0 {
			return ErrRecentWithPath
		}
		if err := l.Launch(); err != nil {
			return err
		}
		printer.PrintSuccess("Opened KiCad with its most recent project")
		return nil
	}

	target, err := search.Target(cmd)
	if err != nil {
		return err
	}

	finder, err := search.NewFinder(cmd, cfg)
	if err != nil {
		return err
	}

	pick := cfg.Pick || cmd.Bool("pick")
	opener := NewOpener(finder, l, NewPrompter(), pick)

	project, err := opener.Open(ctx, target)
	if err != nil {
		return err
	}

	fmt.Println(printer.Success("Opened") + " " + printer.Project(project))
	return nil
}
