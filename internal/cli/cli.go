package cli

import (
	"context"
	"fmt"

	"github.com/indaco/kopen/internal/commands/list"
	"github.com/indaco/kopen/internal/commands/open"
	"github.com/indaco/kopen/internal/config"
	"github.com/indaco/kopen/internal/logger"
	"github.com/indaco/kopen/internal/printer"
	"github.com/indaco/kopen/internal/tui"
	"github.com/indaco/kopen/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the kopen cli.
func New(cfg *config.Config) *urfavecli.Command {
	var (
		noColorFlag bool
		verboseFlag bool
	)

	return &urfavecli.Command{
		Name:                  "kopen",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Open the KiCad project found below a directory",
		ArgsUsage:             "[path]",
		EnableShellCompletion: true,
		UsageText: `kopen [options] [path]

With no path, searches the current directory. A .kicad_pro file is opened
directly; a directory is searched and must contain exactly one project.
Symbolic links are never followed.`,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:    "recent",
				Aliases: []string{"r"},
				Usage:   "Open KiCad with its most recent project",
			},
			&urfavecli.DurationFlag{
				Name:  "timeout",
				Usage: "Maximum time spent searching",
				Value: cfg.SearchTimeout(),
			},
			&urfavecli.BoolFlag{
				Name:  "strict",
				Usage: "Fail when a directory cannot be read instead of skipping it",
			},
			&urfavecli.BoolFlag{
				Name:  "pick",
				Usage: "Choose interactively when several projects are found",
			},
			&urfavecli.StringFlag{
				Name:        "kicad",
				Usage:       "KiCad binary to launch",
				Value:       cfg.Kicad,
				DefaultText: config.DefaultKicad,
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
			&urfavecli.BoolFlag{
				Name:        "verbose",
				Usage:       "Enable debug logging",
				Destination: &verboseFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			tui.SetTheme(cfg.Theme)

			opts := logger.FromEnv()
			opts.NoColor = noColorFlag
			if verboseFlag {
				opts.Level = "debug"
			}
			logger.Init(opts)

			return ctx, nil
		},
		Action: open.Action(cfg),
		Commands: []*urfavecli.Command{
			list.Run(cfg),
		},
	}
}
