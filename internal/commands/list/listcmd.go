package list

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/kopen/internal/commands/search"
	"github.com/indaco/kopen/internal/config"
	"github.com/indaco/kopen/internal/tui"
	"github.com/urfave/cli/v3"
)

// ErrPathNotFound is returned when the directory to list does not exist.
var ErrPathNotFound = errors.New("no such file or directory")

// Run returns the "list" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List every KiCad project below a directory",
		ArgsUsage: "[path]",
		UsageText: `kopen list [options] [path]

Searches path (default: the current directory) for .kicad_pro files and
prints all of them instead of opening one. Symbolic links are not followed
and the search timeout still applies.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, table",
				Value:   "text",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Only print the number of projects",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runListCmd(ctx, cmd, cfg)
		},
	}
}

// runListCmd executes the list command.
func runListCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	root, err := search.Target(cmd)
	if err != nil {
		return err
	}
	if _, err := os.Stat(root); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return err
	}

	finder, err := search.NewFinder(cmd, cfg)
	if err != nil {
		return err
	}

	var projects []string
	err = tui.RunWithSpinner(ctx, "Searching for KiCad projects...", func(ctx context.Context) error {
		var err error
		projects, err = finder.Candidates(ctx, root)
		return err
	})
	if err != nil {
		return err
	}

	result := NewResult(root, projects)

	if cmd.Bool("quiet") {
		printQuietSummary(result)
		return nil
	}

	NewFormatter(ParseOutputFormat(cmd.String("format"))).PrintResult(result)
	return nil
}

// printQuietSummary prints only the number of projects found.
func printQuietSummary(result *Result) {
	fmt.Println(len(result.Projects))
}
