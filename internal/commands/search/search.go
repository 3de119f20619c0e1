// Package search builds project Finders for CLI commands from the global
// flags and the loaded configuration.
package search

import (
	"errors"
	"fmt"
	"os"

	"github.com/indaco/kopen/internal/config"
	"github.com/indaco/kopen/internal/discovery"
	"github.com/urfave/cli/v3"
)

// ErrTooManyArgs is returned when a command receives more than one path.
var ErrTooManyArgs = errors.New("expected at most one path argument")

// getwdFn is swapped in tests.
var getwdFn = os.Getwd

// NewFinder builds a Finder honouring --timeout and --strict, falling back to
// cfg for flags that were not given.
func NewFinder(cmd *cli.Command, cfg *config.Config) (*discovery.Finder, error) {
	timeout := cfg.SearchTimeout()
	if cmd.IsSet("timeout") {
		timeout = cmd.Duration("timeout")
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid --timeout %s: must be positive", timeout)
		}
	}

	policy := discovery.BestEffort
	if cfg.Strict || cmd.Bool("strict") {
		policy = discovery.Strict
	}

	return discovery.NewFinder(
		discovery.WithTimeout(timeout),
		discovery.WithPolicy(policy),
	), nil
}

// Target returns the single path argument of cmd, or the working directory
// when none was given.
func Target(cmd *cli.Command) (string, error) {
	switch cmd.Args().Len() {
	case 0:
		dir, err := getwdFn()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		return dir, nil
	case 1:
		return cmd.Args().First(), nil
	default:
		return "", ErrTooManyArgs
	}
}
