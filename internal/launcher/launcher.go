// Package launcher starts KiCad detached from the calling terminal.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/indaco/kopen/internal/logger"
)

// ErrTooManyPaths is returned when more than one project path is given.
var ErrTooManyPaths = errors.New("kicad accepts at most one project path")

// Launcher starts a KiCad binary and does not wait for it.
type Launcher struct {
	binary      string
	execCommand func(name string, arg ...string) *exec.Cmd
}

// New creates a Launcher for binary, resolved through PATH when it has no
// path separator.
func New(binary string) *Launcher {
	return &Launcher{
		binary:      binary,
		execCommand: exec.Command,
	}
}

// Binary returns the program the Launcher starts.
func (l *Launcher) Binary() string {
	return l.binary
}

// Launch starts the binary with an optional project path. With no path KiCad
// reopens its most recent project. The child gets the null device for its
// standard streams and runs in its own session, so closing the terminal does
// not take it down.
func (l *Launcher) Launch(path ...string) error {
	if len(path) > 1 {
		return ErrTooManyPaths
	}

	cmd := l.execCommand(l.binary, path...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", l.binary, err)
	}

	logger.Named("launcher").Debug().
		Str("binary", l.binary).
		Strs("args", path).
		Int("pid", cmd.Process.Pid).
		Msg("kicad started")

	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release %s: %w", l.binary, err)
	}
	return nil
}
