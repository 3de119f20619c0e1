package discovery

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTimeout is returned when the walk does not finish within the timeout.
	ErrTimeout = errors.New("timeout while searching for .kicad_pro files")

	// ErrJoin is the sentinel behind every *JoinError.
	ErrJoin = errors.New("could not join goroutine searching for .kicad_pro files")
)

// JoinError reports that the background search crashed before producing a
// result. Value holds the recovered panic value.
type JoinError struct {
	Value any
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("%s: %v", ErrJoin.Error(), e.Value)
}

// Unwrap returns ErrJoin so callers can match with errors.Is.
func (e *JoinError) Unwrap() error {
	return ErrJoin
}

// NoProjectsFoundError reports a search that found no project file.
type NoProjectsFoundError struct {
	Root string
}

func (e *NoProjectsFoundError) Error() string {
	return fmt.Sprintf("no .kicad_pro files found in directory %s", e.Root)
}

// MultipleProjectsFoundError reports a search that found more than one
// project file. Paths are in discovery order.
type MultipleProjectsFoundError struct {
	Paths []string
}

func (e *MultipleProjectsFoundError) Error() string {
	return "multiple .kicad_pro files:\n" + strings.Join(e.Paths, "\n")
}

// AccessError is returned in Strict mode when the walk skipped entries it
// could not read.
type AccessError struct {
	Root string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("could not read everything under %s: %v", e.Root, e.Err)
}

// Unwrap returns the joined entry errors.
func (e *AccessError) Unwrap() error {
	return e.Err
}
