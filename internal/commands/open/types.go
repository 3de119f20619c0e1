package open

import (
	"context"

	"github.com/charmbracelet/huh"
	"github.com/indaco/kopen/internal/tui"
)

// ProjectFinder resolves the single project below a directory.
type ProjectFinder interface {
	Find(ctx context.Context, root string) (string, error)
}

// Launcher starts KiCad with zero or one project path.
type Launcher interface {
	Launch(path ...string) error
}

// Prompter abstracts interactive prompts for testability.
type Prompter interface {
	Select(title, description string, options []huh.Option[string]) (string, error)
}

// TUIPrompter implements Prompter using the tui package.
type TUIPrompter struct{}

// NewPrompter creates a new TUIPrompter.
func NewPrompter() Prompter {
	return &TUIPrompter{}
}

// Select shows a single-select prompt.
func (p *TUIPrompter) Select(title, description string, options []huh.Option[string]) (string, error) {
	return tui.Select(title, description, options)
}
