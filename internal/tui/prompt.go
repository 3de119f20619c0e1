package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// ErrCancelled is returned when the user dismisses a prompt.
var ErrCancelled = errors.New("selection cancelled")

// Select shows a single-select prompt and returns the chosen value.
func Select(title, description string, options []huh.Option[string]) (string, error) {
	var selected string
	field := huh.NewSelect[string]().
		Title(title).
		Description(description).
		Options(options...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(currentThemeOrDefault()).
		WithKeyMap(keyMap())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", err
	}
	return selected, nil
}

// keyMap adds esc to the quit binding so a picker can be dismissed quickly.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

// RunWithSpinner runs action while a spinner with title is shown. Outside an
// interactive terminal the action runs directly.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsInteractive() {
		return action(ctx)
	}
	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(action).
		Run()
}
