// Package printer renders styled console output for kopen.
package printer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor disables (or re-enables) ANSI styling for every render function.
// NO_COLOR in the environment has the same effect as SetNoColor(true).
func SetNoColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold returns text with bold styling.
func Bold(text string) string { return boldStyle.Render(text) }

// Success returns text with success (green) styling.
func Success(text string) string { return successStyle.Render(text) }

// Error returns text with error (red) styling.
func Error(text string) string { return errorStyle.Render(text) }

// Warning returns text with warning (yellow) styling.
func Warning(text string) string { return warningStyle.Render(text) }

// Info returns text with info (cyan) styling.
func Info(text string) string { return infoStyle.Render(text) }

// Project renders a project path with a faint directory and a bold file name.
func Project(path string) string {
	dir, file := filepath.Split(path)
	if dir == "" {
		return Bold(file)
	}
	return Faint(dir) + Bold(file)
}

// PrintSuccess prints text with success (green) styling to stdout.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// PrintInfo prints text with info (cyan) styling to stdout.
func PrintInfo(text string) {
	fmt.Println(Info(text))
}

// PrintWarning prints text with warning (yellow) styling to stdout.
func PrintWarning(text string) {
	fmt.Println(Warning(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	FprintError(os.Stderr, text)
}

// FprintError writes text with error styling and a trailing newline to w.
func FprintError(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Error(text))
}
