package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Palette loosely follows the KiCad board editor: copper green on a dark
// substrate, silkscreen text.
var (
	kopenGreen      = lipgloss.AdaptiveColor{Light: "#1f7a3a", Dark: "#4ec46f"}
	kopenGreenLight = lipgloss.AdaptiveColor{Light: "#2e9c4f", Dark: "#7ddc95"}
	kopenTextStrong = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#f3f4f6"}
	kopenTextNormal = lipgloss.AdaptiveColor{Light: "#374151", Dark: "#d1d5db"}
	kopenTextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	kopenError      = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f87171"}
)

// currentTheme holds the configured theme. nil means the kopen theme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// Empty or unknown names select the kopen theme.
func SetTheme(name string) {
	currentTheme = GetTheme(name)
}

func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return kopenTheme()
	}
	return currentTheme
}

func resetTheme() {
	currentTheme = nil
}

func kopenTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(kopenGreen)
	t.Focused.Title = t.Focused.Title.Foreground(kopenTextStrong).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(kopenTextMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(kopenError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(kopenError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(kopenGreen)
	t.Focused.Option = t.Focused.Option.Foreground(kopenTextNormal)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(kopenGreenLight)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Help.ShortKey = t.Help.ShortKey.Foreground(kopenGreen)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(kopenTextMuted)
	t.Help.ShortSeparator = t.Help.ShortSeparator.Foreground(kopenTextMuted)

	return t
}
