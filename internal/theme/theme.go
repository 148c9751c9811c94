// Package theme holds the color palettes used by all TUI panels.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines a color palette. Panels hold a *Theme pointer so a theme
// change at runtime is visible on the next View() call.
type Theme struct {
	Bg       lipgloss.Color
	Accent   lipgloss.Color
	Subtle   lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color
	Border   lipgloss.Color
	StatusBg lipgloss.Color
	StatusFg lipgloss.Color
	Error    lipgloss.Color
	Warn     lipgloss.Color
	Match    lipgloss.Color
	TabBg    lipgloss.Color
	TabFg    lipgloss.Color
}

// DefaultTheme returns the default palette (catppuccin mocha).
func DefaultTheme() Theme {
	return Theme{
		Bg:       lipgloss.Color("#1e1e2e"),
		Accent:   lipgloss.Color("#cba6f7"),
		Subtle:   lipgloss.Color("#6c7086"),
		Text:     lipgloss.Color("#cdd6f4"),
		Dim:      lipgloss.Color("#585b70"),
		Border:   lipgloss.Color("#45475a"),
		StatusBg: lipgloss.Color("#313244"),
		StatusFg: lipgloss.Color("#cdd6f4"),
		Error:    lipgloss.Color("#f38ba8"),
		Warn:     lipgloss.Color("#f9e2af"),
		Match:    lipgloss.Color("#a6e3a1"),
		TabBg:    lipgloss.Color("#313244"),
		TabFg:    lipgloss.Color("#89b4fa"),
	}
}

// LightTheme returns a light palette (catppuccin latte).
func LightTheme() Theme {
	return Theme{
		Bg:       lipgloss.Color("#eff1f5"),
		Accent:   lipgloss.Color("#8839ef"),
		Subtle:   lipgloss.Color("#9ca0b0"),
		Text:     lipgloss.Color("#4c4f69"),
		Dim:      lipgloss.Color("#acb0be"),
		Border:   lipgloss.Color("#bcc0cc"),
		StatusBg: lipgloss.Color("#ccd0da"),
		StatusFg: lipgloss.Color("#4c4f69"),
		Error:    lipgloss.Color("#d20f39"),
		Warn:     lipgloss.Color("#df8e1d"),
		Match:    lipgloss.Color("#40a02b"),
		TabBg:    lipgloss.Color("#ccd0da"),
		TabFg:    lipgloss.Color("#1e66f5"),
	}
}

// ByName resolves a theme name from configuration. Unknown names fall back
// to the default palette.
func ByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DefaultTheme()
	}
}
