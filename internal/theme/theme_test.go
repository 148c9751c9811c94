package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()

	// Verify all fields are populated (non-empty).
	fields := []struct {
		name  string
		color lipgloss.Color
	}{
		{"Bg", th.Bg},
		{"Accent", th.Accent},
		{"Subtle", th.Subtle},
		{"Text", th.Text},
		{"Dim", th.Dim},
		{"Border", th.Border},
		{"StatusBg", th.StatusBg},
		{"StatusFg", th.StatusFg},
		{"Error", th.Error},
		{"Warn", th.Warn},
		{"Match", th.Match},
		{"TabBg", th.TabBg},
		{"TabFg", th.TabFg},
	}

	for _, f := range fields {
		if string(f.color) == "" {
			t.Errorf("DefaultTheme().%s is empty", f.name)
		}
	}
}

func TestByName(t *testing.T) {
	if ByName("light") != LightTheme() {
		t.Error(`ByName("light") should return the light palette`)
	}
	if ByName("nope") != DefaultTheme() {
		t.Error("unknown names should fall back to the default palette")
	}
}
