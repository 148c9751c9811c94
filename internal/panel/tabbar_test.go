package panel

import (
	"strings"
	"testing"

	"github.com/pfassina/scribe/internal/session"
	"github.com/pfassina/scribe/internal/theme"
)

func testSessions() []*session.Session {
	return []*session.Session{
		{ID: 1, Title: "a.go"},
		{ID: 2, Title: "b.go", Modified: true},
		{ID: 3, Title: "Untitled"},
	}
}

func TestTabBarLabels(t *testing.T) {
	th := theme.DefaultTheme()
	tb := NewTabBar(&th)
	tb.SetWidth(80)
	tb.SetTabs(testSessions(), 2)

	view := tb.View()
	if !strings.Contains(view, " a.go ") {
		t.Errorf("view missing clean tab label: %q", view)
	}
	if !strings.Contains(view, " b.go* ") {
		t.Errorf("view missing dirty indicator: %q", view)
	}
	if !strings.Contains(view, " Untitled ") {
		t.Errorf("view missing untitled tab: %q", view)
	}
}

func TestTabBarActiveIndex(t *testing.T) {
	th := theme.DefaultTheme()
	tb := NewTabBar(&th)
	tb.SetTabs(testSessions(), 2)
	if tb.active != 1 {
		t.Errorf("active = %d, want 1", tb.active)
	}

	tb.SetTabs(testSessions(), 99)
	if tb.active != -1 {
		t.Errorf("active = %d for unknown id, want -1", tb.active)
	}
}

func TestTabBarTabAt(t *testing.T) {
	th := theme.DefaultTheme()
	tb := NewTabBar(&th)
	tb.SetTabs(testSessions(), 1)

	// " a.go " occupies columns 0-5, separator at 6, " b.go* " starts at 7.
	if got := tb.TabAt(0); got != 1 {
		t.Errorf("TabAt(0) = %d, want 1", got)
	}
	if got := tb.TabAt(7); got != 2 {
		t.Errorf("TabAt(7) = %d, want 2", got)
	}
	if got := tb.TabAt(500); got != 0 {
		t.Errorf("TabAt(500) = %d, want 0", got)
	}
}
