package search

import "testing"

func TestFindAllOverlapping(t *testing.T) {
	got := FindAll("aaa", "aa")
	want := []Match{{0, 2}, {1, 3}}
	if len(got) != len(want) {
		t.Fatalf("FindAll(\"aaa\", \"aa\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("match %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFindAllCaseInsensitive(t *testing.T) {
	got := FindAll("Foo foo FOO", "foo")
	if len(got) != 3 {
		t.Fatalf("got %d matches, want 3", len(got))
	}
	if got[0] != (Match{0, 3}) || got[1] != (Match{4, 7}) || got[2] != (Match{8, 11}) {
		t.Errorf("matches = %v", got)
	}
}

func TestFindAllEmptyTerm(t *testing.T) {
	if got := FindAll("anything", ""); got != nil {
		t.Errorf("FindAll with empty term = %v, want nil", got)
	}
}

func TestFindAllNoMatch(t *testing.T) {
	if got := FindAll("abc", "xyz"); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
	if got := FindAll("ab", "abc"); len(got) != 0 {
		t.Errorf("term longer than text: got %v, want none", got)
	}
}

func TestFindAllMultiByteCaseFold(t *testing.T) {
	// Ü and ü encode to the same length, so folding matches them without
	// disturbing byte offsets.
	text := "Über alles über allem"
	got := FindAll(text, "über")
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(got), got)
	}
	if got[0] != (Match{0, 5}) || got[1] != (Match{12, 17}) {
		t.Errorf("matches = %v, want [{0 5} {12 17}]", got)
	}
}

func TestFindAllLengthChangingFoldKeepsOffsets(t *testing.T) {
	// İ lowercases to a shorter encoding; it must not shift the offsets of
	// matches after it. Such runes simply never match case-insensitively.
	text := "İi"
	got := FindAll(text, "i")
	if len(got) != 1 || got[0] != (Match{2, 3}) {
		t.Fatalf("matches = %v, want [{2 3}]", got)
	}
	if text[got[0].Start:got[0].End] != "i" {
		t.Errorf("match range selects %q, want %q", text[got[0].Start:got[0].End], "i")
	}

	replaced, n := ReplaceAll(text, "i", "X")
	if replaced != "İX" || n != 1 {
		t.Errorf("ReplaceAll = %q, %d, want %q, 1", replaced, n, "İX")
	}

	// The Kelvin sign folds to a shorter 'k'; no match, no panic.
	if got := FindAll("\u212a", "k"); len(got) != 0 {
		t.Errorf("Kelvin sign matched: %v", got)
	}
}

func TestReplace(t *testing.T) {
	got := Replace("foo bar foo", Match{4, 7}, "qux")
	if got != "foo qux foo" {
		t.Errorf("Replace = %q, want %q", got, "foo qux foo")
	}
}

func TestReplaceOutOfRange(t *testing.T) {
	if got := Replace("abc", Match{2, 9}, "x"); got != "abc" {
		t.Errorf("out-of-range replace = %q, want text unchanged", got)
	}
}

func TestReplaceAll(t *testing.T) {
	got, n := ReplaceAll("foo bar foo", "foo", "baz")
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if got != "baz bar baz" {
		t.Errorf("text = %q, want %q", got, "baz bar baz")
	}
}

func TestReplaceAllIdentityRoundTrip(t *testing.T) {
	text := "one Two two TWO one"
	matches := FindAll(text, "two")

	got, n := ReplaceAll(text, "two", "two")
	if got != "one two two two one" {
		t.Errorf("text = %q", got)
	}
	if n != len(matches) {
		t.Errorf("count = %d, want %d", n, len(matches))
	}
}

func TestReplaceAllNoMatches(t *testing.T) {
	got, n := ReplaceAll("abc", "zzz", "x")
	if n != 0 || got != "abc" {
		t.Errorf("got (%q, %d), want (%q, 0)", got, n, "abc")
	}
}

func TestReplaceAllNonOverlapping(t *testing.T) {
	// Overlapping candidates collapse to non-overlapping replacements in a
	// single left-to-right pass.
	got, n := ReplaceAll("aaa", "aa", "b")
	if n != 1 || got != "ba" {
		t.Errorf("got (%q, %d), want (%q, 1)", got, n, "ba")
	}
}

func TestCoordinatorNavigation(t *testing.T) {
	c := NewCoordinator()
	c.Find("aaa", "aa")

	if c.CurrentIndex() != 0 {
		t.Fatalf("fresh search cursor = %d, want 0", c.CurrentIndex())
	}
	if m, ok := c.Next(); !ok || m.Start != 1 {
		t.Errorf("Next = %v %v, want match at 1", m, ok)
	}
	if m, ok := c.Next(); !ok || m.Start != 0 {
		t.Errorf("Next should wrap, got %v %v", m, ok)
	}
	if m, ok := c.Previous(); !ok || m.Start != 1 {
		t.Errorf("Previous should wrap back, got %v %v", m, ok)
	}
}

func TestCoordinatorEmpty(t *testing.T) {
	c := NewCoordinator()
	if c.CurrentIndex() != -1 {
		t.Errorf("cursor = %d, want -1", c.CurrentIndex())
	}
	if _, ok := c.Next(); ok {
		t.Error("Next on empty should report no match")
	}
	if _, ok := c.Current(); ok {
		t.Error("Current on empty should report no match")
	}
}

func TestCoordinatorClampOnShrink(t *testing.T) {
	c := NewCoordinator()
	c.Find("ab ab ab", "ab")
	c.Next()
	c.Next() // cursor at 2

	c.Find("ab ab", "ab") // same term, set shrank
	if c.CurrentIndex() != 1 {
		t.Errorf("cursor = %d after shrink, want clamp to 1", c.CurrentIndex())
	}

	c.Find("zzz", "ab")
	if c.CurrentIndex() != -1 {
		t.Errorf("cursor = %d with no matches, want -1", c.CurrentIndex())
	}
}

func TestCoordinatorFreshTermResetsCursor(t *testing.T) {
	c := NewCoordinator()
	c.Find("ab ab ab", "ab")
	c.Next()

	c.Find("ab ab ab", "b")
	if c.CurrentIndex() != 0 {
		t.Errorf("cursor = %d for fresh term, want 0", c.CurrentIndex())
	}
}

func TestOverlayToggles(t *testing.T) {
	c := NewCoordinator()
	if c.Mode() != ModeClosed {
		t.Fatal("overlay should start closed")
	}

	c.ToggleFind()
	if c.Mode() != ModeFind {
		t.Errorf("mode = %v, want find", c.Mode())
	}

	// Switching mode preserves term and matches.
	c.Find("aaa", "aa")
	c.ToggleReplace()
	if c.Mode() != ModeReplace {
		t.Errorf("mode = %v, want replace", c.Mode())
	}
	if c.Term() != "aa" || c.Total() != 2 {
		t.Error("mode switch must preserve term and matches")
	}

	// Toggling the active mode closes.
	c.ToggleReplace()
	if c.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed after idempotent toggle", c.Mode())
	}

	c.ToggleFind()
	c.ToggleFind()
	if c.Mode() != ModeClosed {
		t.Errorf("mode = %v, want closed", c.Mode())
	}
}
