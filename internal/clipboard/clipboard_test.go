package clipboard

import "testing"

func TestBuffer(t *testing.T) {
	b := New(false)

	if !b.Empty() {
		t.Error("new buffer should be empty")
	}
	if got := b.Read(); got != "" {
		t.Errorf("Read = %q, want empty", got)
	}

	b.Write("hello")
	if b.Empty() {
		t.Error("buffer should not be empty after write")
	}
	if got := b.Read(); got != "hello" {
		t.Errorf("Read = %q, want %q", got, "hello")
	}

	// Single slot: a second write replaces the first.
	b.Write("world")
	if got := b.Read(); got != "world" {
		t.Errorf("Read = %q, want %q", got, "world")
	}

	b.Clear()
	if !b.Empty() {
		t.Error("buffer should be empty after clear")
	}
}
