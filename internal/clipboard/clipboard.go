// Package clipboard provides the editor's single-slot copy/cut/paste
// buffer, bridged to the system clipboard when one is available.
package clipboard

import "github.com/atotto/clipboard"

// Buffer is a single-slot text buffer. Writes go through to the system
// clipboard on a best-effort basis; the in-memory slot is the source of
// truth whenever the system clipboard is unavailable (headless sessions,
// SSH).
type Buffer struct {
	text      string
	useSystem bool
}

// New returns a Buffer. With system true, reads and writes are mirrored to
// the OS clipboard when possible.
func New(system bool) *Buffer {
	return &Buffer{useSystem: system}
}

// Write stores text in the slot and mirrors it to the system clipboard.
func (b *Buffer) Write(text string) {
	b.text = text
	if b.useSystem {
		_ = clipboard.WriteAll(text)
	}
}

// Read returns the slot content. If the system clipboard holds text (e.g.
// copied in another application) it wins over the in-memory slot.
func (b *Buffer) Read() string {
	if b.useSystem {
		if text, err := clipboard.ReadAll(); err == nil && text != "" {
			return text
		}
	}
	return b.text
}

// Empty reports whether the in-memory slot is empty.
func (b *Buffer) Empty() bool {
	return b.text == ""
}

// Clear drops the in-memory slot. The system clipboard is left alone.
func (b *Buffer) Clear() {
	b.text = ""
}
