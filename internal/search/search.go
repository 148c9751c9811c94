package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is a half-open byte offset range [Start, End) into the searched
// text. Matches are only valid against the exact text they were computed
// from; any edit invalidates them.
type Match struct {
	Start int
	End   int
}

// Mode is the state of the find/replace overlay.
type Mode int

const (
	ModeClosed Mode = iota
	ModeFind
	ModeReplace
)

// FindAll returns every case-insensitive occurrence of term in text. The
// scan advances one byte past each match start, so overlapping occurrences
// are all reported: FindAll("aaa", "aa") yields {0,2} and {1,3}. An empty
// term yields no matches.
func FindAll(text, term string) []Match {
	if term == "" {
		return nil
	}

	haystack := fold(text)
	needle := fold(term)

	var matches []Match
	pos := 0
	for pos <= len(haystack)-len(needle) {
		i := strings.Index(haystack[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		matches = append(matches, Match{Start: start, End: start + len(needle)})
		pos = start + 1
	}
	return matches
}

// fold lowercases text for case-insensitive matching while keeping every
// byte offset aligned with the input: a rune whose lowercase form encodes
// to a different UTF-8 length (İ, the Kelvin sign) is kept as-is, and
// invalid bytes pass through untouched. len(fold(s)) == len(s) always
// holds, so indexes into the folded text index the original.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
			i++
			continue
		}
		l := unicode.ToLower(r)
		if utf8.RuneLen(l) != size {
			l = r
		}
		b.WriteRune(l)
		i += size
	}
	return b.String()
}

// Replace substitutes exactly the given match range with repl. The returned
// text shifts all offsets after the match; the caller must re-run FindAll
// rather than reuse stale ranges.
func Replace(text string, m Match, repl string) string {
	if m.Start < 0 || m.End > len(text) || m.Start > m.End {
		return text
	}
	return text[:m.Start] + repl + text[m.End:]
}

// ReplaceAll rewrites text with every case-insensitive, non-overlapping
// occurrence of term replaced in a single left-to-right pass. It returns the
// new text and the number of replacements; zero matches is a no-op.
func ReplaceAll(text, term, repl string) (string, int) {
	if term == "" {
		return text, 0
	}

	haystack := fold(text)
	needle := fold(term)

	var b strings.Builder
	count := 0
	pos := 0
	for {
		i := strings.Index(haystack[pos:], needle)
		if i < 0 {
			break
		}
		start := pos + i
		b.WriteString(text[pos:start])
		b.WriteString(repl)
		pos = start + len(needle)
		count++
	}
	if count == 0 {
		return text, 0
	}
	b.WriteString(text[pos:])
	return b.String(), count
}

// Coordinator holds the transient match list, the match cursor, and the
// overlay mode. It never touches the surface itself; callers feed it text
// and act on the ranges it hands back.
type Coordinator struct {
	term    string
	matches []Match
	current int // index into matches, -1 when empty
	mode    Mode
}

// NewCoordinator returns a Coordinator with no matches and the overlay
// closed.
func NewCoordinator() *Coordinator {
	return &Coordinator{current: -1}
}

// Find recomputes matches for term against text. A fresh term starts the
// match cursor at the first match; re-running the same term keeps the cursor
// where it was, clamped into range if the set shrank.
func (c *Coordinator) Find(text, term string) []Match {
	sameTerm := term == c.term
	c.term = term
	c.matches = FindAll(text, term)

	switch {
	case len(c.matches) == 0:
		c.current = -1
	case !sameTerm || c.current < 0:
		c.current = 0
	case c.current >= len(c.matches):
		c.current = len(c.matches) - 1
	}
	return c.matches
}

// Term returns the last searched term.
func (c *Coordinator) Term() string {
	return c.term
}

// Matches returns the current match list.
func (c *Coordinator) Matches() []Match {
	return c.matches
}

// Total returns the number of matches.
func (c *Coordinator) Total() int {
	return len(c.matches)
}

// CurrentIndex returns the match cursor, -1 when there are no matches.
func (c *Coordinator) CurrentIndex() int {
	return c.current
}

// Current returns the match under the cursor.
func (c *Coordinator) Current() (Match, bool) {
	if c.current < 0 || c.current >= len(c.matches) {
		return Match{}, false
	}
	return c.matches[c.current], true
}

// Next advances the match cursor cyclically.
func (c *Coordinator) Next() (Match, bool) {
	if len(c.matches) == 0 {
		return Match{}, false
	}
	c.current = (c.current + 1) % len(c.matches)
	return c.matches[c.current], true
}

// Previous moves the match cursor back cyclically.
func (c *Coordinator) Previous() (Match, bool) {
	if len(c.matches) == 0 {
		return Match{}, false
	}
	c.current = (c.current - 1 + len(c.matches)) % len(c.matches)
	return c.matches[c.current], true
}

// Clear drops all match state, keeping the overlay mode.
func (c *Coordinator) Clear() {
	c.term = ""
	c.matches = nil
	c.current = -1
}

// Mode returns the overlay mode.
func (c *Coordinator) Mode() Mode {
	return c.mode
}

// ToggleFind opens the overlay in find mode, or closes it if find mode is
// already active. Switching from replace mode preserves term and matches.
func (c *Coordinator) ToggleFind() Mode {
	if c.mode == ModeFind {
		c.mode = ModeClosed
	} else {
		c.mode = ModeFind
	}
	return c.mode
}

// ToggleReplace opens the overlay in replace mode, or closes it if replace
// mode is already active.
func (c *Coordinator) ToggleReplace() Mode {
	if c.mode == ModeReplace {
		c.mode = ModeClosed
	} else {
		c.mode = ModeReplace
	}
	return c.mode
}

// CloseOverlay closes the overlay and drops match state.
func (c *Coordinator) CloseOverlay() {
	c.mode = ModeClosed
	c.Clear()
}
