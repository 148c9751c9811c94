package editor

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

const chromaStyle = "catppuccin-mocha"

// hlCache memoizes the last highlighted rendering. One document is visible
// at a time, so a single entry is enough; swapping documents invalidates it.
type hlCache struct {
	key   string
	lines []string
}

// highlightedView renders the idle (unfocused) surface with chroma syntax
// colors, windowed so the cursor line stays visible.
func (s *Surface) highlightedView() string {
	text := s.ta.Value()
	key := s.language + "\x00" + text
	if s.hl.key != key {
		s.hl = hlCache{key: key, lines: strings.Split(highlight(text, s.language), "\n")}
	}

	lines := s.hl.lines
	top := 0
	if cur := s.Line(); s.height > 0 && cur >= s.height {
		top = cur - s.height + 1
	}
	bottom := top + s.height
	if bottom > len(lines) {
		bottom = len(lines)
	}

	gutter := lipgloss.NewStyle().Foreground(s.theme.Dim)
	var b strings.Builder
	for i := top; i < bottom; i++ {
		b.WriteString(gutter.Render(fmt.Sprintf("%4d ", i+1)))
		b.WriteString(lines[i])
		if i < bottom-1 {
			b.WriteByte('\n')
		}
	}
	for i := bottom - top; i < s.height; i++ {
		b.WriteByte('\n')
	}
	return b.String()
}

// highlight runs text through chroma's terminal formatter. Unknown languages
// and tokenizer failures fall back to the plain text.
func highlight(text, language string) string {
	lex := lexers.Get(language)
	if lex == nil {
		return text
	}
	lex = chroma.Coalesce(lex)

	fmtr := formatters.Get("terminal16m")
	if fmtr == nil {
		fmtr = formatters.Fallback
	}

	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return text
	}
	var buf strings.Builder
	if err := fmtr.Format(&buf, styles.Get(chromaStyle), it); err != nil {
		return text
	}
	return strings.TrimRight(buf.String(), "\n")
}
