package picker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// ansiRE matches CSI and OSC escape sequences. Host parameter values come
// from arbitrary model data and occasionally carry terminal escapes; they
// must never reach the grid raw.
var ansiRE = regexp.MustCompile(`\x1b(?:\[[0-9;]*[A-Za-z]|\].*?(?:\x1b\\|\x07))`)

// cell normalizes a raw display value and fits it to width: escapes and
// control bytes are stripped, invalid UTF-8 is repaired, overlong text is
// truncated with an ellipsis and short text is padded. Called per visible
// cell on every repaint, so it allocates only when it has to.
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = normalizeCell(s)
	w := runewidth.StringWidth(s)
	switch {
	case w == width:
		return s
	case w < width:
		return s + strings.Repeat(" ", width-w)
	}
	return truncateCell(s, width)
}

// normalizeCell strips ANSI escapes and control characters and repairs
// invalid UTF-8.
func normalizeCell(s string) string {
	if strings.ContainsRune(s, '\x1b') {
		s = ansiRE.ReplaceAllString(s, "")
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControl(r) {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool { return r < 0x20 || r == 0x7f }

// truncateCell returns the longest prefix of s fitting width-1 display
// columns followed by an ellipsis. Width-aware so CJK and emoji cells
// truncate cleanly.
func truncateCell(s string, width int) string {
	const ellipsis = "…"
	if width == 1 {
		return ellipsis
	}
	budget := width - 1
	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > budget {
			// A double-width rune can leave one spare column.
			return s[:i] + strings.Repeat(" ", budget-w) + ellipsis
		}
		w += rw
	}
	return s
}
