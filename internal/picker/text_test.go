package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellPadsAndTruncates(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads short", "A-101", 8, "A-101   "},
		{"exact fit", "A-101", 5, "A-101"},
		{"truncates long", "North Elevation", 8, "North E…"},
		{"zero width", "anything", 0, ""},
		{"width one", "anything", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cell(tt.in, tt.width))
		})
	}
}

func TestCellIsWidthAware(t *testing.T) {
	// Double-width runes count two columns each.
	out := cell("日本語テキスト", 7)
	assert.Equal(t, "日本語…", out)

	padded := cell("日本", 6)
	assert.Equal(t, "日本  ", padded)
}

func TestNormalizeCellStripsEscapesAndControls(t *testing.T) {
	assert.Equal(t, "red text", normalizeCell("\x1b[31mred\x1b[0m text"))
	assert.Equal(t, "a b", normalizeCell("a\tb"))
	assert.Equal(t, "plain", normalizeCell("plain"))
}

func TestNormalizeCellRepairsInvalidUTF8(t *testing.T) {
	out := normalizeCell("ok\xffend")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "end")
	assert.Contains(t, out, "�")
}
