package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTarget(t *testing.T) {
	primary := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	second := Rect{X: 1920, Y: -120, W: 2560, H: 1440}

	tests := []struct {
		name     string
		displays []Rect
		spanAll  bool
		want     Rect
	}{
		{"no displays", nil, true, Rect{}},
		{"primary only", []Rect{primary, second}, false, primary},
		{"span two", []Rect{primary, second}, true, Rect{X: 0, Y: -120, W: 4480, H: 1440}},
		{"span single", []Rect{primary}, true, primary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Target(tt.displays, tt.spanAll))
		})
	}
}

func TestUnionIgnoresEmptyOperands(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 100, H: 50}
	assert.Equal(t, r, r.Union(Rect{}))
	assert.Equal(t, r, Rect{}.Union(r))
	assert.True(t, Rect{}.Empty())
}
