package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDarken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		color   string
		percent float64
		want    string
	}{
		{"white by half", "#ffffff", 50, "#808080"},
		{"red hover", "#ff0000", 10, "#e60000"},
		{"upper-case input", "#FF0000", 10, "#e60000"},
		{"short form", "#fff", 50, "#808080"},
		{"zero percent", "#1e3a5f", 0, "#1e3a5f"},
		{"full darken", "#abcdef", 100, "#000000"},
		{"black stays black", "#000000", 10, "#000000"},
		{"named color unchanged", "red", 10, "red"},
		{"functional color unchanged", "rgb(1, 2, 3)", 10, "rgb(1, 2, 3)"},
		{"alpha hex unchanged", "#ff000080", 10, "#ff000080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Darken(tt.color, tt.percent))
		})
	}
}

func TestWithAlpha(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff00001a", WithAlpha("#FF0000"))
	assert.Equal(t, "#aabbcc1a", WithAlpha("#abc"))
	assert.Equal(t, "teal", WithAlpha("teal"))
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	r, g, b, ok := ParseHex("#1e3a5f")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{0x1e, 0x3a, 0x5f}, [3]uint8{r, g, b})

	_, _, _, ok = ParseHex("1e3a5f")
	assert.False(t, ok, "missing hash")
	_, _, _, ok = ParseHex("#12345g")
	assert.False(t, ok, "non-hex digit")
}
