package tokens

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestApplyOverrides_Precedence(t *testing.T) {
	t.Parallel()

	base := GetBaseline(DefaultIndustry)

	tests := []struct {
		name          string
		overrides     BrandOverrides
		wantPrimary   string
		wantSecondary string
	}{
		{
			name:          "explicit beats extracted",
			overrides:     BrandOverrides{PrimaryColor: "#ff0000", ExtractedColors: []string{"#00ff00", "#0000ff"}},
			wantPrimary:   "#ff0000",
			wantSecondary: "#0000ff",
		},
		{
			name:          "extracted fills both slots",
			overrides:     BrandOverrides{ExtractedColors: []string{"#00ff00", "#0000ff"}},
			wantPrimary:   "#00ff00",
			wantSecondary: "#0000ff",
		},
		{
			name:          "single extracted color only touches primary",
			overrides:     BrandOverrides{ExtractedColors: []string{"#00ff00"}},
			wantPrimary:   "#00ff00",
			wantSecondary: base.Colors.Secondary,
		},
		{
			name:          "empty overrides keep baseline",
			overrides:     BrandOverrides{},
			wantPrimary:   base.Colors.Primary,
			wantSecondary: base.Colors.Secondary,
		},
		{
			name:          "unsafe explicit falls back to extracted",
			overrides:     BrandOverrides{PrimaryColor: "red; background: url(x)", ExtractedColors: []string{"#123456"}},
			wantPrimary:   "#123456",
			wantSecondary: base.Colors.Secondary,
		},
		{
			name:          "unsafe everything keeps baseline",
			overrides:     BrandOverrides{SecondaryColor: "}", ExtractedColors: []string{"expression(1)", "<b>"}},
			wantPrimary:   base.Colors.Primary,
			wantSecondary: base.Colors.Secondary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewGenerator(zerolog.Nop())
			ts := g.ApplyOverrides(base, tt.overrides)
			assert.Equal(t, tt.wantPrimary, ts.Colors.Primary)
			assert.Equal(t, tt.wantSecondary, ts.Colors.Secondary)
		})
	}
}

func TestApplyOverrides_DerivesHoverAndMuted(t *testing.T) {
	t.Parallel()

	g := NewGenerator(zerolog.Nop())
	ts := g.ApplyOverrides(GetBaseline("finance"), BrandOverrides{PrimaryColor: "#FF0000", SecondaryColor: "#fff"})

	assert.Equal(t, "#FF0000", ts.Colors.Primary)
	assert.Equal(t, "#e60000", ts.Colors.PrimaryHover)
	assert.Equal(t, "#ff00001a", ts.Colors.PrimaryMuted)
	assert.Equal(t, "#fff", ts.Colors.Secondary)
	assert.Equal(t, "#e6e6e6", ts.Colors.SecondaryHover)
	assert.Equal(t, "#ffffff1a", ts.Colors.SecondaryMuted)
}

func TestApplyOverrides_ConvertsNonHexColors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"rgb(255, 0, 0)", "rgba(255,0,0,0.5)", "red", "#ff000080", "#f008", "hsl(0, 100%, 50%)"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			ts := NewGenerator(zerolog.Nop()).Generate(Request{Industry: "legal", Overrides: &BrandOverrides{PrimaryColor: in}})

			assert.Equal(t, "#ff0000", ts.Colors.Primary)
			assert.Equal(t, "#e60000", ts.Colors.PrimaryHover)
			assert.NotEqual(t, ts.Colors.Primary, ts.Colors.PrimaryHover)
			assert.True(t, strings.HasSuffix(ts.Colors.PrimaryMuted, MutedAlpha), ts.Colors.PrimaryMuted)
			assert.Equal(t, "#ff00001a", ts.Colors.PrimaryMuted)
		})
	}
}

func TestApplyOverrides_ExtractedRGBColor(t *testing.T) {
	t.Parallel()

	ts := NewGenerator(zerolog.Nop()).ApplyOverrides(GetBaseline(DefaultIndustry),
		BrandOverrides{ExtractedColors: []string{"rebeccapurple", "rgb(0 128 0)"}})

	assert.Equal(t, "#663399", ts.Colors.Primary)
	assert.Equal(t, "#5c2e8a", ts.Colors.PrimaryHover)
	assert.Equal(t, "#6633991a", ts.Colors.PrimaryMuted)
	assert.Equal(t, "#008000", ts.Colors.Secondary)
	assert.Equal(t, "#007300", ts.Colors.SecondaryHover)
}

func TestApplyOverrides_UnconvertibleColorFallsThrough(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := GetBaseline(DefaultIndustry)
	ts := NewGenerator(zerolog.New(&buf)).ApplyOverrides(base,
		BrandOverrides{PrimaryColor: "transparent", SecondaryColor: "notacolor"})

	assert.Equal(t, base.Colors.Primary, ts.Colors.Primary)
	assert.Equal(t, base.Colors.PrimaryHover, ts.Colors.PrimaryHover)
	assert.Equal(t, base.Colors.Secondary, ts.Colors.Secondary)
	assert.Equal(t, 2, strings.Count(buf.String(), "ignoring brand color with no hex form"))

	ts = NewGenerator(zerolog.Nop()).ApplyOverrides(base,
		BrandOverrides{PrimaryColor: "transparent", ExtractedColors: []string{"navy"}})
	assert.Equal(t, "#000080", ts.Colors.Primary)
}

func TestApplyOverrides_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := GetBaseline("retail")
	before := base
	o := BrandOverrides{ExtractedColors: []string{"#010203"}}
	_ = NewGenerator(zerolog.Nop()).ApplyOverrides(base, o)

	assert.Equal(t, before, base)
	assert.Equal(t, []string{"#010203"}, o.ExtractedColors)
}

func TestApplyOverrides_LogsRejectedColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	g := NewGenerator(zerolog.New(&buf))
	_ = g.ApplyOverrides(GetBaseline(DefaultIndustry), BrandOverrides{PrimaryColor: "javascript:alert(1)"})

	assert.Contains(t, buf.String(), `"slot":"primary"`)
	assert.Contains(t, buf.String(), `"source":"explicit"`)
	assert.Contains(t, buf.String(), "ignoring unsafe brand color")
}

func TestBrandOverrides_HasColors(t *testing.T) {
	t.Parallel()

	assert.False(t, BrandOverrides{}.HasColors())
	assert.False(t, BrandOverrides{LogoURL: "https://example.com/logo.png", ExtractedColors: []string{" "}}.HasColors())
	assert.True(t, BrandOverrides{ExtractedColors: []string{"#fff"}}.HasColors())
	assert.True(t, BrandOverrides{SecondaryColor: "#fff"}.HasColors())
}

func TestBrandOverrides_Merge(t *testing.T) {
	t.Parallel()

	file := BrandOverrides{PrimaryColor: "#111111", SecondaryColor: "#222222", ExtractedColors: []string{"#333333"}}
	flags := BrandOverrides{PrimaryColor: "#aaaaaa"}

	got := file.Merge(flags)
	assert.Equal(t, "#aaaaaa", got.PrimaryColor)
	assert.Equal(t, "#222222", got.SecondaryColor)
	assert.Equal(t, []string{"#333333"}, got.ExtractedColors)

	got.ExtractedColors[0] = "#000000"
	assert.Equal(t, "#333333", file.ExtractedColors[0])
}
