package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   Renderer
	}{
		{"css", &Stylesheet{}},
		{"Stylesheet", &Stylesheet{}},
		{"framework", &Framework{}},
		{"json", &JSON{}},
		{"summary", &Summary{}},
		{" terminal ", &Terminal{}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			r, err := ByName(tt.format, Options{Logger: zerolog.Nop()})
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}

	_, err := ByName("yaml", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestFrameworkConfigFor(t *testing.T) {
	t.Parallel()

	ts := tokens.ApplyTone(tokens.GetBaseline("manufacturing"), "authoritative")
	cfg := FrameworkConfigFor(ts)

	assert.Equal(t, "#1e3a5f", cfg.Colors.Primary.Default)
	assert.Equal(t, ts.Colors.PrimaryHover, cfg.Colors.Primary.Hover)
	assert.Equal(t, ts.Colors.BorderStrong, cfg.Colors.Border.Strong)
	assert.Equal(t, []string{"Barlow Condensed", "Arial Narrow", "sans-serif"}, cfg.FontFamily["heading"])
	assert.Equal(t, "800", cfg.FontWeight["heading"])
	assert.Equal(t, "6px", cfg.BorderRadius["lg"])
	assert.Equal(t, "9999px", cfg.BorderRadius["full"])
	assert.Equal(t, ts.Components.ShadowMedium, cfg.BoxShadow["md"])
}

func TestFramework_DoesNotSanitize(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline(tokens.DefaultIndustry)
	ts.Colors.Primary = "var(--brand)"
	out := NewFramework().Render(ts)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, out, `"DEFAULT": "var(--brand)"`)
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline("finance")
	out := NewJSON().Render(ts)

	var decoded struct {
		Version string          `json:"version"`
		Summary tokens.Summary  `json:"summary"`
		Tokens  tokens.TokenSet `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, OutputVersion, decoded.Version)
	assert.Equal(t, ts.Summary(), decoded.Summary)
	assert.Equal(t, ts, decoded.Tokens)
}

func TestSummary_Render(t *testing.T) {
	t.Parallel()

	out := NewSummary().Render(tokens.GetBaseline("manufacturing"))

	assert.True(t, strings.HasPrefix(out, "TOKENS: manufacturing (Manufacturing & Industrial)\n"))
	assert.Contains(t, out, "STYLE: typography=technical density=compact icons=solid cards=bordered imagery=documentary")
	assert.Contains(t, out, "primary=#1e3a5f")
	assert.NotContains(t, out, "\033[")
}

func TestTerminal_Render(t *testing.T) {
	t.Parallel()

	out := NewTerminal(MonoTheme(), 80).Render(tokens.GetBaseline("manufacturing"))

	for _, want := range []string{"Manufacturing & Industrial", "# Colors", "primary-hover", "#1b3456", "# Typography", "# Components", "9999px"} {
		assert.Contains(t, out, want)
	}
}

func TestTerminal_FlagsInvalidColor(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline(tokens.DefaultIndustry)
	ts.Colors.Info = "url(x)"
	out := NewTerminal(MonoTheme(), 80).Render(ts)

	assert.Contains(t, out, MonoTheme().Icons.Invalid+" info")
}

func TestTruncateWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncateWidth("short", 10))
	assert.Equal(t, "abcdefg...", truncateWidth("abcdefghijklmnop", 10))
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "default", ThemeByName("nope").Name)
}
