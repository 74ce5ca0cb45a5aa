package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tokenforge/pkg/sanitize"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

func TestStylesheet_InjectionIsNeutralized(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline("manufacturing")
	ts.Colors.Primary = "}; } body { background: url(evil)"
	ts.Typography.HeadingFont = "Arial; } * { behavior: url(x.htc)"
	ts.Components.ShadowLarge = "0 0 0 red, expression(alert(1))"
	ts.Imagery.OverlayGradient = "linear-gradient(red, url(evil))"

	var buf bytes.Buffer
	out := NewStylesheet(zerolog.New(&buf)).Render(ts)

	assert.Contains(t, out, "  --color-primary: #000000;\n")
	assert.Contains(t, out, "  --font-heading: sans-serif;\n")
	assert.Contains(t, out, "  --shadow-lg: none;\n")
	assert.Contains(t, out, "  --overlay-gradient: none;\n")
	assert.NotContains(t, out, "url(")
	assert.NotContains(t, out, "expression")
	assert.NotContains(t, out, "behavior")
	assert.Equal(t, 1, strings.Count(out, "{"), "only the :root block opens")
	assert.Equal(t, 1, strings.Count(out, "}"), "only the :root block closes")
	assert.True(t, strings.HasSuffix(out, "}\n"))

	assert.Equal(t, 4, strings.Count(buf.String(), "rejected unsafe stylesheet value"))
}

func TestStylesheet_EveryBaselineAndToneIsClean(t *testing.T) {
	t.Parallel()

	for _, id := range tokens.Industries() {
		for _, tone := range tokens.Tones() {
			var buf bytes.Buffer
			ts := tokens.NewGenerator(zerolog.Nop()).Generate(tokens.Request{Industry: id, Tone: tone})
			out := NewStylesheet(zerolog.New(&buf)).Render(ts)

			assert.Empty(t, buf.String(), "%s/%s substituted a value", id, tone)
			assert.True(t, strings.HasPrefix(out, Selector+" {\n"), "%s/%s", id, tone)
		}
	}
}

func TestStylesheet_OneDeclarationPerLine(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline("legal")
	out := NewStylesheet(zerolog.Nop()).Render(ts)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	decls := Declarations(ts)
	require.Len(t, lines, len(decls)+2)
	for i, d := range decls {
		line := lines[i+1]
		assert.True(t, strings.HasPrefix(line, "  "+d.Name+": "), line)
		assert.True(t, strings.HasSuffix(line, ";"), line)
	}
}

func TestDeclarations_NamesAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, d := range Declarations(tokens.GetBaseline(tokens.DefaultIndustry)) {
		assert.False(t, seen[d.Name], "duplicate %s", d.Name)
		seen[d.Name] = true
		assert.Contains(t, sanitize.Classes(), d.Class, d.Name)
	}
	assert.True(t, seen["--color-primary-hover"])
	assert.True(t, seen["--radius-full"])
	assert.True(t, seen["--overlay-gradient"])
}

func TestStylesheet_EmptyGradientRendersNone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ts := tokens.GetBaseline("healthcare")
	require.Empty(t, ts.Imagery.OverlayGradient)

	out := NewStylesheet(zerolog.New(&buf)).Render(ts)
	assert.Contains(t, out, "--overlay-gradient: none;")
	assert.Empty(t, buf.String())
}

// closesStrings reports whether every quoted string opened on line is
// closed on the same line.
func closesStrings(line string) bool {
	var open rune
	for _, r := range line {
		switch {
		case open == 0 && (r == '"' || r == '\''):
			open = r
		case r == open:
			open = 0
		}
	}
	return open == 0
}

func TestStylesheet_UnbalancedFontQuotesStayOnTheirLine(t *testing.T) {
	t.Parallel()

	ts := tokens.GetBaseline("legal")
	ts.Typography.HeadingFont = `Inter"`
	ts.Typography.BodyFont = "'Inter"

	var buf bytes.Buffer
	out := NewStylesheet(zerolog.New(&buf)).Render(ts)

	assert.Contains(t, out, "  --font-heading: sans-serif;\n")
	assert.Contains(t, out, "  --font-body: sans-serif;\n")
	assert.Equal(t, 2, strings.Count(buf.String(), "rejected unsafe stylesheet value"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 2)
	for _, line := range lines[1 : len(lines)-1] {
		assert.Regexp(t, `^  --[a-z0-9-]+: [^;{}]*;$`, line)
		assert.True(t, closesStrings(line), "string literal runs past %q", line)
	}
}
