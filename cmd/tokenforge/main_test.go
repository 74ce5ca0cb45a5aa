package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the user's config file and environment out of a test.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	for _, key := range []string{
		"TOKENFORGE_INDUSTRY", "TOKENFORGE_TONE", "TOKENFORGE_FORMAT", "TOKENFORGE_THEME",
		"TOKENFORGE_NO_COLOR", "NO_COLOR", "TOKENFORGE_DEBUG",
	} {
		t.Setenv(key, "")
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

type jsonDoc struct {
	Version string `json:"version"`
	Tokens  struct {
		ID     string `json:"id"`
		Colors struct {
			Primary      string `json:"primary"`
			PrimaryHover string `json:"primaryHover"`
			Secondary    string `json:"secondary"`
		} `json:"colors"`
		Typography struct {
			HeadingWeight int `json:"headingWeight"`
		} `json:"typography"`
	} `json:"tokens"`
}

func decodeJSONDoc(t *testing.T, s string) jsonDoc {
	t.Helper()
	var doc jsonDoc
	require.NoError(t, json.Unmarshal([]byte(s), &doc), s)
	return doc
}

func TestGenerate_WritesStylesheet_When_OutputIsPiped(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "generate", "-i", "manufacturing", "-t", "authoritative", "--primary", "#FF0000")

	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(out, ":root {\n"), out)
	assert.Contains(t, out, "  --color-primary: #FF0000;\n")
	assert.Contains(t, out, "  --color-primary-hover: #e60000;\n")
	assert.Contains(t, out, "  --font-weight-heading: 800;\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestGenerate_FallsBackToBaseline_When_PrimaryIsUnsafe(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "generate", "-i", "manufacturing", "--primary", "red; } body { x: y")

	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, out, "body")
	assert.Equal(t, 1, strings.Count(out, "{"))
	assert.Contains(t, stderr, "ignoring unsafe brand color")
}

func TestGenerate_RendersJSON_When_FormatIsJSON(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "generate", "--format", "json", "--industry", "dental practice", "--tone", "friendly")

	require.Equal(t, 0, code, stderr)
	doc := decodeJSONDoc(t, out)
	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, "healthcare", doc.Tokens.ID)
}

func TestGenerate_RendersFrameworkAndSummary(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "generate", "-f", "framework", "-i", "legal")
	require.Equal(t, 0, code, stderr)
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Contains(t, cfg, "colors")
	assert.Contains(t, cfg, "fontFamily")

	code, out, stderr = runCLI(t, "", "generate", "-f", "summary", "-i", "legal")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "TOKENS:")
}

func TestGenerate_ReadsBrandFromStdin_When_BrandFileIsDash(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, `{"primaryColor":"#123456","extractedColors":["#000000","#abcdef"]}`,
		"generate", "-f", "json", "--brand-file", "-")

	require.Equal(t, 0, code, stderr)
	doc := decodeJSONDoc(t, out)
	assert.Equal(t, "#123456", doc.Tokens.Colors.Primary)
	assert.Equal(t, "#abcdef", doc.Tokens.Colors.Secondary)
}

func TestGenerate_FlagsOverrideBrandFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile("brand.yaml", []byte("primary_color: \"#111111\"\nsecondary_color: \"#222222\"\n"), 0o600))

	code, out, stderr := runCLI(t, "", "generate", "-f", "json", "--brand-file", "brand.yaml", "--primary", "#333333")

	require.Equal(t, 0, code, stderr)
	doc := decodeJSONDoc(t, out)
	assert.Equal(t, "#333333", doc.Tokens.Colors.Primary)
	assert.Equal(t, "#222222", doc.Tokens.Colors.Secondary)
}

func TestGenerate_WritesFile_When_OutIsSet(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "generate", "-i", "retail", "--out", "tokens.css")

	require.Equal(t, 0, code, stderr)
	assert.Empty(t, out)
	data, err := os.ReadFile("tokens.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ":root {")
}

func TestGenerate_UsesConfigFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".tokenforge.yaml", []byte("industry: logistics\nformat: json\n"), 0o600))

	code, out, stderr := runCLI(t, "", "generate")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "logistics", decodeJSONDoc(t, out).Tokens.ID)
}

func TestRun_ExitsTwo_When_ConfigIsInvalid(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, "", "generate", "--format", "bogus")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid format")
}

func TestRun_ExitsTwo_When_CommandIsUnknown(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, "", "frobnicate")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "tokenforge:")
}

func TestIndustries_ListsEveryBaseline(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "industries")

	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 17, "header plus 16 baselines")
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, out, "law-firm")
}

func TestIndustries_RanksMatches_When_QueryIsGiven(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "industries", "hosp")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "hospitality")
	assert.Contains(t, out, "healthcare")
	assert.NotContains(t, out, "logistics")
}

func TestTones_ListsPresets(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "tones")

	require.Equal(t, 0, code, stderr)
	for _, tone := range []string{"professional", "authoritative", "friendly", "playful"} {
		assert.Contains(t, out, tone)
	}
	assert.Contains(t, out, "Authoritative")
	assert.Contains(t, out, "+100")
}

func TestCheck_Passes_When_BrandIsSafe(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "check", "--primary", "#7a1f2b")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "ok: 128 token sets, 1 brand colors")
}

func TestCheck_ExitsOne_When_BrandColorIsUnsafe(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "check", "--extracted", "url(javascript:x)")

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "FAIL brand: extracted[0]")
	assert.Contains(t, stderr, "1 problems")
}

func TestPreview_ExitsTwo_When_NotATerminal(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, "", "preview")

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "needs a terminal")
}

func TestVersion_PrintsBuildInfo(t *testing.T) {
	isolate(t)

	code, out, _ := runCLI(t, "", "version")

	require.Equal(t, 0, code)
	assert.Equal(t, "tokenforge dev (commit unknown, built unknown)\n", out)
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "css", resolveFormat("auto", &buf))
	assert.Equal(t, "json", resolveFormat("json", &buf))
	assert.Equal(t, 80, termWidth(&buf))
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseOutput_ReportsCloseError_When_WriteSucceeded(t *testing.T) {
	closeErr := errors.New("disk full")

	var err error
	closeOutput(failingCloser{closeErr}, &err)
	require.ErrorIs(t, err, closeErr)
	assert.Contains(t, err.Error(), "close output")

	writeErr := errors.New("write failed")
	err = writeErr
	closeOutput(failingCloser{closeErr}, &err)
	assert.Equal(t, writeErr, err)

	err = nil
	closeOutput(failingCloser{}, &err)
	assert.NoError(t, err)
}

func TestGenerate_Fails_When_OutDirIsMissing(t *testing.T) {
	isolate(t)

	code, _, stderr := runCLI(t, "", "generate", "--out", filepath.Join("missing", "tokens.css"))

	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "create output")
}

func TestCheck_TrimsBrandColors_LikeTheMerger(t *testing.T) {
	isolate(t)

	code, out, stderr := runCLI(t, "", "check", "--primary", " #fff ", "--secondary", "rgb(0, 128, 0)")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "ok: 128 token sets, 2 brand colors")
}
