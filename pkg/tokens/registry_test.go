package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIndustry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "real-estate", NormalizeIndustry("Real Estate"))
	assert.Equal(t, "manufacturing---industrial", NormalizeIndustry("Manufacturing / Industrial"))
	assert.Equal(t, "caf-", NormalizeIndustry("Café"))
	assert.Equal(t, "", NormalizeIndustry(""))
}

func TestResolveIndustry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantBaseline string
		wantMatch    MatchKind
	}{
		{"canonical key", "manufacturing", "manufacturing", MatchExact},
		{"mixed case with spaces", "Real Estate", "real-estate", MatchExact},
		{"alias", "law firm", "legal", MatchExact},
		{"alias to finance", "Insurance", "finance", MatchExact},
		{"input contains key", "Manufacturing / Industrial", "manufacturing", MatchFuzzy},
		{"input contains alias", "dental practice", "healthcare", MatchFuzzy},
		{"key contains input", "logist", "logistics", MatchFuzzy},
		{"unknown", "zzqq", DefaultIndustry, MatchDefault},
		{"empty", "", DefaultIndustry, MatchDefault},
		{"no letters", "  123 ", DefaultIndustry, MatchDefault},
		{"default requested", "default", DefaultIndustry, MatchExact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := ResolveIndustry(tt.input)
			assert.Equal(t, tt.wantBaseline, res.Baseline)
			assert.Equal(t, tt.wantMatch, res.Match)
			assert.Equal(t, tt.input, res.Input)
		})
	}
}

func TestLookupFuzzy_SkipsDefault(t *testing.T) {
	t.Parallel()

	_, ok := LookupFuzzy("defaul")
	assert.False(t, ok)
	_, ok = LookupFuzzy("---")
	assert.False(t, ok)
}

func TestGetBaseline_IsIdempotent(t *testing.T) {
	t.Parallel()

	for _, key := range IndustryKeys() {
		assert.Equal(t, GetBaseline(key), GetBaseline(key), key)
	}
}

func TestGetBaseline_UnknownEqualsDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultBaseline(), GetBaseline("zzqq"))
	assert.Equal(t, DefaultBaseline(), GetBaseline(""))
}

func TestGetBaseline_ReturnsIndependentCopy(t *testing.T) {
	t.Parallel()

	ts := GetBaseline("manufacturing")
	ts.Colors.Primary = "#000000"
	ts.Typography.HeadingWeight = 100

	again := GetBaseline("manufacturing")
	assert.Equal(t, "#1e3a5f", again.Colors.Primary)
	assert.Equal(t, 700, again.Typography.HeadingWeight)
}

func TestBaselines_AreValid(t *testing.T) {
	t.Parallel()

	ids := Industries()
	require.Len(t, ids, 16)
	for _, id := range ids {
		ts := GetBaseline(id)
		assert.Equal(t, id, ts.ID)
		assert.NotEmpty(t, ts.Name, id)
		require.NoError(t, ts.Validate(), id)
		assert.Equal(t, Darken(ts.Colors.Primary, HoverDarkenPercent), ts.Colors.PrimaryHover, id)
		assert.Equal(t, WithAlpha(ts.Colors.Primary), ts.Colors.PrimaryMuted, id)
		assert.Equal(t, Darken(ts.Colors.Secondary, HoverDarkenPercent), ts.Colors.SecondaryHover, id)
		assert.Equal(t, WithAlpha(ts.Colors.Secondary), ts.Colors.SecondaryMuted, id)
		assert.GreaterOrEqual(t, ts.Typography.HeadingWeight, MinHeadingWeight, id)
		assert.LessOrEqual(t, ts.Typography.HeadingWeight, MaxHeadingWeight, id)
	}
}

func TestAliases(t *testing.T) {
	t.Parallel()

	assert.Contains(t, Aliases("legal"), "law-firm")
	assert.NotContains(t, Aliases("legal"), "legal")
	assert.Empty(t, Aliases(DefaultIndustry))
}

func TestSearchIndustries(t *testing.T) {
	t.Parallel()

	got := SearchIndustries("hosp")
	require.NotEmpty(t, got)
	assert.Contains(t, got, "healthcare", "hospital alias")
	assert.Contains(t, got, "hospitality")

	assert.Equal(t, Industries(), SearchIndustries(""))
	assert.Empty(t, SearchIndustries("zzqq"))
}
