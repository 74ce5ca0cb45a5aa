package tokens

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultTone is applied when the tone is empty or unknown.
const DefaultTone = "professional"

// Heading weights are clamped to this range after a tone delta.
const (
	MinHeadingWeight = 400
	MaxHeadingWeight = 800
)

// Contrast is a qualitative contrast preference.
type Contrast string

const (
	ContrastLow    Contrast = "low"
	ContrastMedium Contrast = "medium"
	ContrastHigh   Contrast = "high"
)

// Temperature is a color temperature hint.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// ToneModifier adjusts a token set to a messaging tone.
type ToneModifier struct {
	HeadingWeightDelta int         `json:"headingWeightDelta" yaml:"heading_weight_delta"`
	Contrast           Contrast    `json:"contrast" yaml:"contrast"`
	SpacingMultiplier  float64     `json:"spacingMultiplier" yaml:"spacing_multiplier"`
	RadiusDelta        string      `json:"radiusDelta" yaml:"radius_delta"` // signed px, e.g. "+4px"
	Temperature        Temperature `json:"temperature" yaml:"temperature"`
}

var tones = map[string]ToneModifier{
	"professional":  {0, ContrastMedium, 1, "0px", TemperatureNeutral},
	"authoritative": {100, ContrastHigh, 0.95, "-2px", TemperatureCool},
	"friendly":      {-100, ContrastMedium, 1.1, "+4px", TemperatureWarm},
	"warm":          {0, ContrastLow, 1.1, "+2px", TemperatureWarm},
	"confident":     {100, ContrastHigh, 1, "0px", TemperatureNeutral},
	"innovative":    {0, ContrastHigh, 1.05, "+2px", TemperatureCool},
	"luxurious":     {-100, ContrastMedium, 1.25, "-2px", TemperatureWarm},
	"playful":       {100, ContrastMedium, 1, "+8px", TemperatureWarm},
}

// Tones returns the preset tone keys, sorted.
func Tones() []string {
	keys := lo.Keys(tones)
	sort.Strings(keys)
	return keys
}

// LookupTone returns the preset for key (case-insensitive) and whether it
// exists.
func LookupTone(key string) (ToneModifier, bool) {
	m, ok := tones[strings.ToLower(strings.TrimSpace(key))]
	return m, ok
}

// GetTone returns the preset for key, falling back to DefaultTone.
func GetTone(key string) ToneModifier {
	if m, ok := LookupTone(key); ok {
		return m
	}
	return tones[DefaultTone]
}

// Modify applies m to a copy of ts.
func (m ToneModifier) Modify(ts TokenSet) TokenSet {
	out := ts.Clone()

	out.Typography.HeadingWeight = clampInt(
		out.Typography.HeadingWeight+m.HeadingWeightDelta, MinHeadingWeight, MaxHeadingWeight)

	if m.SpacingMultiplier != 1 && m.SpacingMultiplier > 0 {
		out.Spacing.SectionPaddingY = scalePx(out.Spacing.SectionPaddingY, m.SpacingMultiplier)
		out.Spacing.CardPadding = scalePx(out.Spacing.CardPadding, m.SpacingMultiplier)
		out.Spacing.CardGap = scalePx(out.Spacing.CardGap, m.SpacingMultiplier)
	}

	if delta, ok := parsePx(m.RadiusDelta); ok && delta != 0 {
		out.Components.RadiusSmall = shiftPx(out.Components.RadiusSmall, delta)
		out.Components.RadiusMedium = shiftPx(out.Components.RadiusMedium, delta)
		out.Components.RadiusLarge = shiftPx(out.Components.RadiusLarge, delta)
	}

	applyTemperature(&out, m.Temperature)
	return out
}

// applyTemperature is the hook for warm/cool color shifts. Colors are left
// untouched until a shift model (RGB rotation or HSL hue) is chosen.
func applyTemperature(_ *TokenSet, _ Temperature) {}

func clampInt(v, minV, maxV int) int {
	return max(minV, min(maxV, v))
}

// parsePx parses "12px", "+4px", "-2px" or a bare number.
func parsePx(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "px")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// scalePx multiplies a px value and rounds to whole pixels. Values in other
// units are left alone.
func scalePx(s string, factor float64) string {
	if !strings.HasSuffix(strings.TrimSpace(s), "px") {
		return s
	}
	v, ok := parsePx(s)
	if !ok {
		return s
	}
	return formatPx(math.Round(v * factor))
}

// shiftPx adds delta to a px value, never going below zero.
func shiftPx(s string, delta float64) string {
	if !strings.HasSuffix(strings.TrimSpace(s), "px") {
		return s
	}
	v, ok := parsePx(s)
	if !ok {
		return s
	}
	return formatPx(math.Max(0, v+delta))
}
