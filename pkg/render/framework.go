package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// ColorScale is a framework color with optional state variants.
type ColorScale struct {
	Default string `json:"DEFAULT"`
	Hover   string `json:"hover,omitempty"`
	Muted   string `json:"muted,omitempty"`
	Alt     string `json:"alt,omitempty"`
	Strong  string `json:"strong,omitempty"`
}

// TextColors groups the text palette.
type TextColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Muted     string `json:"muted"`
	Inverse   string `json:"inverse"`
}

// FrameworkColors is the colors section of a framework config.
type FrameworkColors struct {
	Primary    ColorScale `json:"primary"`
	Secondary  ColorScale `json:"secondary"`
	Background ColorScale `json:"background"`
	Surface    ColorScale `json:"surface"`
	Text       TextColors `json:"text"`
	Success    string     `json:"success"`
	Warning    string     `json:"warning"`
	Error      string     `json:"error"`
	Info       string     `json:"info"`
	Border     ColorScale `json:"border"`
}

// FrameworkConfig is the theme extension handed to a utility-class
// framework's build step. Values are not sanitized: the consumer is trusted
// and never interpolates them into markup.
type FrameworkConfig struct {
	Colors       FrameworkColors     `json:"colors"`
	FontFamily   map[string][]string `json:"fontFamily"`
	FontWeight   map[string]string   `json:"fontWeight"`
	FontSize     map[string]string   `json:"fontSize"`
	BorderRadius map[string]string   `json:"borderRadius"`
	BoxShadow    map[string]string   `json:"boxShadow"`
	Spacing      map[string]string   `json:"spacing"`
	MaxWidth     map[string]string   `json:"maxWidth"`
}

// FrameworkConfigFor maps ts onto the framework config shape.
func FrameworkConfigFor(ts tokens.TokenSet) FrameworkConfig {
	c, ty, sp, co := ts.Colors, ts.Typography, ts.Spacing, ts.Components
	return FrameworkConfig{
		Colors: FrameworkColors{
			Primary:    ColorScale{Default: c.Primary, Hover: c.PrimaryHover, Muted: c.PrimaryMuted},
			Secondary:  ColorScale{Default: c.Secondary, Hover: c.SecondaryHover, Muted: c.SecondaryMuted},
			Background: ColorScale{Default: c.Background, Alt: c.BackgroundAlt},
			Surface:    ColorScale{Default: c.Surface, Hover: c.SurfaceHover},
			Text: TextColors{
				Primary:   c.TextPrimary,
				Secondary: c.TextSecondary,
				Muted:     c.TextMuted,
				Inverse:   c.TextInverse,
			},
			Success: c.Success,
			Warning: c.Warning,
			Error:   c.Error,
			Info:    c.Info,
			Border:  ColorScale{Default: c.Border, Strong: c.BorderStrong},
		},
		FontFamily: map[string][]string{
			"heading": fontStack(ty.HeadingFont),
			"body":    fontStack(ty.BodyFont),
		},
		FontWeight: map[string]string{
			"heading": strconv.Itoa(ty.HeadingWeight),
			"body":    strconv.Itoa(ty.BodyWeight),
		},
		FontSize: map[string]string{
			"base": ty.BaseSize,
		},
		BorderRadius: map[string]string{
			"sm":   co.RadiusSmall,
			"md":   co.RadiusMedium,
			"lg":   co.RadiusLarge,
			"full": co.RadiusFull,
		},
		BoxShadow: map[string]string{
			"sm": co.ShadowSmall,
			"md": co.ShadowMedium,
			"lg": co.ShadowLarge,
		},
		Spacing: map[string]string{
			"section-y": sp.SectionPaddingY,
			"section-x": sp.SectionPaddingX,
			"card":      sp.CardPadding,
			"card-gap":  sp.CardGap,
			"element":   sp.ElementGap,
			"stack":     sp.StackGap,
		},
		MaxWidth: map[string]string{
			"container": sp.ContainerMaxWidth,
		},
	}
}

// fontStack splits a font-family list into unquoted family names.
func fontStack(families string) []string {
	parts := lo.Map(strings.Split(families, ","), func(f string, _ int) string {
		return strings.Trim(strings.TrimSpace(f), `'"`)
	})
	return lo.Compact(parts)
}

// Framework renders the framework config as indented JSON.
type Framework struct{}

// NewFramework creates a framework config renderer.
func NewFramework() *Framework {
	return &Framework{}
}

// Render formats the framework config for ts.
func (f *Framework) Render(ts tokens.TokenSet) string {
	return marshalIndent(FrameworkConfigFor(ts))
}

func marshalIndent(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
