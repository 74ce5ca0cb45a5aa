// Package tokens generates complete, internally consistent design token sets
// for a brand from an industry baseline, brand color overrides and a
// messaging tone.
//
// Generation is a fixed three-stage pipeline:
//
//	baseline (by industry) -> brand overrides -> tone modifier
//
// Every stage works on a copy of its input. TokenSet holds only value
// fields, so a plain assignment is a deep copy and concurrent callers never
// share mutable state.
package tokens

import (
	"errors"
	"fmt"

	"github.com/dkoosis/tokenforge/pkg/sanitize"
)

// TypographyStyle is a qualitative tag used by downstream component
// selection. It never feeds a token value.
type TypographyStyle string

const (
	TypographyTechnical TypographyStyle = "technical"
	TypographyRefined   TypographyStyle = "refined"
	TypographyBold      TypographyStyle = "bold"
	TypographyFriendly  TypographyStyle = "friendly"
	TypographyElegant   TypographyStyle = "elegant"
	TypographyClassic   TypographyStyle = "classic"
	TypographyModern    TypographyStyle = "modern"
)

// Density describes overall spacing rhythm.
type Density string

const (
	DensitySpacious    Density = "spacious"
	DensityComfortable Density = "comfortable"
	DensityCompact     Density = "compact"
)

// IconStyle selects the icon family.
type IconStyle string

const (
	IconOutline IconStyle = "outline"
	IconSolid   IconStyle = "solid"
	IconDuotone IconStyle = "duotone"
)

// ButtonStyle selects the button treatment.
type ButtonStyle string

const (
	ButtonSolid   ButtonStyle = "solid"
	ButtonOutline ButtonStyle = "outline"
	ButtonPill    ButtonStyle = "pill"
	ButtonSharp   ButtonStyle = "sharp"
)

// CardStyle selects the card treatment.
type CardStyle string

const (
	CardElevated CardStyle = "elevated"
	CardBordered CardStyle = "bordered"
	CardFlat     CardStyle = "flat"
	CardGlass    CardStyle = "glass"
)

// ImageryStyle describes the preferred kind of imagery.
type ImageryStyle string

const (
	ImageryPhotography  ImageryStyle = "photography"
	ImageryIllustration ImageryStyle = "illustration"
	ImageryAbstract     ImageryStyle = "abstract"
	ImageryDocumentary  ImageryStyle = "documentary"
	ImageryLifestyle    ImageryStyle = "lifestyle"
	ImageryProduct      ImageryStyle = "product"
)

// Treatment is the filter applied to imagery.
type Treatment string

const (
	TreatmentNone         Treatment = "none"
	TreatmentDuotone      Treatment = "duotone"
	TreatmentGrayscale    Treatment = "grayscale"
	TreatmentWarm         Treatment = "warm"
	TreatmentCool         Treatment = "cool"
	TreatmentHighContrast Treatment = "high-contrast"
)

// ColorPalette holds every color token. Each field is a stylesheet color.
type ColorPalette struct {
	Primary        string `json:"primary" yaml:"primary"`
	PrimaryHover   string `json:"primaryHover" yaml:"primary_hover"`
	PrimaryMuted   string `json:"primaryMuted" yaml:"primary_muted"`
	Secondary      string `json:"secondary" yaml:"secondary"`
	SecondaryHover string `json:"secondaryHover" yaml:"secondary_hover"`
	SecondaryMuted string `json:"secondaryMuted" yaml:"secondary_muted"`

	Background    string `json:"background" yaml:"background"`
	BackgroundAlt string `json:"backgroundAlt" yaml:"background_alt"`
	Surface       string `json:"surface" yaml:"surface"`
	SurfaceHover  string `json:"surfaceHover" yaml:"surface_hover"`

	TextPrimary   string `json:"textPrimary" yaml:"text_primary"`
	TextSecondary string `json:"textSecondary" yaml:"text_secondary"`
	TextMuted     string `json:"textMuted" yaml:"text_muted"`
	TextInverse   string `json:"textInverse" yaml:"text_inverse"`

	Success string `json:"success" yaml:"success"`
	Warning string `json:"warning" yaml:"warning"`
	Error   string `json:"error" yaml:"error"`
	Info    string `json:"info" yaml:"info"`

	Border       string `json:"border" yaml:"border"`
	BorderStrong string `json:"borderStrong" yaml:"border_strong"`
}

// Typography holds font tokens.
type Typography struct {
	HeadingFont          string          `json:"headingFont" yaml:"heading_font"`
	BodyFont             string          `json:"bodyFont" yaml:"body_font"`
	HeadingWeight        int             `json:"headingWeight" yaml:"heading_weight"`
	BodyWeight           int             `json:"bodyWeight" yaml:"body_weight"`
	BaseSize             string          `json:"baseSize" yaml:"base_size"`
	HeadingLineHeight    string          `json:"headingLineHeight" yaml:"heading_line_height"`
	BodyLineHeight       string          `json:"bodyLineHeight" yaml:"body_line_height"`
	HeadingLetterSpacing string          `json:"headingLetterSpacing" yaml:"heading_letter_spacing"`
	BodyLetterSpacing    string          `json:"bodyLetterSpacing" yaml:"body_letter_spacing"`
	Style                TypographyStyle `json:"style" yaml:"style"`
}

// Spacing holds layout rhythm tokens.
type Spacing struct {
	SectionPaddingY   string  `json:"sectionPaddingY" yaml:"section_padding_y"`
	SectionPaddingX   string  `json:"sectionPaddingX" yaml:"section_padding_x"`
	ContainerMaxWidth string  `json:"containerMaxWidth" yaml:"container_max_width"`
	CardPadding       string  `json:"cardPadding" yaml:"card_padding"`
	CardGap           string  `json:"cardGap" yaml:"card_gap"`
	ElementGap        string  `json:"elementGap" yaml:"element_gap"`
	StackGap          string  `json:"stackGap" yaml:"stack_gap"`
	Density           Density `json:"density" yaml:"density"`
}

// Components holds component styling tokens.
type Components struct {
	RadiusSmall     string      `json:"radiusSmall" yaml:"radius_small"`
	RadiusMedium    string      `json:"radiusMedium" yaml:"radius_medium"`
	RadiusLarge     string      `json:"radiusLarge" yaml:"radius_large"`
	RadiusFull      string      `json:"radiusFull" yaml:"radius_full"`
	ShadowSmall     string      `json:"shadowSmall" yaml:"shadow_small"`
	ShadowMedium    string      `json:"shadowMedium" yaml:"shadow_medium"`
	ShadowLarge     string      `json:"shadowLarge" yaml:"shadow_large"`
	BorderWidth     string      `json:"borderWidth" yaml:"border_width"`
	IconStyle       IconStyle   `json:"iconStyle" yaml:"icon_style"`
	IconStrokeWidth string      `json:"iconStrokeWidth" yaml:"icon_stroke_width"`
	ButtonStyle     ButtonStyle `json:"buttonStyle" yaml:"button_style"`
	CardStyle       CardStyle   `json:"cardStyle" yaml:"card_style"`
}

// Imagery holds image treatment tokens. OverlayGradient is empty when the
// imagery uses a flat overlay.
type Imagery struct {
	Style           ImageryStyle `json:"style" yaml:"style"`
	OverlayOpacity  float64      `json:"overlayOpacity" yaml:"overlay_opacity"`
	OverlayColor    string       `json:"overlayColor" yaml:"overlay_color"`
	OverlayGradient string       `json:"overlayGradient,omitempty" yaml:"overlay_gradient,omitempty"`
	Treatment       Treatment    `json:"treatment" yaml:"treatment"`
}

// TokenSet is the complete bundle produced by the pipeline. The identity
// fields come from the baseline and are never changed by later stages.
type TokenSet struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	Colors     ColorPalette `json:"colors" yaml:"colors"`
	Typography Typography   `json:"typography" yaml:"typography"`
	Spacing    Spacing      `json:"spacing" yaml:"spacing"`
	Components Components   `json:"components" yaml:"components"`
	Imagery    Imagery      `json:"imagery" yaml:"imagery"`
}

// Clone returns an independent copy of ts.
func (ts TokenSet) Clone() TokenSet {
	return ts
}

// Summary is the display/debug metadata for a token set.
type Summary struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Description     string          `json:"description" yaml:"description"`
	TypographyStyle TypographyStyle `json:"typographyStyle" yaml:"typography_style"`
	SpacingDensity  Density         `json:"spacingDensity" yaml:"spacing_density"`
	IconStyle       IconStyle       `json:"iconStyle" yaml:"icon_style"`
	CardStyle       CardStyle       `json:"cardStyle" yaml:"card_style"`
	ImageryStyle    ImageryStyle    `json:"imageryStyle" yaml:"imagery_style"`
}

// Summary returns the metadata record for ts.
func (ts TokenSet) Summary() Summary {
	return Summary{
		ID:              ts.ID,
		Name:            ts.Name,
		Description:     ts.Description,
		TypographyStyle: ts.Typography.Style,
		SpacingDensity:  ts.Spacing.Density,
		IconStyle:       ts.Components.IconStyle,
		CardStyle:       ts.Components.CardStyle,
		ImageryStyle:    ts.Imagery.Style,
	}
}

// NamedColor pairs a palette field with its value.
type NamedColor struct {
	Name  string
	Value string
}

// Colors returns every palette entry in declaration order.
func (p ColorPalette) Colors() []NamedColor {
	return []NamedColor{
		{"primary", p.Primary},
		{"primary-hover", p.PrimaryHover},
		{"primary-muted", p.PrimaryMuted},
		{"secondary", p.Secondary},
		{"secondary-hover", p.SecondaryHover},
		{"secondary-muted", p.SecondaryMuted},
		{"background", p.Background},
		{"background-alt", p.BackgroundAlt},
		{"surface", p.Surface},
		{"surface-hover", p.SurfaceHover},
		{"text-primary", p.TextPrimary},
		{"text-secondary", p.TextSecondary},
		{"text-muted", p.TextMuted},
		{"text-inverse", p.TextInverse},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"border", p.Border},
		{"border-strong", p.BorderStrong},
	}
}

// Validate reports every color token that fails the stylesheet color
// grammar. The pipeline itself never fails; this exists for tooling.
func (ts TokenSet) Validate() error {
	var errs []error
	for _, c := range ts.Colors.Colors() {
		if _, ok := sanitize.Check(c.Value, sanitize.Color); !ok {
			errs = append(errs, fmt.Errorf("colors.%s: invalid color %q", c.Name, c.Value))
		}
	}
	if _, ok := sanitize.Check(ts.Imagery.OverlayColor, sanitize.Color); !ok {
		errs = append(errs, fmt.Errorf("imagery.overlay-color: invalid color %q", ts.Imagery.OverlayColor))
	}
	if ts.Imagery.OverlayOpacity < 0 || ts.Imagery.OverlayOpacity > 1 {
		errs = append(errs, fmt.Errorf("imagery.overlay-opacity: %v outside [0,1]", ts.Imagery.OverlayOpacity))
	}
	return errors.Join(errs...)
}
