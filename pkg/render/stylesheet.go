package render

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/tokenforge/pkg/sanitize"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Selector is the scope every custom property is declared in.
const Selector = ":root"

// Declaration is one custom property before sanitization.
type Declaration struct {
	Name  string
	Value string
	Class sanitize.Class
}

// Declarations lists one custom property per token field, in output order.
// Values are raw; Stylesheet sanitizes them.
func Declarations(ts tokens.TokenSet) []Declaration {
	c, ty, sp, co, im := ts.Colors, ts.Typography, ts.Spacing, ts.Components, ts.Imagery

	decls := make([]Declaration, 0, 64)
	for _, nc := range c.Colors() {
		decls = append(decls, Declaration{"--color-" + nc.Name, nc.Value, sanitize.Color})
	}

	decls = append(decls,
		Declaration{"--font-heading", ty.HeadingFont, sanitize.Font},
		Declaration{"--font-body", ty.BodyFont, sanitize.Font},
		Declaration{"--font-weight-heading", strconv.Itoa(ty.HeadingWeight), sanitize.Number},
		Declaration{"--font-weight-body", strconv.Itoa(ty.BodyWeight), sanitize.Number},
		Declaration{"--font-size-base", ty.BaseSize, sanitize.Size},
		Declaration{"--line-height-heading", ty.HeadingLineHeight, sanitize.Number},
		Declaration{"--line-height-body", ty.BodyLineHeight, sanitize.Number},
		Declaration{"--letter-spacing-heading", ty.HeadingLetterSpacing, sanitize.Size},
		Declaration{"--letter-spacing-body", ty.BodyLetterSpacing, sanitize.Size},
		Declaration{"--typography-style", string(ty.Style), sanitize.Font},

		Declaration{"--spacing-section-y", sp.SectionPaddingY, sanitize.Size},
		Declaration{"--spacing-section-x", sp.SectionPaddingX, sanitize.Size},
		Declaration{"--container-max-width", sp.ContainerMaxWidth, sanitize.Size},
		Declaration{"--spacing-card", sp.CardPadding, sanitize.Size},
		Declaration{"--spacing-card-gap", sp.CardGap, sanitize.Size},
		Declaration{"--spacing-element-gap", sp.ElementGap, sanitize.Size},
		Declaration{"--spacing-stack-gap", sp.StackGap, sanitize.Size},
		Declaration{"--spacing-density", string(sp.Density), sanitize.Font},

		Declaration{"--radius-sm", co.RadiusSmall, sanitize.Size},
		Declaration{"--radius-md", co.RadiusMedium, sanitize.Size},
		Declaration{"--radius-lg", co.RadiusLarge, sanitize.Size},
		Declaration{"--radius-full", co.RadiusFull, sanitize.Size},
		Declaration{"--shadow-sm", co.ShadowSmall, sanitize.Shadow},
		Declaration{"--shadow-md", co.ShadowMedium, sanitize.Shadow},
		Declaration{"--shadow-lg", co.ShadowLarge, sanitize.Shadow},
		Declaration{"--border-width", co.BorderWidth, sanitize.Size},
		Declaration{"--icon-style", string(co.IconStyle), sanitize.Font},
		Declaration{"--icon-stroke-width", co.IconStrokeWidth, sanitize.Number},
		Declaration{"--button-style", string(co.ButtonStyle), sanitize.Font},
		Declaration{"--card-style", string(co.CardStyle), sanitize.Font},

		Declaration{"--imagery-style", string(im.Style), sanitize.Font},
		Declaration{"--overlay-opacity", strconv.FormatFloat(im.OverlayOpacity, 'f', -1, 64), sanitize.Number},
		Declaration{"--overlay-color", im.OverlayColor, sanitize.Color},
		Declaration{"--overlay-gradient", im.OverlayGradient, sanitize.Gradient},
		Declaration{"--imagery-treatment", string(im.Treatment), sanitize.Font},
	)
	return decls
}

// Stylesheet renders a token set as a block of custom properties. Every
// value is re-sanitized here, even though brand colors were already checked
// on the way in.
type Stylesheet struct {
	sanitizer *sanitize.Sanitizer
}

// NewStylesheet creates a stylesheet renderer that reports substituted
// values to logger.
func NewStylesheet(logger zerolog.Logger) *Stylesheet {
	return &Stylesheet{sanitizer: sanitize.New(logger)}
}

// Render formats ts as a `:root { ... }` block.
func (s *Stylesheet) Render(ts tokens.TokenSet) string {
	var sb strings.Builder
	sb.WriteString(Selector + " {\n")
	for _, d := range Declarations(ts) {
		sb.WriteString("  ")
		sb.WriteString(d.Name)
		sb.WriteString(": ")
		sb.WriteString(s.sanitizer.Sanitize(d.Value, d.Class))
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}
