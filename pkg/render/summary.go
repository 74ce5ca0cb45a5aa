package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Summary renders a token set as terse plain text: no ANSI codes, fixed
// field order, one fact per line.
type Summary struct{}

// NewSummary creates a plain-text summary renderer.
func NewSummary() *Summary {
	return &Summary{}
}

// Render formats the summary record and the headline tokens of ts.
func (s *Summary) Render(ts tokens.TokenSet) string {
	sum := ts.Summary()
	var sb strings.Builder

	fmt.Fprintf(&sb, "TOKENS: %s (%s)\n", sum.ID, sum.Name)
	if sum.Description != "" {
		sb.WriteString(sum.Description + "\n")
	}
	fmt.Fprintf(&sb, "STYLE: typography=%s density=%s icons=%s cards=%s imagery=%s\n",
		sum.TypographyStyle, sum.SpacingDensity, sum.IconStyle, sum.CardStyle, sum.ImageryStyle)
	fmt.Fprintf(&sb, "COLORS: primary=%s secondary=%s background=%s text=%s\n",
		ts.Colors.Primary, ts.Colors.Secondary, ts.Colors.Background, ts.Colors.TextPrimary)
	fmt.Fprintf(&sb, "TYPE: heading=%q/%d body=%q/%d base=%s\n",
		ts.Typography.HeadingFont, ts.Typography.HeadingWeight,
		ts.Typography.BodyFont, ts.Typography.BodyWeight, ts.Typography.BaseSize)
	fmt.Fprintf(&sb, "SPACE: section=%s card=%s gap=%s\n",
		ts.Spacing.SectionPaddingY, ts.Spacing.CardPadding, ts.Spacing.CardGap)
	fmt.Fprintf(&sb, "RADIUS: sm=%s md=%s lg=%s\n",
		ts.Components.RadiusSmall, ts.Components.RadiusMedium, ts.Components.RadiusLarge)
	return sb.String()
}
