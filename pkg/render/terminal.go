package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/tokenforge/pkg/sanitize"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Terminal renders a token set as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

type row struct {
	key, value string
}

// Render formats ts as a header followed by one section per token group.
func (t *Terminal) Render(ts tokens.TokenSet) string {
	sections := []string{
		t.renderHeader(ts),
		t.renderColors(ts.Colors),
		t.renderRows("Typography", []row{
			{"heading font", ts.Typography.HeadingFont},
			{"heading weight", strconv.Itoa(ts.Typography.HeadingWeight)},
			{"body font", ts.Typography.BodyFont},
			{"body weight", strconv.Itoa(ts.Typography.BodyWeight)},
			{"base size", ts.Typography.BaseSize},
			{"line height", ts.Typography.HeadingLineHeight + " / " + ts.Typography.BodyLineHeight},
			{"letter spacing", ts.Typography.HeadingLetterSpacing + " / " + ts.Typography.BodyLetterSpacing},
		}),
		t.renderRows("Spacing", []row{
			{"section", ts.Spacing.SectionPaddingY + " × " + ts.Spacing.SectionPaddingX},
			{"container", ts.Spacing.ContainerMaxWidth},
			{"card padding", ts.Spacing.CardPadding},
			{"card gap", ts.Spacing.CardGap},
			{"element gap", ts.Spacing.ElementGap},
			{"stack gap", ts.Spacing.StackGap},
		}),
		t.renderRows("Components", []row{
			{"radius", strings.Join([]string{
				ts.Components.RadiusSmall, ts.Components.RadiusMedium,
				ts.Components.RadiusLarge, ts.Components.RadiusFull,
			}, " ")},
			{"shadow sm", ts.Components.ShadowSmall},
			{"shadow md", ts.Components.ShadowMedium},
			{"shadow lg", ts.Components.ShadowLarge},
			{"border", ts.Components.BorderWidth},
			{"icons", fmt.Sprintf("%s (stroke %s)", ts.Components.IconStyle, ts.Components.IconStrokeWidth)},
			{"buttons", string(ts.Components.ButtonStyle)},
			{"cards", string(ts.Components.CardStyle)},
		}),
		t.renderRows("Imagery", []row{
			{"style", string(ts.Imagery.Style)},
			{"treatment", string(ts.Imagery.Treatment)},
			{"overlay", fmt.Sprintf("%s @ %g", ts.Imagery.OverlayColor, ts.Imagery.OverlayOpacity)},
			{"gradient", orDefault(ts.Imagery.OverlayGradient, "none")},
		}),
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderHeader(ts tokens.TokenSet) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Heading.Render(ts.Name))
	sb.WriteString(t.theme.Muted.Render("  [" + ts.ID + "]"))
	sb.WriteString("\n")
	if ts.Description != "" {
		sb.WriteString(t.theme.Muted.Render(truncateWidth(ts.Description, t.width)))
		sb.WriteString("\n")
	}
	sum := ts.Summary()
	sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("%s typography %s %s density %s %s imagery",
		sum.TypographyStyle, t.theme.Icons.Bullet,
		sum.SpacingDensity, t.theme.Icons.Bullet,
		sum.ImageryStyle)))
	sb.WriteString("\n")
	return sb.String()
}

func (t *Terminal) renderColors(p tokens.ColorPalette) string {
	colors := p.Colors()
	maxName := 0
	for _, c := range colors {
		maxName = max(maxName, runewidth.StringWidth(c.Name))
	}

	var sb strings.Builder
	sb.WriteString(t.sectionTitle("Colors"))
	for _, c := range colors {
		sb.WriteString("  ")
		sb.WriteString(t.swatch(c.Value))
		sb.WriteString(t.theme.Key.Render(padRight(c.Name, maxName)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Value.Render(c.Value))
		sb.WriteString("\n")
	}
	return sb.String()
}

// swatch paints a color sample. Values that fail the color grammar are
// never handed to the terminal.
func (t *Terminal) swatch(color string) string {
	if _, ok := sanitize.Check(color, sanitize.Color); !ok {
		return t.theme.Warning.Render(padRight(t.theme.Icons.Invalid, runewidth.StringWidth(t.theme.Icons.Swatch))) + " "
	}
	if !t.theme.Swatches || t.theme.Icons.Swatch == "" {
		return ""
	}
	r, g, b, ok := tokens.ParseHex(color)
	if !ok {
		return strings.Repeat(" ", runewidth.StringWidth(t.theme.Icons.Swatch)) + " "
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(tokens.ToHex(r, g, b))).Render(t.theme.Icons.Swatch) + " "
}

func (t *Terminal) renderRows(title string, rows []row) string {
	maxKey := 0
	for _, r := range rows {
		maxKey = max(maxKey, runewidth.StringWidth(r.key))
	}
	valueWidth := max(t.width-maxKey-4, 10)

	var sb strings.Builder
	sb.WriteString(t.sectionTitle(title))
	for _, r := range rows {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Key.Render(padRight(r.key, maxKey)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Value.Render(truncateWidth(r.value, valueWidth)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) sectionTitle(title string) string {
	return t.theme.Heading.Render(t.theme.Icons.Section+" "+title) + "\n"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func truncateWidth(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
