package tokens

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/dkoosis/tokenforge/pkg/sanitize"
)

// BrandOverrides carries brand colors supplied by the caller. Explicit colors
// win over extracted ones; ExtractedColors is ordered (primary first, then
// secondary), typically scraped from a website or logo.
type BrandOverrides struct {
	PrimaryColor    string   `json:"primaryColor,omitempty" yaml:"primary_color,omitempty"`
	SecondaryColor  string   `json:"secondaryColor,omitempty" yaml:"secondary_color,omitempty"`
	LogoURL         string   `json:"logoUrl,omitempty" yaml:"logo_url,omitempty"`
	ExtractedColors []string `json:"extractedColors,omitempty" yaml:"extracted_colors,omitempty"`
}

// HasColors reports whether the overrides name any color at all.
func (o BrandOverrides) HasColors() bool {
	return strings.TrimSpace(o.PrimaryColor) != "" ||
		strings.TrimSpace(o.SecondaryColor) != "" ||
		lo.SomeBy(o.ExtractedColors, func(c string) bool { return strings.TrimSpace(c) != "" })
}

// Merge returns o with every non-empty field of other applied on top.
// ExtractedColors is replaced wholesale when other has any.
func (o BrandOverrides) Merge(other BrandOverrides) BrandOverrides {
	out := o
	out.ExtractedColors = append([]string(nil), o.ExtractedColors...)
	if other.PrimaryColor != "" {
		out.PrimaryColor = other.PrimaryColor
	}
	if other.SecondaryColor != "" {
		out.SecondaryColor = other.SecondaryColor
	}
	if other.LogoURL != "" {
		out.LogoURL = other.LogoURL
	}
	if len(other.ExtractedColors) > 0 {
		out.ExtractedColors = append([]string(nil), other.ExtractedColors...)
	}
	return out
}

// colorSlot is one brand color position and where its candidate came from.
type colorSlot struct {
	name      string
	explicit  string
	extracted string
}

// pick returns the first candidate that passes the color grammar and
// converts to #rrggbb, explicit before extracted. base is the value to
// store: the candidate itself when it is already #rgb or #rrggbb, otherwise
// its converted hex. Rejected candidates are logged and skipped.
func (s colorSlot) pick(logger zerolog.Logger) (base, hex string, ok bool) {
	var converted bool
	for _, cand := range []struct{ source, value string }{
		{"explicit", s.explicit},
		{"extracted", s.extracted},
	} {
		if strings.TrimSpace(cand.value) == "" {
			continue
		}
		v, safe := sanitize.Check(cand.value, sanitize.Color)
		if !safe {
			logger.Warn().
				Str("slot", s.name).
				Str("source", cand.source).
				Str("value", cand.value).
				Msg("ignoring unsafe brand color")
			continue
		}
		hex, converted = NormalizeColor(v)
		if !converted {
			logger.Warn().
				Str("slot", s.name).
				Str("source", cand.source).
				Str("value", v).
				Msg("ignoring brand color with no hex form")
			continue
		}
		if _, _, _, plain := ParseHex(v); plain {
			return v, hex, true
		}
		logger.Debug().Str("slot", s.name).Str("value", v).Str("hex", hex).Msg("converted brand color")
		return hex, hex, true
	}
	return "", "", false
}

func applyOverrides(ts TokenSet, o BrandOverrides, logger zerolog.Logger) TokenSet {
	out := ts.Clone()
	extracted := func(i int) string {
		if i < len(o.ExtractedColors) {
			return o.ExtractedColors[i]
		}
		return ""
	}

	primary := colorSlot{name: "primary", explicit: o.PrimaryColor, extracted: extracted(0)}
	if c, hex, ok := primary.pick(logger); ok {
		out.Colors.Primary = c
		out.Colors.PrimaryHover = Darken(hex, HoverDarkenPercent)
		out.Colors.PrimaryMuted = WithAlpha(hex)
	}

	secondary := colorSlot{name: "secondary", explicit: o.SecondaryColor, extracted: extracted(1)}
	if c, hex, ok := secondary.pick(logger); ok {
		out.Colors.Secondary = c
		out.Colors.SecondaryHover = Darken(hex, HoverDarkenPercent)
		out.Colors.SecondaryMuted = WithAlpha(hex)
	}
	return out
}
