package tokens

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
)

// NormalizeColor converts a hex, rgb(), rgba(), hsl(), hsla() or named color
// to opaque #rrggbb. Alpha is dropped. ok is false for forms it cannot
// convert, such as `transparent` or an unknown name.
func NormalizeColor(color string) (hex string, ok bool) {
	c := strings.ToLower(strings.TrimSpace(color))
	switch {
	case strings.HasPrefix(c, "#"):
		return normalizeHex(c[1:])
	case strings.HasPrefix(c, "rgb"):
		return normalizeRGB(c)
	case strings.HasPrefix(c, "hsl"):
		return normalizeHSL(c)
	}
	hex, ok = namedColors[c]
	return hex, ok
}

// normalizeHex accepts 3, 4, 6 or 8 digits and drops any alpha digits.
func normalizeHex(digits string) (string, bool) {
	switch len(digits) {
	case 3, 4:
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	case 6, 8:
		digits = digits[:6]
	default:
		return "", false
	}
	col, err := colorful.Hex("#" + digits)
	if err != nil {
		return "", false
	}
	return col.Hex(), true
}

func normalizeRGB(c string) (string, bool) {
	args, ok := colorArgs(c, "rgba", "rgb")
	if !ok {
		return "", false
	}
	var ch [3]float64
	for i := range ch {
		v, ok := parseChannel(args[i])
		if !ok {
			return "", false
		}
		ch[i] = v
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}.Clamped().Hex(), true
}

func normalizeHSL(c string) (string, bool) {
	args, ok := colorArgs(c, "hsla", "hsl")
	if !ok {
		return "", false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return "", false
	}
	s, okS := parsePercent(args[1])
	l, okL := parsePercent(args[2])
	if !okS || !okL {
		return "", false
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, s, l).Clamped().Hex(), true
}

// colorArgs returns the arguments of a color function, split on commas,
// whitespace and the alpha slash. At least three are required.
func colorArgs(c string, names ...string) ([]string, bool) {
	for _, name := range names {
		if rest, found := strings.CutPrefix(c, name+"("); found {
			inner, closed := strings.CutSuffix(rest, ")")
			if !closed {
				return nil, false
			}
			args := strings.FieldsFunc(inner, func(r rune) bool {
				return r == ',' || r == '/' || unicode.IsSpace(r)
			})
			return args, len(args) >= 3
		}
	}
	return nil, false
}

// parseChannel reads an rgb() channel, either 0-255 or a percentage, as 0-1.
func parseChannel(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v / 255, true
}

func parsePercent(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, false
	}
	return v / 100, true
}

// namedColors covers the CSS basic names plus the extended names brand
// palettes commonly use.
var namedColors = map[string]string{
	"black":         "#000000",
	"white":         "#ffffff",
	"red":           "#ff0000",
	"green":         "#008000",
	"blue":          "#0000ff",
	"yellow":        "#ffff00",
	"orange":        "#ffa500",
	"purple":        "#800080",
	"gray":          "#808080",
	"grey":          "#808080",
	"silver":        "#c0c0c0",
	"maroon":        "#800000",
	"olive":         "#808000",
	"lime":          "#00ff00",
	"aqua":          "#00ffff",
	"cyan":          "#00ffff",
	"teal":          "#008080",
	"navy":          "#000080",
	"fuchsia":       "#ff00ff",
	"magenta":       "#ff00ff",
	"pink":          "#ffc0cb",
	"brown":         "#a52a2a",
	"gold":          "#ffd700",
	"indigo":        "#4b0082",
	"violet":        "#ee82ee",
	"crimson":       "#dc143c",
	"coral":         "#ff7f50",
	"salmon":        "#fa8072",
	"tomato":        "#ff6347",
	"turquoise":     "#40e0d0",
	"beige":         "#f5f5dc",
	"ivory":         "#fffff0",
	"khaki":         "#f0e68c",
	"lavender":      "#e6e6fa",
	"tan":           "#d2b48c",
	"chocolate":     "#d2691e",
	"orchid":        "#da70d6",
	"plum":          "#dda0dd",
	"slategray":     "#708090",
	"slategrey":     "#708090",
	"darkblue":      "#00008b",
	"darkgreen":     "#006400",
	"darkred":       "#8b0000",
	"darkgray":      "#a9a9a9",
	"darkgrey":      "#a9a9a9",
	"lightgray":     "#d3d3d3",
	"lightgrey":     "#d3d3d3",
	"skyblue":       "#87ceeb",
	"steelblue":     "#4682b4",
	"royalblue":     "#4169e1",
	"forestgreen":   "#228b22",
	"seagreen":      "#2e8b57",
	"firebrick":     "#b22222",
	"goldenrod":     "#daa520",
	"midnightblue":  "#191970",
	"rebeccapurple": "#663399",
}
