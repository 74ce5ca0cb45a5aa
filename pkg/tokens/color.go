package tokens

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MutedAlpha is the alpha suffix appended to a hex color to form its muted
// variant (0x1a ≈ 10% opacity).
const MutedAlpha = "1a"

// HoverDarkenPercent is how much a brand color is darkened for its hover state.
const HoverDarkenPercent = 10

// ParseHex parses #rgb or #rrggbb. Other forms, including hex with alpha,
// report ok=false.
func ParseHex(color string) (r, g, b uint8, ok bool) {
	hex, ok := expandHex(color)
	if !ok {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// expandHex returns the six lower-case hex digits of a #rgb or #rrggbb color.
func expandHex(color string) (string, bool) {
	c := strings.TrimSpace(color)
	if !strings.HasPrefix(c, "#") {
		return "", false
	}
	c = strings.ToLower(c[1:])
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", false
		}
	}
	switch len(c) {
	case 3:
		return string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]}), true
	case 6:
		return c, true
	default:
		return "", false
	}
}

// ToHex encodes channels as a lower-case #rrggbb string.
func ToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Darken scales each channel of a hex color by (1 - percent/100), rounding to
// the nearest integer. Non-hex colors are returned unchanged.
//
// This is a naive per-channel scale, not a perceptual adjustment.
func Darken(color string, percent float64) string {
	r, g, b, ok := ParseHex(color)
	if !ok {
		return color
	}
	factor := 1 - percent/100
	return ToHex(scaleChannel(r, factor), scaleChannel(g, factor), scaleChannel(b, factor))
}

func scaleChannel(c uint8, factor float64) uint8 {
	v := math.Round(float64(c) * factor)
	return uint8(math.Max(0, math.Min(255, v)))
}

// WithAlpha returns the muted variant of a hex color: the normalized
// #rrggbb form with MutedAlpha appended. Non-hex colors are returned
// unchanged.
func WithAlpha(color string) string {
	hex, ok := expandHex(color)
	if !ok {
		return color
	}
	return "#" + hex + MutedAlpha
}
