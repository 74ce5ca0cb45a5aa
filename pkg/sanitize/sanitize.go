// Package sanitize classifies untrusted stylesheet values against a
// per-class allow-list before they are interpolated into generated CSS.
//
// Every value first passes a shared dangerous-pattern gate, then the
// grammar for its Class. A rejected value is replaced by the class default,
// so callers always receive something safe to write between `--name:` and `;`.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Class selects the grammar a value is checked against.
type Class string

const (
	Color    Class = "color"
	Size     Class = "size"
	Font     Class = "font"
	Number   Class = "number"
	Shadow   Class = "shadow"
	Gradient Class = "gradient"
)

// Classes lists every supported value class.
func Classes() []Class {
	return []Class{Color, Size, Font, Number, Shadow, Gradient}
}

// maxLoggedValue caps how much of a rejected value ends up in the log.
const maxLoggedValue = 64

// dangerousPatterns is evaluated before any class grammar.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[{}]`),
	regexp.MustCompile(`(?s);.*:`),
	regexp.MustCompile(`(?i)url\s*\(`),
	regexp.MustCompile(`(?i)expression\s*\(`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)@import`),
	regexp.MustCompile(`(?i)behavior\s*:`),
	regexp.MustCompile(`(?i)-moz-binding`),
	// Markup breakout and CSS escapes that could spell any of the above.
	regexp.MustCompile(`[<>\\]`),
}

var (
	hexColorPattern   = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	funcColorPattern  = regexp.MustCompile(`(?i)^(rgb|rgba|hsl|hsla)\([0-9a-z.,%/\s+-]+\)$`)
	namedColorPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
	sizePattern       = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em|%|vh|vw|vmin|vmax|ch|ex)?$`)
	numberPattern     = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em|%|s|ms)?$`)
	fontPattern       = regexp.MustCompile(`^[\w\s'",-]+$`)
	gradientPattern   = regexp.MustCompile(`(?i)^(linear|radial|conic)-gradient\([^)]+\)$`)
	shadowLenPattern  = regexp.MustCompile(`^-?\d*\.?\d+(px|rem|em)?$`)
)

// Default returns the value substituted for a rejected value of class c.
func Default(c Class) string {
	switch c {
	case Color:
		return "#000000"
	case Size, Number:
		return "0"
	case Font:
		return "sans-serif"
	case Gradient, Shadow:
		return "none"
	default:
		return ""
	}
}

// IsDangerous reports whether v trips the shared injection gate.
func IsDangerous(v string) bool {
	for _, p := range dangerousPatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return false
}

// Check classifies value without logging. It returns the trimmed value and
// true when accepted, or the class default and false when rejected.
func Check(value string, c Class) (string, bool) {
	v := strings.TrimSpace(value)
	if IsDangerous(v) {
		return Default(c), false
	}

	var ok bool
	switch c {
	case Color:
		ok = IsColor(v)
	case Size:
		ok = sizePattern.MatchString(v)
	case Number:
		ok = numberPattern.MatchString(v)
	case Font:
		ok = isFont(v)
	case Shadow:
		ok = isShadow(v)
	case Gradient:
		if v == "" {
			return Default(Gradient), true
		}
		ok = gradientPattern.MatchString(v)
	}
	if !ok {
		return Default(c), false
	}
	return v, true
}

// IsColor reports whether v matches the color grammar. The dangerous-pattern
// gate is not applied; use Check for untrusted input.
func IsColor(v string) bool {
	return hexColorPattern.MatchString(v) ||
		funcColorPattern.MatchString(v) ||
		namedColorPattern.MatchString(v)
}

// Sanitizer logs every rejection it substitutes.
type Sanitizer struct {
	logger zerolog.Logger
}

// New creates a Sanitizer that reports rejections to logger.
func New(logger zerolog.Logger) *Sanitizer {
	return &Sanitizer{logger: logger}
}

// Sanitize returns value if it is safe for class c, otherwise the class
// default. It never fails.
func (s *Sanitizer) Sanitize(value string, c Class) string {
	safe, ok := Check(value, c)
	if !ok {
		s.logger.Warn().
			Str("class", string(c)).
			Str("value", truncate(value)).
			Str("substitute", safe).
			Msg("rejected unsafe stylesheet value")
	}
	return safe
}

// SanitizeNumber formats n in its shortest decimal form and sanitizes it.
func (s *Sanitizer) SanitizeNumber(n float64, c Class) string {
	return s.Sanitize(strconv.FormatFloat(n, 'f', -1, 64), c)
}

// Sanitize checks value against class c, logging rejections to the global
// zerolog logger.
func Sanitize(value string, c Class) string {
	return New(log.Logger).Sanitize(value, c)
}

// SanitizeNumber is the numeric form of Sanitize.
func SanitizeNumber(n float64, c Class) string {
	return New(log.Logger).SanitizeNumber(n, c)
}

// truncate shortens v for logging without splitting a rune.
func truncate(v string) string {
	return runewidth.Truncate(v, maxLoggedValue, "…")
}
