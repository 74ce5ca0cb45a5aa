package sanitize

import (
	"strings"
	"unicode"
)

// isShadow accepts `none` or a comma-separated list of box-shadow layers.
// Each layer holds an optional `inset`, two to four lengths and at most one
// color.
func isShadow(v string) bool {
	if strings.EqualFold(v, "none") {
		return true
	}
	layers, ok := splitTopLevel(v, func(r rune) bool { return r == ',' }, false)
	if !ok || len(layers) == 0 {
		return false
	}
	for _, layer := range layers {
		if !isShadowLayer(layer) {
			return false
		}
	}
	return true
}

func isShadowLayer(layer string) bool {
	tokens, ok := splitTopLevel(layer, unicode.IsSpace, true)
	if !ok {
		return false
	}

	var lengths, colors, insets int
	for _, tok := range tokens {
		switch {
		case strings.EqualFold(tok, "inset"):
			insets++
		case shadowLenPattern.MatchString(tok):
			lengths++
		case IsColor(tok):
			colors++
		default:
			return false
		}
	}
	return lengths >= 2 && lengths <= 4 && colors <= 1 && insets <= 1
}

// splitTopLevel splits s at runes matching sep that sit outside parentheses.
// Empty fields are dropped when allowEmpty is set and rejected otherwise, as
// are unbalanced parentheses.
func splitTopLevel(s string, sep func(rune) bool, allowEmpty bool) ([]string, bool) {
	var (
		fields []string
		cur    strings.Builder
		depth  int
		empty  bool
	)
	flush := func() {
		if f := strings.TrimSpace(cur.String()); f != "" {
			fields = append(fields, f)
		} else {
			empty = true
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				return nil, false
			}
		case depth == 0 && sep(r):
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	if depth != 0 {
		return nil, false
	}
	flush()
	if empty && !allowEmpty {
		return nil, false
	}
	return fields, true
}
