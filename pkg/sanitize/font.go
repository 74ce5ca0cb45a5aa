package sanitize

import "strings"

// isFont accepts a comma-separated font stack drawn from the font character
// set. A quoted family must open and close with the same quote inside its
// own list entry, so no string literal can run past the value.
func isFont(v string) bool {
	if !fontPattern.MatchString(v) {
		return false
	}
	for _, family := range strings.Split(v, ",") {
		if !isFontFamily(strings.TrimSpace(family)) {
			return false
		}
	}
	return true
}

func isFontFamily(f string) bool {
	if f == "" {
		return false
	}
	if !strings.ContainsAny(f, `'"`) {
		return true
	}
	q := f[0]
	if (q != '\'' && q != '"') || len(f) < 3 || f[len(f)-1] != q {
		return false
	}
	return !strings.ContainsAny(f[1:len(f)-1], `'"`)
}
