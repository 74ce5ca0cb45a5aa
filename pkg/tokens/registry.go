package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// DefaultIndustry is the baseline used when nothing else matches.
const DefaultIndustry = "default"

// MatchKind records which lookup phase resolved an industry.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchFuzzy   MatchKind = "fuzzy"
	MatchDefault MatchKind = "default"
)

// Resolution describes how an industry label was mapped to a baseline.
type Resolution struct {
	Input      string    `json:"input"`
	Normalized string    `json:"normalized"`
	Key        string    `json:"key"`      // registered key that matched
	Baseline   string    `json:"baseline"` // canonical baseline ID
	Match      MatchKind `json:"match"`
}

// The registry is written only by init functions and read-only afterwards.
var (
	baselines    = map[string]TokenSet{}
	keyTargets   = map[string]string{}
	registration []string
)

func registerBaseline(ts TokenSet, aliases ...string) {
	if _, dup := baselines[ts.ID]; dup {
		panic(fmt.Sprintf("tokens: baseline %q registered twice", ts.ID))
	}
	baselines[ts.ID] = ts
	for _, key := range append([]string{ts.ID}, aliases...) {
		key = NormalizeIndustry(key)
		if _, dup := keyTargets[key]; dup {
			panic(fmt.Sprintf("tokens: industry key %q registered twice", key))
		}
		keyTargets[key] = ts.ID
		registration = append(registration, key)
	}
}

// NormalizeIndustry lower-cases s and replaces every rune outside a-z with
// a hyphen.
func NormalizeIndustry(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			return r
		}
		return '-'
	}, s)
}

// hasLetter reports whether a normalized key carries any letters. Keys
// without letters would otherwise fuzzy-match every registered key.
func hasLetter(normalized string) bool {
	return strings.Trim(normalized, "-") != ""
}

// LookupExact returns the baseline ID registered under the normalized key.
func LookupExact(normalized string) (string, bool) {
	id, ok := keyTargets[normalized]
	return id, ok
}

// LookupFuzzy scans registered keys in registration order and returns the
// first one that contains normalized or is contained by it. The default
// baseline never takes part.
func LookupFuzzy(normalized string) (key string, ok bool) {
	if !hasLetter(normalized) {
		return "", false
	}
	for _, k := range registration {
		if k == DefaultIndustry {
			continue
		}
		if strings.Contains(normalized, k) || strings.Contains(k, normalized) {
			return k, true
		}
	}
	return "", false
}

// ResolveIndustry maps a free-text industry label onto a baseline: exact
// key, then fuzzy key, then the default baseline. It never fails.
func ResolveIndustry(industry string) Resolution {
	res := Resolution{Input: industry, Normalized: NormalizeIndustry(industry)}

	if id, ok := LookupExact(res.Normalized); ok {
		res.Key, res.Baseline, res.Match = res.Normalized, id, MatchExact
		return res
	}
	if key, ok := LookupFuzzy(res.Normalized); ok {
		res.Key, res.Baseline, res.Match = key, keyTargets[key], MatchFuzzy
		return res
	}
	res.Key, res.Baseline, res.Match = DefaultIndustry, DefaultIndustry, MatchDefault
	return res
}

// Industries returns the canonical baseline IDs, sorted.
func Industries() []string {
	ids := lo.Keys(baselines)
	sort.Strings(ids)
	return ids
}

// IndustryKeys returns every registered key, aliases included, in
// registration order.
func IndustryKeys() []string {
	return append([]string(nil), registration...)
}

// Aliases returns the alias keys registered for a baseline ID.
func Aliases(id string) []string {
	return lo.Filter(registration, func(k string, _ int) bool {
		return k != id && keyTargets[k] == id
	})
}

// SearchIndustries ranks registered keys against query and returns the
// matching baseline IDs, best first. It is a discovery aid; GetBaseline does
// not use it.
func SearchIndustries(query string) []string {
	normalized := NormalizeIndustry(query)
	if !hasLetter(normalized) {
		return Industries()
	}
	ranks := fuzzy.RankFindNormalizedFold(strings.Trim(normalized, "-"), registration)
	sort.Stable(ranks)
	return lo.Uniq(lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
		return keyTargets[r.Target]
	}))
}
