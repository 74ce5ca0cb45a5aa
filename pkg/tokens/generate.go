package tokens

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Request is the input to Generate.
type Request struct {
	Industry  string          `json:"industry" yaml:"industry"`
	Tone      string          `json:"tone,omitempty" yaml:"tone,omitempty"`
	Overrides *BrandOverrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Generator runs the token pipeline. The zero value logs nothing.
type Generator struct {
	logger zerolog.Logger
}

// NewGenerator returns a Generator that reports fallbacks and rejected
// brand colors to logger.
func NewGenerator(logger zerolog.Logger) *Generator {
	return &Generator{logger: logger}
}

// GetBaseline returns a copy of the baseline for an industry label: exact
// key, then fuzzy key, then the default baseline.
func (g *Generator) GetBaseline(industry string) TokenSet {
	res := ResolveIndustry(industry)
	g.logger.Debug().
		Str("industry", industry).
		Str("key", res.Key).
		Str("baseline", res.Baseline).
		Str("match", string(res.Match)).
		Msg("resolved industry")
	return baselines[res.Baseline].Clone()
}

// ApplyOverrides merges brand colors into a copy of ts. Colors that fail
// the stylesheet color grammar are logged and ignored.
func (g *Generator) ApplyOverrides(ts TokenSet, o BrandOverrides) TokenSet {
	return applyOverrides(ts, o, g.logger)
}

// ApplyTone applies the named tone preset to a copy of ts. Unknown tones
// apply the professional preset, which changes nothing.
func (g *Generator) ApplyTone(ts TokenSet, tone string) TokenSet {
	if strings.TrimSpace(tone) != "" {
		if _, ok := LookupTone(tone); !ok {
			g.logger.Debug().Str("tone", tone).Msg("unknown tone, using " + DefaultTone)
		}
	}
	return GetTone(tone).Modify(ts)
}

// Generate runs baseline -> overrides -> tone. It never fails.
func (g *Generator) Generate(req Request) TokenSet {
	ts := g.GetBaseline(req.Industry)
	if req.Overrides != nil {
		ts = g.ApplyOverrides(ts, *req.Overrides)
	}
	tone := req.Tone
	if strings.TrimSpace(tone) == "" {
		tone = DefaultTone
	}
	return g.ApplyTone(ts, tone)
}

func global() *Generator {
	return NewGenerator(log.Logger)
}

// Generate runs the pipeline with the global logger.
func Generate(req Request) TokenSet { return global().Generate(req) }

// GetBaseline resolves an industry with the global logger.
func GetBaseline(industry string) TokenSet { return global().GetBaseline(industry) }

// ApplyOverrides merges brand colors with the global logger.
func ApplyOverrides(ts TokenSet, o BrandOverrides) TokenSet {
	return global().ApplyOverrides(ts, o)
}

// ApplyTone applies a tone preset with the global logger.
func ApplyTone(ts TokenSet, tone string) TokenSet { return global().ApplyTone(ts, tone) }
