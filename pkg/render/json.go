package render

import (
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// OutputVersion is the schema version stamped on JSON output.
const OutputVersion = "1"

// JSON renders the token set and its summary for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string          `json:"version"`
	Summary tokens.Summary  `json:"summary"`
	Tokens  tokens.TokenSet `json:"tokens"`
}

// Render formats ts as JSON.
func (j *JSON) Render(ts tokens.TokenSet) string {
	return marshalIndent(jsonOutput{
		Version: OutputVersion,
		Summary: ts.Summary(),
		Tokens:  ts,
	})
}
