// Package detect sniffs brand override documents to determine their format.
package detect

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Format represents a recognized input format.
type Format int

const (
	Unknown Format = iota
	JSON           // single JSON object
	YAML           // YAML mapping
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Sniff examines input to determine its format. Only documents whose top
// level is an object/mapping are recognized.
func Sniff(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return Unknown
	}

	// JSON is a YAML subset, so try the stricter form first.
	if data[0] == '{' {
		if json.Valid(data) {
			return JSON
		}
		return Unknown
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil || doc == nil {
		return Unknown
	}
	return YAML
}

// DecodeBrand parses brand overrides from a JSON or YAML document.
func DecodeBrand(data []byte) (tokens.BrandOverrides, error) {
	var o tokens.BrandOverrides
	switch f := Sniff(data); f {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&o); err != nil {
			return o, fmt.Errorf("decode brand json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil {
			return o, fmt.Errorf("decode brand yaml: %w", err)
		}
	default:
		return o, fmt.Errorf("unrecognized brand document (expected a JSON object or YAML mapping)")
	}
	return o, nil
}
