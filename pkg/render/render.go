// Package render serializes a finished token set for its consumers: a
// stylesheet block for live documents, a styling-framework config for build
// steps, and JSON, plain-text and terminal views for people and tools.
package render

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Renderer converts a token set to formatted output.
type Renderer interface {
	Render(ts tokens.TokenSet) string
}

// Format names accepted by ByName.
const (
	FormatCSS       = "css"
	FormatFramework = "framework"
	FormatJSON      = "json"
	FormatSummary   = "summary"
	FormatTerminal  = "terminal"
)

// Formats lists every renderer name.
func Formats() []string {
	return []string{FormatCSS, FormatFramework, FormatJSON, FormatSummary, FormatTerminal}
}

// Options configures renderers built by ByName.
type Options struct {
	Theme  Theme
	Width  int
	Logger zerolog.Logger
}

// ByName returns the renderer for format.
func ByName(format string, opts Options) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSS, "stylesheet":
		return NewStylesheet(opts.Logger), nil
	case FormatFramework:
		return NewFramework(), nil
	case FormatJSON:
		return NewJSON(), nil
	case FormatSummary:
		return NewSummary(), nil
	case FormatTerminal:
		theme := opts.Theme
		if theme.Name == "" {
			theme = DefaultTheme()
		}
		return NewTerminal(theme, opts.Width), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats(), ", "))
	}
}
