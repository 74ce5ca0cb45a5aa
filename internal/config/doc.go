// Package config handles configuration loading and merging for tokenforge.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--industry, --tone, --format, --theme, --no-color, --debug, --primary, ...)
//  2. Environment variables (TOKENFORGE_INDUSTRY, TOKENFORGE_TONE, TOKENFORGE_FORMAT,
//     TOKENFORGE_THEME, TOKENFORGE_NO_COLOR or NO_COLOR, TOKENFORGE_DEBUG)
//  3. YAML config file (.tokenforge.yaml in the local directory or
//     $XDG_CONFIG_HOME/tokenforge/.tokenforge.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Brand Overrides
//
// Brand colors are merged per field: the config file's brand section, then
// the document named by --brand-file (JSON or YAML), then --primary,
// --secondary and --extracted. A later source only replaces the fields it
// actually sets.
//
// # Environment Variables
//
//   - TOKENFORGE_NO_COLOR or NO_COLOR: "true" or "1" selects the mono theme
//   - TOKENFORGE_DEBUG: any non-empty value enables debug logging
package config
