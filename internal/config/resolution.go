package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/dkoosis/tokenforge/internal/detect"
	"github.com/dkoosis/tokenforge/pkg/render"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// Source names recorded in ResolvedConfig.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	Industry   string
	Tone       string
	Format     string // "auto" or one of render.Formats()
	Theme      string
	NoColor    bool
	Debug      bool
	ListenAddr string
	Brand      tokens.BrandOverrides

	// Resolution metadata (for debugging)
	IndustrySource string
	ToneSource     string
	FormatSource   string
	ThemeSource    string
	NoColorSource  string
}

// Request returns the token pipeline input described by the config.
func (c *ResolvedConfig) Request() tokens.Request {
	req := tokens.Request{Industry: c.Industry, Tone: c.Tone}
	if c.Brand.HasColors() {
		brand := c.Brand
		req.Overrides = &brand
	}
	return req
}

// ResolveConfig resolves configuration from all sources with explicit priority order:
// CLI > environment > config file > defaults.
func ResolveConfig(cli CliFlags, logger zerolog.Logger) (*ResolvedConfig, error) {
	appCfg, fileSource, err := loadBase(cli, logger)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		ListenAddr: appCfg.ListenAddr,
		Brand:      appCfg.Brand,
	}
	resolved.Industry, resolved.IndustrySource = resolveString(cli.Industry, "TOKENFORGE_INDUSTRY", appCfg.Industry, tokens.DefaultIndustry, fileSource)
	resolved.Tone, resolved.ToneSource = resolveString(cli.Tone, "TOKENFORGE_TONE", appCfg.Tone, tokens.DefaultTone, fileSource)
	resolved.Format, resolved.FormatSource = resolveString(cli.Format, "TOKENFORGE_FORMAT", appCfg.Format, DefaultFormat, fileSource)
	resolved.Theme, resolved.ThemeSource = resolveString(cli.Theme, "TOKENFORGE_THEME", appCfg.Theme, DefaultTheme, fileSource)
	if cli.ListenAddr != "" {
		resolved.ListenAddr = cli.ListenAddr
	}

	// NoColor: CLI > ENV > file > default
	resolved.NoColor, resolved.NoColorSource = appCfg.NoColor, fileSource
	if cli.NoColorSet {
		resolved.NoColor, resolved.NoColorSource = cli.NoColor, SourceCLI
	} else if env := getEnvBool("TOKENFORGE_NO_COLOR", "NO_COLOR"); env != nil {
		resolved.NoColor, resolved.NoColorSource = *env, SourceEnv
	}
	if resolved.NoColor {
		resolved.Theme = "mono"
	}

	// Debug: CLI > ENV > file
	resolved.Debug = appCfg.Debug
	if cli.DebugSet {
		resolved.Debug = cli.Debug
	} else if os.Getenv("TOKENFORGE_DEBUG") != "" {
		resolved.Debug = true
	}

	// Brand: file section < --brand-file < color flags, merged per field
	if cli.BrandFile != "" {
		data, err := readBrandFile(cli)
		if err != nil {
			return nil, fmt.Errorf("read brand file: %w", err)
		}
		fromFile, err := detect.DecodeBrand(data)
		if err != nil {
			return nil, fmt.Errorf("brand file %s: %w", cli.BrandFile, err)
		}
		resolved.Brand = resolved.Brand.Merge(fromFile)
	}
	resolved.Brand = resolved.Brand.Merge(tokens.BrandOverrides{
		PrimaryColor:    cli.PrimaryColor,
		SecondaryColor:  cli.SecondaryColor,
		ExtractedColors: cli.ExtractedColors,
	})

	if _, ok := tokens.LookupTone(resolved.Tone); !ok {
		logger.Warn().Str("tone", resolved.Tone).Str("source", resolved.ToneSource).
			Msg("unknown tone, " + tokens.DefaultTone + " will be used")
	}

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

// readBrandFile reads --brand-file; "-" means stdin.
func readBrandFile(cli CliFlags) ([]byte, error) {
	if cli.BrandFile == "-" {
		if cli.Stdin == nil {
			return nil, errors.New("no stdin available")
		}
		return io.ReadAll(cli.Stdin)
	}
	return os.ReadFile(cli.BrandFile)
}

// loadBase returns the file layer and the source name to record for values
// it supplies.
func loadBase(cli CliFlags, logger zerolog.Logger) (*AppConfig, string, error) {
	if cli.ConfigFile != "" {
		cfg, err := LoadConfigFile(cli.ConfigFile)
		if err != nil {
			return nil, "", err
		}
		return cfg, SourceFile, nil
	}
	if getConfigPath() == "" {
		return Defaults(), SourceDefault, nil
	}
	return LoadConfig(logger), SourceFile, nil
}

// resolveString picks the highest-priority non-empty value.
func resolveString(cliVal, envKey, fileVal, defaultVal, fileSource string) (string, string) {
	if cliVal != "" {
		return cliVal, SourceCLI
	}
	if env := os.Getenv(envKey); env != "" {
		return env, SourceEnv
	}
	if fileVal != "" && fileVal != defaultVal {
		return fileVal, fileSource
	}
	return defaultVal, SourceDefault
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig reports every invalid setting at once.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	var errs []error
	if cfg.Format != DefaultFormat && !slices.Contains(render.Formats(), cfg.Format) {
		errs = append(errs, fmt.Errorf("invalid format: %s (must be: auto, %v)", cfg.Format, render.Formats()))
	}
	if !slices.Contains(render.ThemeNames(), cfg.Theme) {
		errs = append(errs, fmt.Errorf("invalid theme: %s (must be one of %v)", cfg.Theme, render.ThemeNames()))
	}
	if cfg.ListenAddr == "" {
		errs = append(errs, errors.New("listen_addr must not be empty"))
	}
	return errors.Join(errs...)
}
