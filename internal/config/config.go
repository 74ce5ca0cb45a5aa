package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/tokenforge/pkg/tokens"
)

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	ConfigFile string
	Industry   string
	Tone       string
	Format     string
	Theme      string
	ListenAddr string
	NoColor    bool
	Debug      bool

	BrandFile       string    // path, or "-" for Stdin
	Stdin           io.Reader // source for BrandFile "-"
	PrimaryColor    string
	SecondaryColor  string
	ExtractedColors []string

	// Flags to track if they were explicitly set by the user
	NoColorSet bool
	DebugSet   bool
}

// AppConfig represents the application's configuration from .tokenforge.yaml.
type AppConfig struct {
	Industry   string                `yaml:"industry"`
	Tone       string                `yaml:"tone"`
	Format     string                `yaml:"format"`
	Theme      string                `yaml:"theme"`
	NoColor    bool                  `yaml:"no_color"`
	Debug      bool                  `yaml:"debug"`
	ListenAddr string                `yaml:"listen_addr"`
	Brand      tokens.BrandOverrides `yaml:"brand"`
}

// Constants for default values.
const (
	FileName          = ".tokenforge.yaml"
	DefaultFormat     = "auto"
	DefaultTheme      = "default"
	DefaultListenAddr = "127.0.0.1:8080"
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		Industry:   tokens.DefaultIndustry,
		Tone:       tokens.DefaultTone,
		Format:     DefaultFormat,
		Theme:      DefaultTheme,
		ListenAddr: DefaultListenAddr,
	}
}

// LoadConfig loads the discovered .tokenforge.yaml over the defaults. A
// missing file is not an error; an unreadable or malformed one is logged
// and ignored.
func LoadConfig(logger zerolog.Logger) *AppConfig {
	path := getConfigPath()
	if path == "" {
		logger.Debug().Msg("no config file found, using defaults")
		return Defaults()
	}
	cfg, err := LoadConfigFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("ignoring config file")
		return Defaults()
	}
	logger.Debug().Str("path", path).Msg("loaded config file")
	return cfg
}

// LoadConfigFile loads an explicit config file over the defaults.
func LoadConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fileCfg AppConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return mergeFile(Defaults(), &fileCfg), nil
}

// mergeFile lays the non-empty settings of fileCfg over base.
func mergeFile(base, fileCfg *AppConfig) *AppConfig {
	out := *base
	if fileCfg.Industry != "" {
		out.Industry = fileCfg.Industry
	}
	if fileCfg.Tone != "" {
		out.Tone = fileCfg.Tone
	}
	if fileCfg.Format != "" {
		out.Format = fileCfg.Format
	}
	if fileCfg.Theme != "" {
		out.Theme = fileCfg.Theme
	}
	if fileCfg.ListenAddr != "" {
		out.ListenAddr = fileCfg.ListenAddr
	}
	out.NoColor = fileCfg.NoColor
	out.Debug = fileCfg.Debug
	out.Brand = base.Brand.Merge(fileCfg.Brand)
	return &out
}

// getConfigPath tries to find the .tokenforge.yaml configuration file.
// It checks local directory first, then XDG UserConfigDir (if valid).
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "tokenforge", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
