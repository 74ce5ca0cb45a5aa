// tokenforge generates design tokens for a brand from its industry, brand
// colors and messaging tone.
//
// Usage:
//
//	tokenforge generate --industry "law firm" --tone authoritative --primary "#7a1f2b"
//	tokenforge generate -i restaurant --brand-file brand.yaml --format framework
//	tokenforge industries hosp
//	tokenforge serve --listen 127.0.0.1:8080
//
// Output formats:
//
//	css         :root custom properties, every value sanitized (default when piped)
//	terminal    styled swatches and tables (default when TTY)
//	framework   nested styling-framework theme config as JSON
//	json        full token set and summary for automation
//	summary     terse plain text
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/tokenforge/internal/config"
	"github.com/dkoosis/tokenforge/internal/version"
	"github.com/dkoosis/tokenforge/pkg/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// exitError carries a specific process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: zerolog.Nop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "tokenforge: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "tokenforge: %v\n", err)
	return 2
}

// app is the state shared by every command of one invocation.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	flags  config.CliFlags
	cfg    *config.ResolvedConfig
	logger zerolog.Logger
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tokenforge",
		Short:         "Generate sanitized design tokens for a brand",
		Long:          "tokenforge builds a complete design token set from an industry baseline, brand color overrides and a messaging tone.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigFile, "config", "", "Config file (default: ./"+config.FileName+" or the user config dir)")
	pf.StringVarP(&a.flags.Industry, "industry", "i", "", "Industry label, free text")
	pf.StringVarP(&a.flags.Tone, "tone", "t", "", "Messaging tone")
	pf.StringVarP(&a.flags.Format, "format", "f", "", "Output format: auto, css, terminal, framework, json, summary")
	pf.StringVar(&a.flags.Theme, "theme", "", "Terminal theme: default, orca, mono")
	pf.BoolVar(&a.flags.NoColor, "no-color", false, "Disable colors in terminal output")
	pf.BoolVar(&a.flags.Debug, "debug", false, "Enable debug logging")
	pf.StringVar(&a.flags.PrimaryColor, "primary", "", "Explicit primary brand color")
	pf.StringVar(&a.flags.SecondaryColor, "secondary", "", "Explicit secondary brand color")
	pf.StringSliceVar(&a.flags.ExtractedColors, "extracted", nil, "Colors extracted from the brand's site or logo, most prominent first")
	pf.StringVar(&a.flags.BrandFile, "brand-file", "", "JSON or YAML brand overrides (\"-\" for stdin)")

	root.AddCommand(
		a.generateCmd(),
		a.industriesCmd(),
		a.tonesCmd(),
		a.checkCmd(),
		a.previewCmd(),
		a.serveCmd(),
		a.versionCmd(),
	)
	return root
}

// configure resolves configuration and installs the logger. It runs before
// every subcommand.
func (a *app) configure(cmd *cobra.Command) error {
	flags := cmd.Flags()
	a.flags.NoColorSet = flags.Changed("no-color")
	a.flags.DebugSet = flags.Changed("debug")
	a.flags.Stdin = a.stdin

	bootstrap := newLogger(a.stderr, a.flags.DebugSet && a.flags.Debug)
	cfg, err := config.ResolveConfig(a.flags, bootstrap)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.Debug)
	log.Logger = a.logger

	a.logger.Debug().
		Str("industry", cfg.Industry).Str("industry_source", cfg.IndustrySource).
		Str("tone", cfg.Tone).Str("tone_source", cfg.ToneSource).
		Str("format", cfg.Format).Str("format_source", cfg.FormatSource).
		Str("theme", cfg.Theme).Str("theme_source", cfg.ThemeSource).
		Msg("resolved config")
	return nil
}

// newLogger writes human-readable logs to w: warnings by default,
// everything with debug on.
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTTYWriter(w)}).
		Level(level).
		With().Timestamp().Logger()
}

// renderer returns the renderer for the resolved format, sized for w.
func (a *app) renderer(w io.Writer) (render.Renderer, error) {
	return render.ByName(resolveFormat(a.cfg.Format, w), render.Options{
		Theme:  render.ThemeByName(a.cfg.Theme),
		Width:  termWidth(w),
		Logger: a.logger,
	})
}

// resolveFormat maps "auto" to terminal on a TTY and css otherwise.
func resolveFormat(format string, w io.Writer) string {
	if format != config.DefaultFormat {
		return format
	}
	if isTTYWriter(w) {
		return render.FormatTerminal
	}
	return render.FormatCSS
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}
