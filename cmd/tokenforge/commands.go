package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/tokenforge/internal/config"
	"github.com/dkoosis/tokenforge/internal/server"
	"github.com/dkoosis/tokenforge/internal/version"
	"github.com/dkoosis/tokenforge/pkg/preview"
	"github.com/dkoosis/tokenforge/pkg/render"
	"github.com/dkoosis/tokenforge/pkg/sanitize"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

func (a *app) generateCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a token set and render it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, createErr := os.Create(out)
				if createErr != nil {
					return fmt.Errorf("create output: %w", createErr)
				}
				defer closeOutput(f, &err)
				w = f
			}

			r, err := a.renderer(w)
			if err != nil {
				return &exitError{code: 2, err: err}
			}
			ts := tokens.NewGenerator(a.logger).Generate(a.cfg.Request())
			if _, err := io.WriteString(w, r.Render(ts)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

// closeOutput closes c and reports its error unless *err already holds one.
func closeOutput(c io.Closer, err *error) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", closeErr)
	}
}

func (a *app) industriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "industries [query]",
		Short: "List industry baselines, best match first when a query is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := tokens.Industries()
			if len(args) == 1 {
				ids = tokens.SearchIndustries(args[0])
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tALIASES")
			for _, id := range ids {
				ts := tokens.GetBaseline(id)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", id, ts.Name, strings.Join(tokens.Aliases(id), ", "))
			}
			return tw.Flush()
		},
	}
}

func (a *app) tonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tones",
		Short: "List tone presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			title := cases.Title(language.English)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TONE\tNAME\tWEIGHT\tSPACING\tRADIUS\tCONTRAST\tTEMPERATURE")
			for _, key := range tokens.Tones() {
				m := tokens.GetTone(key)
				fmt.Fprintf(tw, "%s\t%s\t%+d\tx%g\t%s\t%s\t%s\n",
					key, title.String(key), m.HeadingWeightDelta, m.SpacingMultiplier,
					m.RadiusDelta, m.Contrast, m.Temperature)
			}
			return tw.Flush()
		},
	}
}

// checkProblem is one failed validation in the check command.
type checkProblem struct {
	subject string
	detail  string
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every baseline and tone, plus the configured brand colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen := tokens.NewGenerator(a.logger)
			var problems []checkProblem

			for _, id := range tokens.Industries() {
				for _, tone := range tokens.Tones() {
					subject := id + "/" + tone
					problems = append(problems, checkTokenSet(subject, gen.Generate(tokens.Request{Industry: id, Tone: tone}))...)
				}
			}
			problems = append(problems, checkBrand(a.cfg.Brand)...)

			w := cmd.OutOrStdout()
			total := len(tokens.Industries()) * len(tokens.Tones())
			if len(problems) == 0 {
				fmt.Fprintf(w, "ok: %d token sets, %d brand colors\n", total, len(brandColors(a.cfg.Brand)))
				return nil
			}
			for _, p := range problems {
				fmt.Fprintf(w, "FAIL %s: %s\n", p.subject, p.detail)
			}
			return &exitError{code: 1, err: fmt.Errorf("%d problems", len(problems))}
		},
	}
}

// checkTokenSet validates a token set and every stylesheet declaration it
// produces.
func checkTokenSet(subject string, ts tokens.TokenSet) []checkProblem {
	var problems []checkProblem
	if err := ts.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			problems = append(problems, checkProblem{subject, line})
		}
	}
	for _, d := range render.Declarations(ts) {
		if _, ok := sanitize.Check(d.Value, d.Class); !ok {
			problems = append(problems, checkProblem{subject, fmt.Sprintf("%s: rejected %s value %q", d.Name, d.Class, d.Value)})
		}
	}
	return problems
}

type namedColor struct{ name, value string }

func brandColors(o tokens.BrandOverrides) []namedColor {
	colors := []namedColor{{"primary", o.PrimaryColor}, {"secondary", o.SecondaryColor}}
	for i, c := range o.ExtractedColors {
		colors = append(colors, namedColor{fmt.Sprintf("extracted[%d]", i), c})
	}
	return lo.Filter(colors, func(c namedColor, _ int) bool { return strings.TrimSpace(c.value) != "" })
}

func checkBrand(o tokens.BrandOverrides) []checkProblem {
	return lo.FilterMap(brandColors(o), func(c namedColor, _ int) (checkProblem, bool) {
		if _, ok := sanitize.Check(c.value, sanitize.Color); ok {
			return checkProblem{}, false
		}
		return checkProblem{"brand", fmt.Sprintf("%s: unsafe color %q", c.name, c.value)}, true
	})
}

func (a *app) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse industries and tones interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTTYWriter(cmd.OutOrStdout()) {
				return &exitError{code: 2, err: fmt.Errorf("preview needs a terminal")}
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			req := a.cfg.Request()
			return preview.Run(ctx, preview.Options{
				Industry:  req.Industry,
				Tone:      req.Tone,
				Overrides: req.Overrides,
				Theme:     render.ThemeByName(a.cfg.Theme),
				Logger:    a.logger,
			})
		},
	}
}

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve stylesheets and token documents over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			return server.NewServer(a.cfg.Request(), a.logger).ListenAndServe(ctx, a.cfg.ListenAddr)
		},
	}
	cmd.Flags().StringVar(&a.flags.ListenAddr, "listen", "", "Listen address (default "+config.DefaultListenAddr+")")
	return cmd
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
