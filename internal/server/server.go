// Package server exposes the token pipeline over HTTP so pages can link a
// generated stylesheet directly.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/dkoosis/tokenforge/pkg/render"
	"github.com/dkoosis/tokenforge/pkg/tokens"
)

const shutdownTimeout = 5 * time.Second

// Server serves generated token sets. Query parameters override the
// defaults it was built with.
type Server struct {
	gen        *tokens.Generator
	stylesheet *render.Stylesheet
	defaults   tokens.Request
	logger     zerolog.Logger
}

// NewServer creates a server whose requests start from defaults.
func NewServer(defaults tokens.Request, logger zerolog.Logger) *Server {
	return &Server{
		gen:        tokens.NewGenerator(logger),
		stylesheet: render.NewStylesheet(logger),
		defaults:   defaults,
		logger:     logger,
	}
}

// Register mounts the handlers on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /tokens.css", s.handleStylesheet)
	mux.HandleFunc("GET /tokens.json", s.handleTokens)
	mux.HandleFunc("GET /framework.json", s.handleFramework)
	mux.HandleFunc("GET /summary.json", s.handleSummary)
	mux.HandleFunc("GET /industries.json", s.handleIndustries)
	mux.HandleFunc("GET /tones.json", s.handleTones)
}

// Handler returns a mux with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("serving design tokens")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// requestFor layers query parameters over the server defaults.
// Recognized: industry, tone, primary, secondary, extracted (repeatable).
func (s *Server) requestFor(r *http.Request) tokens.Request {
	q := r.URL.Query()
	req := s.defaults
	if v := q.Get("industry"); v != "" {
		req.Industry = v
	}
	if v := q.Get("tone"); v != "" {
		req.Tone = v
	}

	var brand tokens.BrandOverrides
	if req.Overrides != nil {
		brand = *req.Overrides
	}
	brand = brand.Merge(tokens.BrandOverrides{
		PrimaryColor:    q.Get("primary"),
		SecondaryColor:  q.Get("secondary"),
		ExtractedColors: lo.Compact(q["extracted"]),
	})
	req.Overrides = nil
	if brand.HasColors() {
		req.Overrides = &brand
	}
	return req
}

func (s *Server) generate(r *http.Request) tokens.TokenSet {
	return s.gen.Generate(s.requestFor(r))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStylesheet serves the custom property block for the request.
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	css := s.stylesheet.Render(s.generate(r))

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(css))
}

func (s *Server) handleTokens(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.generate(r))
}

func (s *Server) handleFramework(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, render.FrameworkConfigFor(s.generate(r)))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.generate(r).Summary())
}

type industryResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

func (s *Server) handleIndustries(w http.ResponseWriter, r *http.Request) {
	ids := tokens.Industries()
	if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
		ids = tokens.SearchIndustries(q)
	}
	resp := lo.Map(ids, func(id string, _ int) industryResponse {
		return industryResponse{
			ID:      id,
			Name:    s.gen.GetBaseline(id).Name,
			Aliases: tokens.Aliases(id),
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTones(w http.ResponseWriter, _ *http.Request) {
	resp := make(map[string]tokens.ToneModifier, len(tokens.Tones()))
	for _, key := range tokens.Tones() {
		resp[key] = tokens.GetTone(key)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
