// Package api implements the phylograph HTTP API.
//
// The API exposes the same parse → layout → render pipeline as the CLI:
//
//	POST /api/v1/layout  - parse Newick and compute a layout
//	POST /api/v1/render  - parse, lay out, and render artifacts
//	GET  /healthz        - liveness probe
//	GET  /version        - build information
//
// Requests carry pipeline options in the JSON body; failures return a JSON
// error envelope with the machine-readable error code.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/phylograph/phylograph/pkg/buildinfo"
	"github.com/phylograph/phylograph/pkg/errors"
	"github.com/phylograph/phylograph/pkg/layout"
	"github.com/phylograph/phylograph/pkg/pipeline"
)

// Server wires the pipeline runner into an HTTP handler.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server around the given runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is canceled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// =============================================================================
// Request / Response Types
// =============================================================================

// LayoutRequest is the body of POST /api/v1/layout.
type LayoutRequest struct {
	Newick    string  `json:"newick"`
	Direction string  `json:"direction,omitempty"`
	Width     float64 `json:"width,omitempty"`
	Height    float64 `json:"height,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`
}

// LayoutResponse is the body of a successful layout call.
type LayoutResponse struct {
	Layout   layout.Layout `json:"layout"`
	TreeHash string        `json:"tree_hash"`
	Stats    statsPayload  `json:"stats"`
	Cached   cachePayload  `json:"cached"`
}

// RenderRequest is the body of POST /api/v1/render.
type RenderRequest struct {
	LayoutRequest
	Formats []string `json:"formats,omitempty"`
}

// RenderResponse is the body of a successful render call. Artifact bytes are
// base64-encoded by Go's JSON encoder.
type RenderResponse struct {
	TreeHash  string            `json:"tree_hash"`
	Artifacts map[string][]byte `json:"artifacts"`
	Stats     statsPayload      `json:"stats"`
	Cached    cachePayload      `json:"cached"`
}

type statsPayload struct {
	Nodes  int `json:"nodes"`
	Edges  int `json:"edges"`
	Leaves int `json:"leaves"`
}

type cachePayload struct {
	Parse  bool `json:"parse"`
	Layout bool `json:"layout"`
	Render bool `json:"render,omitempty"`
}

// ErrorResponse is the JSON envelope for failures.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	result, err := s.execute(r.Context(), pipeline.Options{
		Newick:    req.Newick,
		Direction: req.Direction,
		Width:     req.Width,
		Height:    req.Height,
		Refresh:   req.Refresh,
		Formats:   []string{pipeline.FormatJSON},
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, LayoutResponse{
		Layout:   result.Layout,
		TreeHash: result.TreeHash,
		Stats:    stats(result),
		Cached: cachePayload{
			Parse:  result.CacheInfo.ParseHit,
			Layout: result.CacheInfo.LayoutHit,
		},
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}

	result, err := s.execute(r.Context(), pipeline.Options{
		Newick:    req.Newick,
		Direction: req.Direction,
		Width:     req.Width,
		Height:    req.Height,
		Refresh:   req.Refresh,
		Formats:   req.Formats,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		TreeHash:  result.TreeHash,
		Artifacts: result.Artifacts,
		Stats:     stats(result),
		Cached: cachePayload{
			Parse:  result.CacheInfo.ParseHit,
			Layout: result.CacheInfo.LayoutHit,
			Render: result.CacheInfo.RenderHit,
		},
	})
}

func (s *Server) execute(ctx context.Context, opts pipeline.Options) (*pipeline.Result, error) {
	opts.Logger = s.logger
	return s.runner.Execute(ctx, opts)
}

func stats(result *pipeline.Result) statsPayload {
	return statsPayload{
		Nodes:  result.Stats.NodeCount,
		Edges:  result.Stats.EdgeCount,
		Leaves: result.Stats.LeafCount,
	}
}

// =============================================================================
// Response Helpers
// =============================================================================

// writeError maps structured error codes to HTTP status codes: input
// validation failures are the client's fault, everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidNewick, errors.ErrCodeInvalidDirection,
		errors.ErrCodeInvalidGeometry, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidTree:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case "":
		code = errors.ErrCodeInternal
	}

	s.logger.Error("request failed",
		"request_id", requestIDFrom(r.Context()),
		"status", status,
		"err", err)

	writeJSON(w, status, ErrorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
