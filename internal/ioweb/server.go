// Package ioweb serves report assembly over HTTP. Statements are built
// and returned without touching the database, so a client can review
// them before running a report.
package ioweb

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lpoaura/lpodata/pkg/config"
	"github.com/lpoaura/lpodata/pkg/datasource"
	"github.com/lpoaura/lpodata/pkg/materialize"
	"github.com/lpoaura/lpodata/pkg/report"
	"github.com/lpoaura/lpodata/pkg/taxon"
)

// Server keeps what handlers need to assemble reports.
type Server struct {
	assembler report.Assembler
	strategy  materialize.Strategy
	resolver  *datasource.Resolver
	registry  *taxon.Registry
	version   string

	// now is the clock of report runs.
	now func() time.Time
}

// New creates a Server from the configuration and the taxon registry.
func New(cfg *config.Config, reg *taxon.Registry, version string) (*Server, error) {
	a, err := report.New(
		report.NewSources(cfg.Report),
		taxon.NewCompiler(reg),
		cfg.Report.TargetSRID,
	)
	if err != nil {
		return nil, err
	}
	res := Server{
		assembler: a,
		strategy: materialize.Strategy{
			Schema:       cfg.Report.OutputSchema,
			UniqueTables: cfg.Report.UniqueTables,
		},
		resolver: datasource.NewResolver(cfg),
		registry: reg,
		version:  version,
		now:      time.Now,
	}
	return &res, nil
}

// Router returns the HTTP handler of the API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logging)

	r.Get("/healthz", s.health)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/taxa", s.taxa)
		r.Post("/reports/{kind}/sql", s.reportSQL)
	})
	return r
}

// Run serves on addr until ctx is canceled.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
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

func logging(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug("HTTP request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
		)
	}
	return http.HandlerFunc(fn)
}
