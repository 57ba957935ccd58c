// Package httpapi serves the omnibox over HTTP so a browser can use tilde as
// its search engine: GET /?q=<text> redirects to the resolved destination.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/hH-13/tilde/internal/application/usecase"
	"github.com/hH-13/tilde/internal/logging"
)

const (
	requestTimeout    = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server exposes an OmniboxUseCase over HTTP.
type Server struct {
	omnibox atomic.Pointer[usecase.OmniboxUseCase]
	listen  string
	logger  zerolog.Logger
}

// NewServer creates a server for omnibox listening on listen (host:port).
// The logger is taken from ctx and attached to every request.
func NewServer(ctx context.Context, omnibox *usecase.OmniboxUseCase, listen string) *Server {
	s := &Server{
		listen: listen,
		logger: *logging.FromContext(logging.WithComponent(ctx, "httpapi")),
	}
	s.omnibox.Store(omnibox)
	return s
}

// SetOmnibox swaps the use case serving new requests, e.g. after the
// configuration was reloaded.
func (s *Server) SetOmnibox(omnibox *usecase.OmniboxUseCase) {
	s.omnibox.Store(omnibox)
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*", "moz-extension://*", "chrome-extension://*"},
		AllowedMethods: []string{"GET"},
		AllowedHeaders: []string{"Accept"},
	}))

	r.Get("/", s.handleQuery)
	r.Get("/suggest", s.handleSuggest)
	r.Get("/commands", s.handleCommands)
	r.Get("/opensearch.xml", s.handleOpenSearch)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("http server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down http server: %w", err)
	}
	s.logger.Info().Msg("http server stopped")
	return nil
}

// requestLogger puts a request-scoped logger into the context and logs
// every finished request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		log := s.logger.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
		ctx := logging.WithContext(r.Context(), log)

		next.ServeHTTP(ww, r.WithContext(ctx))

		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request handled")
	})
}
