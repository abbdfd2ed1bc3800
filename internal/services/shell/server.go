// Package shell hosts the application shell: sidebar navigation, nested
// layouts and the pages they frame.
package shell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/appshell/internal/platform/timeouts"
	"github.com/louisbranch/appshell/internal/services/shell/navigation"
	"github.com/louisbranch/appshell/internal/services/shell/pagerender"
	"github.com/louisbranch/appshell/internal/services/shell/platform/httpx"
	"github.com/louisbranch/appshell/internal/services/shell/platform/metrics"
	"github.com/louisbranch/appshell/internal/services/shell/platform/observability"
	"github.com/louisbranch/appshell/internal/services/shell/routepath"
	"github.com/louisbranch/appshell/internal/services/shell/routing"
	shellstatic "github.com/louisbranch/appshell/internal/services/shell/static"
	"github.com/louisbranch/appshell/internal/services/shell/templates"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the shell service.
type Config struct {
	HTTPAddr      string
	AssetBaseURL  string
	HTMXScriptURL string
	AppName       string
	// Registry is the sidebar content. The zero value renders an empty menu.
	Registry navigation.Registry
	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	// Metrics defaults to collectors on a private registry.
	Metrics *metrics.Metrics
}

func (c Config) shell() pagerender.Shell {
	return pagerender.Shell{
		Registry: c.Registry,
		AppName:  c.AppName,
		Assets: templates.Assets{
			BaseURL:       c.AssetBaseURL,
			HTMXScriptURL: c.HTMXScriptURL,
		},
	}
}

func (c Config) logger() logrus.FieldLogger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

// Server hosts the shell HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: pages, static assets and health.
func NewHandler(cfg Config) (http.Handler, error) {
	router, err := NewRouter(cfg.Registry)
	if err != nil {
		return nil, err
	}
	logger := cfg.logger()
	collectors := cfg.Metrics
	if collectors == nil {
		collectors = metrics.New(nil)
	}
	collectors.SetNavigationEntries(cfg.Registry.Len())

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(shellstatic.FS))))
	rootMux.HandleFunc(routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		_ = httpx.WriteText(w, http.StatusOK, "ok")
	})
	rootMux.Handle(routepath.Metrics, collectors.Handler())
	rootMux.Handle(routepath.Root, pageHandler(router, cfg.shell(), logger))

	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		httpx.Trace(cfg.TracerProvider),
		observability.RequestLogger(logger),
		collectors.Middleware(routeLabel(router)),
		httpx.AllowMethods(http.MethodGet, http.MethodHead),
	), nil
}

func pageHandler(router *routing.Router, shell pagerender.Shell, logger logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		match := router.Resolve(r.URL.Path)
		if err := shell.WritePage(w, r, match); err != nil {
			logger.WithError(err).WithField("path", match.Path).Warn("render page")
		}
	})
}

// routeLabel keeps metric cardinality bounded: page requests are counted
// under their matched route and everything unmatched under not_found.
func routeLabel(router *routing.Router) metrics.RouteFunc {
	return func(r *http.Request) string {
		path := r.URL.Path
		switch {
		case strings.HasPrefix(path, routepath.StaticPrefix):
			return "static"
		case path == routepath.Health:
			return "health"
		case path == routepath.Metrics:
			return "metrics"
		}
		match := router.Resolve(path)
		if !match.Found {
			return "not_found"
		}
		return match.Path
	}
}

// NewServer validates config and constructs a shell server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose shell handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("shell server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown shell http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve shell http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
