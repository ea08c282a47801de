// Package cardpreview serves a preview of the card title rows over HTTP.
package cardpreview

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/cardrow/internal/platform/theme"
	"github.com/louisbranch/cardrow/internal/platform/timeouts"
	"github.com/louisbranch/cardrow/internal/services/cardpreview/httpx"
)

// Config defines startup inputs for the preview service.
type Config struct {
	HTTPAddr string
	Theme    theme.Theme
	// Cards defaults to DefaultCards.
	Cards  []Card
	Logger *log.Logger
}

// Server hosts the preview HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with the service middleware.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := cfg.Theme.Validate(); err != nil {
		return nil, fmt.Errorf("preview theme: %w", err)
	}
	cards := cfg.Cards
	if len(cards) == 0 {
		cards = DefaultCards()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := handlers{theme: cfg.Theme, cards: cards, logger: logger}

	get := httpx.RequireMethod(http.MethodGet, http.MethodHead)
	mux := http.NewServeMux()
	mux.Handle("/{$}", get(http.HandlerFunc(h.page)))
	mux.Handle("/icons.md", get(http.HandlerFunc(h.iconCatalog)))
	mux.Handle("/cards/{"+httpx.CardPathValue+"}", get(http.HandlerFunc(h.card)))
	mux.Handle("/cards/{"+httpx.CardPathValue+"}/text", get(http.HandlerFunc(h.cardText)))

	return httpx.Chain(mux,
		httpx.RequestID(),
		httpx.Trace(),
		httpx.RecoverPanic(logger),
		httpx.RequestLogger(logger),
		httpx.Compress(),
	), nil
}

// NewServer validates config and constructs a preview server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose preview handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
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
		return errors.New("preview server is nil")
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
			return fmt.Errorf("shutdown preview http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve preview http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
