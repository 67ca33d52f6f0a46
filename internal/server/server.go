// Package server adapts HTTP requests onto the expense pipeline's single
// process operation.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Veraticus/budgetbuddy/internal/model"
)

// Processor is the single operation the server adapts onto HTTP.
type Processor interface {
	Process(ctx context.Context, text, userID string) model.Response
}

// Config holds the server's dependencies and settings.
type Config struct {
	Addr string
	Mode string // gin mode: debug, release or test
}

// Server wraps a gin engine around the expense pipeline.
type Server struct {
	engine *gin.Engine
	agent  Processor
	addr   string
}

// New creates a configured server.
func New(agent Processor, cfg Config) (*Server, error) {
	if agent == nil {
		return nil, errors.New("processor is required")
	}

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}
	mode := cfg.Mode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), requestLogger())

	srv := &Server{engine: engine, agent: agent, addr: addr}
	srv.registerRoutes()
	return srv, nil
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.health)

	v1 := s.engine.Group("/v1")
	v1.POST("/expenses", s.processExpense)
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("HTTP server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Handler exposes the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}
