package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/internal/logging"
	"github.com/huangsam/teamdisc/internal/metrics"
)

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 10 * time.Second

// Server runs the HTTP API.
type Server struct {
	cfg     *contract.Config
	svc     *core.Service
	metrics *metrics.Collector
	engine  *gin.Engine
}

// NewServer wires the router, controllers, health, and metrics routes.
func NewServer(cfg *contract.Config, svc *core.Service, collector *metrics.Collector) *Server {
	engine := NewRouter(RouterOptions{
		GinMode:     cfg.GinMode,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     collector,
	})

	s := &Server{cfg: cfg, svc: svc, metrics: collector, engine: engine}
	NewController(svc).RegisterRoutes(engine, cfg.AdminToken)
	engine.GET("/healthz", s.health)
	if collector.Enabled() {
		engine.GET("/metrics", gin.WrapH(collector.Handler()))
	}
	return s
}

// Handler returns the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Log.Infof("Starting server on %s", s.cfg.Listen)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to run server: %w", err)
	case <-ctx.Done():
	}

	logging.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// health reports the store status; an unreachable store answers 503.
func (s *Server) health(g *gin.Context) {
	status, err := s.svc.Status()
	if err != nil {
		logging.Log.Errorf("HEALTH: store check failed: %v", err)
		g.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "backend": s.cfg.Backend})
		return
	}
	g.JSON(http.StatusOK, gin.H{"status": "ok", "backend": status.Backend, "profiles": status.TotalProfiles})
}
