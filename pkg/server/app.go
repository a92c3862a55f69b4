package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"RendaFixa/internal/domain/repository"
	"RendaFixa/pkg/config"
	xhttp "RendaFixa/pkg/http"
	applogger "RendaFixa/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	indicators repository.IndicatorProvider
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler, indicators repository.IndicatorProvider) *App {
	return &App{
		cfg:        cfg,
		logger:     logger,
		handler:    handler,
		indicators: indicators,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.cfg.Cache.WarmOnBoot {
		a.warmCache(ctx)
	}

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithLogger(a.logger),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started", applogger.Int("port", a.cfg.Server.Port))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// warmCache attempts one initial aggregation so the first request is served
// from memory. A failure is logged and left for the first request to retry.
func (a *App) warmCache(ctx context.Context) {
	warmCtx, cancel := context.WithTimeout(ctx, a.cfg.SGS.Timeout+5*time.Second)
	defer cancel()

	if _, _, err := a.indicators.Get(warmCtx); err != nil {
		a.logger.Warn("cache warm-up failed", applogger.Error(err))
		return
	}
	a.logger.Info("indicator cache warmed")
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
