package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bnema/faultline/internal/adapters/out/ratelimit"
	"github.com/bnema/faultline/internal/config"
	"github.com/bnema/faultline/internal/domain"
)

// evictionInterval is how often idle rate limiter entries are dropped.
const evictionInterval = time.Minute

// Run starts the control surface and blocks until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func Run(ctx context.Context, cfg *config.Config, version string, logger *log.Logger) error {
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}

	subs, closeSubs, err := createSubstrates(ctx, cfg, registry, logger)
	defer closeSubs(context.Background())
	if err != nil {
		return err
	}

	return serve(ctx, cfg, registry, subs, version, logger)
}

// Serve runs the control surface over the given substrates.
func Serve(ctx context.Context, cfg *config.Config, subs Substrates, version string, logger *log.Logger) error {
	registry, err := cfg.Registry()
	if err != nil {
		return err
	}
	return serve(ctx, cfg, registry, subs, version, logger)
}

// serve runs the control surface with the registry the substrates were built from.
func serve(ctx context.Context, cfg *config.Config, registry *domain.Registry, subs Substrates, version string, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.With("component", "app")

	svc, err := createServices(ctx, cfg, registry, subs, version, logger)
	if err != nil {
		return err
	}
	defer svc.close(context.Background())

	if svc.limiter != nil {
		go svc.limiter.RunEviction(ctx, evictionInterval, ratelimit.DefaultIdleTTL)
	}

	e := newEcho(cfg, svc, version, logger)
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		// Operations touch every handle of a region sequentially.
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("control surface listening", "addr", cfg.Server.Addr, "regions", registry.IDs())
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	grace := cfg.Server.ShutdownGrace
	if grace <= 0 {
		grace = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown error", "error", err)
	}

	log.Info("shutdown complete")
	return nil
}
