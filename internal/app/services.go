// Package app wires the adapters, use cases and HTTP surface of the controller.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bnema/faultline/internal/adapters/out/cockroach"
	"github.com/bnema/faultline/internal/adapters/out/docker"
	"github.com/bnema/faultline/internal/adapters/out/ratelimit"
	"github.com/bnema/faultline/internal/adapters/out/telemetry"
	"github.com/bnema/faultline/internal/adapters/out/toxiproxy"
	"github.com/bnema/faultline/internal/boundaries/in"
	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/config"
	"github.com/bnema/faultline/internal/domain"
	clusterusecase "github.com/bnema/faultline/internal/usecase/cluster"
	faultusecase "github.com/bnema/faultline/internal/usecase/fault"
)

// ServiceName identifies the controller in telemetry.
const ServiceName = "faultline"

// Substrates are the driven adapters the controller acts on.
type Substrates struct {
	Proxies out.ProxyClient
	Runtime out.ProcessRuntime
	// Probe is nil when the cluster probe is disabled.
	Probe out.ClusterProbe
}

// services holds everything the HTTP surface needs.
type services struct {
	registry *domain.Registry
	faults   in.FaultService
	cluster  in.ClusterService
	limiter  *ratelimit.MemoryStore
	metrics  http.Handler

	// registerer receives the HTTP request collectors.
	registerer prometheus.Registerer
	cleanup    []func(context.Context)
}

func (s *services) close(ctx context.Context) {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		s.cleanup[i](ctx)
	}
}

// createSubstrates connects the real adapters from the configuration.
// The cluster probe is optional: a failure to set it up disables it.
func createSubstrates(ctx context.Context, cfg *config.Config, registry *domain.Registry, logger *log.Logger) (Substrates, func(context.Context), error) {
	var closers []func(context.Context)
	closeAll := func(ctx context.Context) {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i](ctx)
		}
	}

	proxies := toxiproxy.New(logger, toxiproxy.WithTimeout(cfg.Toxiproxy.Timeout))

	runtime, err := docker.NewRuntime(docker.Config{
		CallTimeout:       cfg.Docker.CallTimeout,
		StopTimeout:       cfg.Docker.StopTimeout,
		NetworkCandidates: cfg.Docker.Networks,
		FallbackNetwork:   cfg.Docker.FallbackNetwork,
		KnownUnits:        registry.Units(),
	}, logger)
	if err != nil {
		return Substrates{}, closeAll, err
	}
	closers = append(closers, func(context.Context) {
		if err := runtime.Close(); err != nil {
			logger.Warn("failed to close docker client", "error", err)
		}
	})

	subs := Substrates{Proxies: proxies, Runtime: runtime}

	if !cfg.Cluster.Enabled {
		logger.Info("cluster probe disabled")
		return subs, closeAll, nil
	}

	probe, err := cockroach.New(ctx, cockroach.Config{
		Host:          cfg.Cluster.Host,
		Port:          cfg.Cluster.Port,
		User:          cfg.Cluster.User,
		Password:      cfg.Cluster.Password,
		Database:      cfg.Cluster.Database,
		SSLMode:       cfg.Cluster.SSLMode,
		WriteInterval: cfg.Cluster.WriteInterval,
	}, logger)
	if err != nil {
		logger.Warn("cluster probe unavailable", "error", err)
		return subs, closeAll, nil
	}
	closers = append(closers, func(context.Context) { probe.Close() })

	if err := probe.EnsureSchema(ctx); err != nil {
		// The cluster may come up after the controller.
		logger.Warn("failed to prepare workload table", "error", err)
	}

	subs.Probe = probe
	return subs, closeAll, nil
}

// createServices builds the use cases over the given substrates.
func createServices(ctx context.Context, cfg *config.Config, registry *domain.Registry, subs Substrates, version string, logger *log.Logger) (*services, error) {
	svc := &services{registry: registry}

	provider, shutdown, err := telemetry.NewProvider(ctx, ServiceName, version)
	if err != nil {
		return nil, fmt.Errorf("failed to create telemetry provider: %w", err)
	}
	svc.cleanup = append(svc.cleanup, shutdown)
	svc.metrics = provider.Handler()
	svc.registerer = provider.Registerer()

	counter, err := telemetry.NewOperationCounter(provider.Meter())
	if err != nil {
		svc.close(ctx)
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	svc.faults = faultusecase.NewService(registry, subs.Proxies, subs.Runtime, counter, logger)

	svc.cluster = clusterusecase.NewService(subs.Probe, logger)

	if cfg.Server.RateLimit.Enabled {
		svc.limiter = ratelimit.NewMemoryStore(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst, logger)
	}

	return svc, nil
}
