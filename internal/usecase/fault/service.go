// Package fault implements the regional fault injection use case.
package fault

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/faultline/internal/boundaries/in"
	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// maxConcurrentRegions limits how many regions are evaluated at once by StatusAll.
const maxConcurrentRegions = 8

// unknownRegionLabel replaces caller-supplied region ids that are not configured
// so they never reach the operation counter.
const unknownRegionLabel = "unknown"

// Ensure Service implements in.FaultService.
var _ in.FaultService = (*Service)(nil)

// Service implements the FaultService interface.
type Service struct {
	registry *domain.Registry
	proxies  out.ProxyClient
	runtime  out.ProcessRuntime
	recorder out.OperationRecorder
	log      *log.Logger
}

// NewService creates a new fault injection service.
func NewService(
	registry *domain.Registry,
	proxies out.ProxyClient,
	runtime out.ProcessRuntime,
	recorder out.OperationRecorder,
	logger *log.Logger,
) *Service {
	return &Service{
		registry: registry,
		proxies:  proxies,
		runtime:  runtime,
		recorder: recorder,
		log:      logger.With("usecase", "fault"),
	}
}

// plan describes one compound operation.
type plan struct {
	action     domain.Action
	enable     bool
	latency    bool
	latencyMs  int
	unitsFirst bool
	network    bool
	unitStep   func(ctx context.Context, log *log.Logger, unit, networkID string) error
}

// Kill forcefully terminates every unit of the region and closes its proxies.
func (s *Service) Kill(ctx context.Context, region string) (*domain.OperationResult, error) {
	return s.run(ctx, region, plan{
		action: domain.ActionKill,
		unitStep: func(ctx context.Context, _ *log.Logger, unit, _ string) error {
			return s.runtime.Kill(ctx, unit)
		},
	})
}

// Stop gracefully stops every unit of the region and closes its proxies.
func (s *Service) Stop(ctx context.Context, region string) (*domain.OperationResult, error) {
	return s.run(ctx, region, plan{
		action: domain.ActionStop,
		unitStep: func(ctx context.Context, _ *log.Logger, unit, _ string) error {
			return s.runtime.Stop(ctx, unit)
		},
	})
}

// Partition detaches every unit from the shared network and closes the proxies.
func (s *Service) Partition(ctx context.Context, region string) (*domain.OperationResult, error) {
	return s.run(ctx, region, plan{
		action:  domain.ActionPartition,
		network: true,
		unitStep: func(ctx context.Context, _ *log.Logger, unit, networkID string) error {
			return s.runtime.DisconnectNetwork(ctx, unit, networkID)
		},
	})
}

// Brownout keeps the region reachable but adds latency to every proxy.
func (s *Service) Brownout(ctx context.Context, region string, latencyMs int) (*domain.OperationResult, error) {
	if latencyMs < 0 {
		if _, err := s.registry.Get(region); err != nil {
			s.recorder.Record(ctx, domain.ActionBrownout, unknownRegionLabel, false, err)
			return nil, err
		}
		err := fmt.Errorf("%w: %d", domain.ErrInvalidLatency, latencyMs)
		s.recorder.Record(ctx, domain.ActionBrownout, region, false, err)
		return nil, err
	}

	return s.run(ctx, region, plan{
		action:    domain.ActionBrownout,
		enable:    true,
		latency:   true,
		latencyMs: latencyMs,
	})
}

// Recover reattaches and starts every unit, then reopens the proxies.
func (s *Service) Recover(ctx context.Context, region string) (*domain.OperationResult, error) {
	return s.run(ctx, region, plan{
		action:     domain.ActionRecover,
		enable:     true,
		unitsFirst: true,
		network:    true,
		unitStep:   s.recoverUnit,
	})
}

// recoverUnit reconnects and starts a unit. The two steps are independent: a
// failed reconnect still starts the unit, and both errors are reported.
func (s *Service) recoverUnit(ctx context.Context, log *log.Logger, unit, networkID string) error {
	var reconnectErr error
	if err := s.runtime.ReconnectNetwork(ctx, unit, networkID); err != nil {
		log.Warn("reconnect failed, starting unit anyway", "unit", unit, "network", networkID, "error", err)
		reconnectErr = fmt.Errorf("reconnect: %w", err)
	}

	running, err := s.runtime.IsRunning(ctx, unit)
	if err != nil {
		log.Warn("liveness unknown, starting unit anyway", "unit", unit, "error", err)
	}
	if running && err == nil {
		return reconnectErr
	}

	if err := s.runtime.Start(ctx, unit); err != nil {
		return errors.Join(reconnectErr, fmt.Errorf("start: %w", err))
	}
	return reconnectErr
}

// run executes a plan against one region. The operation is detached from the
// caller's cancellation so a disconnecting client never leaves it half applied.
func (s *Service) run(ctx context.Context, regionID string, p plan) (*domain.OperationResult, error) {
	ctx = context.WithoutCancel(ctx)
	log := s.log.With("action", string(p.action), "region", regionID)

	region, err := s.registry.Get(regionID)
	if err != nil {
		s.recorder.Record(ctx, p.action, unknownRegionLabel, false, err)
		return nil, err
	}

	result := &domain.OperationResult{
		Region: region.ID,
		Action: p.action,
	}
	if p.latency {
		result.LatencyMs = p.latencyMs
	}

	log.Info("applying fault operation")

	var proxyErr error
	if p.unitsFirst {
		s.applyUnits(ctx, log, region, p, result)
		proxyErr = s.applyProxies(ctx, log, region, p, result)
	} else {
		proxyErr = s.applyProxies(ctx, log, region, p, result)
		s.applyUnits(ctx, log, region, p, result)
	}

	s.recorder.Record(ctx, p.action, region.ID, result.Partial(), proxyErr)

	if proxyErr != nil {
		log.Error("proxy endpoint unreachable", "endpoint", region.ProxyAPI, "error", proxyErr)
		return result, proxyErr
	}

	log.Info("fault operation applied", "affected", len(result.AffectedHandles), "failed", len(result.Failed))
	return result, nil
}

// applyProxies clears faults on every proxy, then sets its enabled state. It returns an
// error only when every proxy failed because the endpoint could not be reached.
func (s *Service) applyProxies(ctx context.Context, log *log.Logger, region domain.Region, p plan, result *domain.OperationResult) error {
	var unreachable int
	var lastErr error

	for _, name := range region.Proxies {
		s.proxies.ClearToxics(ctx, region.ProxyAPI, name)

		if err := s.proxies.SetEnabled(ctx, region.ProxyAPI, name, p.enable); err != nil {
			if errors.Is(err, domain.ErrUnreachableBackend) {
				unreachable++
				lastErr = err
			}
			log.Warn("proxy step failed", "proxy", name, "error", err)
			result.MarkFailed(name, domain.HandleProxy, err)
			continue
		}

		if p.latency {
			s.proxies.AddLatency(ctx, region.ProxyAPI, name, p.latencyMs)
		}
		result.MarkAffected(name)
	}

	if len(region.Proxies) > 0 && unreachable == len(region.Proxies) {
		return fmt.Errorf("region %s: every proxy step failed: %w", region.ID, lastErr)
	}
	return nil
}

func (s *Service) applyUnits(ctx context.Context, log *log.Logger, region domain.Region, p plan, result *domain.OperationResult) {
	if p.unitStep == nil || len(region.Units) == 0 {
		return
	}

	var networkID string
	if p.network {
		networkID = s.runtime.ResolveNetworkID(ctx)
		log.Debug("using network", "network", networkID)
	}

	for _, unit := range region.Units {
		if err := p.unitStep(ctx, log, unit, networkID); err != nil {
			log.Warn("unit step failed", "unit", unit, "error", err)
			result.MarkFailed(unit, domain.HandleUnit, err)
			continue
		}
		result.MarkAffected(unit)
	}
}

// Status computes the health verdict of one region.
func (s *Service) Status(ctx context.Context, regionID string) (*domain.RegionStatus, error) {
	region, err := s.registry.Get(regionID)
	if err != nil {
		return nil, err
	}
	return s.status(ctx, region)
}

func (s *Service) status(ctx context.Context, region domain.Region) (*domain.RegionStatus, error) {
	log := s.log.With("region", region.ID)

	status := &domain.RegionStatus{
		Region:    region.ID,
		Proxies:   make(map[string]domain.Proxy, len(region.Proxies)),
		Processes: make(map[string]bool, len(region.Units)),
	}

	listed, err := s.proxies.List(ctx, region.ProxyAPI)
	if err != nil {
		status.Error = err.Error()
		log.Warn("failed to list proxies", "endpoint", region.ProxyAPI, "error", err)
		return status, fmt.Errorf("status of region %s: %w", region.ID, err)
	}

	enabled := make([]bool, 0, len(region.Proxies))
	for _, name := range region.Proxies {
		proxy, ok := listed[name]
		if !ok {
			proxy = domain.Proxy{Name: name}
		}
		status.Proxies[name] = proxy
		enabled = append(enabled, proxy.Enabled)
	}

	running := make([]bool, 0, len(region.Units))
	for _, unit := range region.Units {
		ok, err := s.runtime.IsRunning(ctx, unit)
		if err != nil {
			// Fail open: an unknown unit counts as running.
			log.Warn("liveness unknown, assuming running", "unit", unit, "error", err)
			ok = true
		}
		status.Processes[unit] = ok
		running = append(running, ok)
	}

	status.ProxiesEnabled, status.ProcessesRunning, status.Up = domain.Verdict(enabled, running)
	return status, nil
}

// StatusAll computes the health verdict of every region concurrently.
// A failing region is reported in its own entry.
func (s *Service) StatusAll(ctx context.Context) map[string]*domain.RegionStatus {
	regions := s.registry.Regions()
	results := make(map[string]*domain.RegionStatus, len(regions))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(maxConcurrentRegions)

	for _, region := range regions {
		g.Go(func() error {
			status, err := s.status(ctx, region)
			if err != nil && status == nil {
				status = &domain.RegionStatus{Region: region.ID, Error: err.Error()}
			}

			mu.Lock()
			results[region.ID] = status
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Regions lists the configured regions.
func (s *Service) Regions() []domain.Region {
	return s.registry.Regions()
}

// Operations returns the operation counts per action.
func (s *Service) Operations() map[domain.Action]int64 {
	return s.recorder.Snapshot()
}
