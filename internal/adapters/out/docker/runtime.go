// Package docker implements the process runtime adapter using Docker API.
package docker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"

	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// Defaults for the runtime.
const (
	DefaultCallTimeout     = 10 * time.Second
	DefaultStopTimeout     = 10 // seconds
	DefaultFallbackNetwork = "bridge"
)

// Ensure Runtime implements out.ProcessRuntime.
var _ out.ProcessRuntime = (*Runtime)(nil)

// Config holds the runtime settings.
type Config struct {
	// CallTimeout bounds each Docker API call.
	CallTimeout time.Duration
	// StopTimeout is the grace period in seconds given to a graceful stop.
	StopTimeout int
	// NetworkCandidates are network names tried first when resolving the shared network.
	NetworkCandidates []string
	// FallbackNetwork is returned when no probe finds the shared network.
	FallbackNetwork string
	// KnownUnits are inspected for their attachment when no candidate network exists.
	KnownUnits []string
}

// Runtime implements the ProcessRuntime interface using Docker API.
type Runtime struct {
	client *client.Client
	cfg    Config
	log    *log.Logger
}

// NewRuntime creates a new Docker runtime instance from the environment.
func NewRuntime(cfg Config, logger *log.Logger) (*Runtime, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return NewRuntimeWithClient(cli, cfg, logger), nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client, cfg Config, logger *log.Logger) *Runtime {
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = DefaultCallTimeout
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = DefaultStopTimeout
	}
	if cfg.FallbackNetwork == "" {
		cfg.FallbackNetwork = DefaultFallbackNetwork
	}

	return &Runtime{
		client: cli,
		cfg:    cfg,
		log:    logger.With("adapter", "docker"),
	}
}

// Close releases the underlying Docker client.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// IsRunning reports whether the container runs. A missing container is not running.
func (r *Runtime) IsRunning(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	resp, err := r.client.ContainerInspect(ctx, name)
	if err != nil {
		if errdefs.IsNotFound(err) {
			r.log.Debug("container not found", "unit", name)
			return false, nil
		}
		return false, classify(err, "inspect", name)
	}

	if resp.ContainerJSONBase == nil || resp.State == nil {
		return false, nil
	}
	return resp.State.Running, nil
}

// Stop stops a container gracefully.
func (r *Runtime) Stop(ctx context.Context, name string) error {
	log := r.log.With("action", "Stop", "unit", name)
	timeout := r.cfg.StopTimeout

	// The stop itself may take the whole grace period.
	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout+time.Duration(timeout)*time.Second)
	defer cancel()

	if err := r.client.ContainerStop(ctx, name, container.StopOptions{Timeout: &timeout}); err != nil {
		return classify(err, "stop", name)
	}

	log.Info("container stopped")
	return nil
}

// Kill stops a container by sending a SIGKILL. Killing a stopped container succeeds.
func (r *Runtime) Kill(ctx context.Context, name string) error {
	log := r.log.With("action", "Kill", "unit", name)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	if err := r.client.ContainerKill(ctx, name, "SIGKILL"); err != nil {
		if errdefs.IsConflict(err) {
			log.Debug("container already stopped")
			return nil
		}
		return classify(err, "kill", name)
	}

	log.Info("container killed")
	return nil
}

// Start starts a container. Starting a running container succeeds.
func (r *Runtime) Start(ctx context.Context, name string) error {
	log := r.log.With("action", "Start", "unit", name)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	if err := r.client.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return classify(err, "start", name)
	}

	log.Info("container started")
	return nil
}

// DisconnectNetwork detaches a container from a network. A detached container is left alone.
func (r *Runtime) DisconnectNetwork(ctx context.Context, name, networkID string) error {
	log := r.log.With("action", "DisconnectNetwork", "unit", name, "network", networkID)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	attached, err := r.attached(ctx, name, networkID)
	if err != nil {
		return err
	}
	if !attached {
		log.Debug("container not attached, nothing to disconnect")
		return nil
	}

	if err := r.client.NetworkDisconnect(ctx, networkID, name, true); err != nil {
		return classify(err, "disconnect", name)
	}

	log.Info("container disconnected")
	return nil
}

// ReconnectNetwork attaches a container to a network. An attached container is left alone.
func (r *Runtime) ReconnectNetwork(ctx context.Context, name, networkID string) error {
	log := r.log.With("action", "ReconnectNetwork", "unit", name, "network", networkID)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	attached, err := r.attached(ctx, name, networkID)
	if err != nil {
		return err
	}
	if attached {
		log.Debug("container already attached")
		return nil
	}

	if err := r.client.NetworkConnect(ctx, networkID, name, nil); err != nil {
		// Lost a race with another reconnect.
		if errdefs.IsConflict(err) || strings.Contains(err.Error(), "already exists") {
			log.Debug("container already attached")
			return nil
		}
		return classify(err, "reconnect", name)
	}

	log.Info("container reconnected")
	return nil
}

// ResolveNetworkID discovers the network shared by the managed containers.
func (r *Runtime) ResolveNetworkID(ctx context.Context) string {
	probes := []NetworkProbe{
		CandidateNamesProbe(r.networkExists, r.cfg.NetworkCandidates),
		AttachmentProbe(r.attachments, r.cfg.KnownUnits),
	}

	id := ResolveNetwork(ctx, probes, r.cfg.FallbackNetwork)
	r.log.Debug("network resolved", "network", id)
	return id
}

// attached reports whether the container is attached to the network, matched by name or id.
func (r *Runtime) attached(ctx context.Context, name, networkID string) (bool, error) {
	resp, err := r.client.ContainerInspect(ctx, name)
	if err != nil {
		return false, classify(err, "inspect", name)
	}
	if resp.NetworkSettings == nil {
		return false, nil
	}

	for netName, ep := range resp.NetworkSettings.Networks {
		if netName == networkID || (ep != nil && ep.NetworkID == networkID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Runtime) networkExists(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	resp, err := r.client.NetworkInspect(ctx, name, network.InspectOptions{})
	if err != nil {
		return "", classify(err, "inspect network", name)
	}
	if resp.Name != "" {
		return resp.Name, nil
	}
	return name, nil
}

func (r *Runtime) attachments(ctx context.Context, unit string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	resp, err := r.client.ContainerInspect(ctx, unit)
	if err != nil {
		return nil, classify(err, "inspect", unit)
	}
	if resp.NetworkSettings == nil {
		return nil, nil
	}

	names := make([]string, 0, len(resp.NetworkSettings.Networks))
	for netName := range resp.NetworkSettings.Networks {
		names = append(names, netName)
	}
	return names, nil
}

// classify maps Docker errors onto domain errors.
func classify(err error, op, name string) error {
	if errdefs.IsNotFound(err) {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrNotFound, op, name, err)
	}
	return fmt.Errorf("%w: %s %s: %v", domain.ErrUnreachableBackend, op, name, err)
}
