// Package helpers provides Docker-related test utilities.
package helpers

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/client"
	"github.com/google/uuid"
)

// UnitImage is a small image that stays up until killed.
const UnitImage = "docker.io/library/alpine:3.20"

// NewDockerClient connects to the daemon from the environment, or skips the
// test when none answers.
func NewDockerClient(t *testing.T, ctx context.Context) *client.Client {
	t.Helper()

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		t.Skipf("docker client unavailable: %v", err)
	}
	if _, err := cli.Ping(ctx); err != nil {
		_ = cli.Close()
		t.Skipf("docker daemon unavailable: %v", err)
	}
	return cli
}

// Sandbox owns a network and the unit containers attached to it.
type Sandbox struct {
	cli     *client.Client
	Network string
	Units   []string
}

// NewSandbox creates a uniquely named bridge network. Everything it creates is
// removed when the test ends.
func NewSandbox(t *testing.T, ctx context.Context, cli *client.Client) *Sandbox {
	t.Helper()

	name := "faultline-it-" + uuid.NewString()[:8]
	if _, err := cli.NetworkCreate(ctx, name, network.CreateOptions{Driver: "bridge"}); err != nil {
		t.Fatalf("failed to create network: %v", err)
	}

	s := &Sandbox{cli: cli, Network: name}
	t.Cleanup(func() { s.cleanup(context.Background()) })
	return s
}

// StartUnit pulls UnitImage when missing and runs a container on the sandbox network.
func (s *Sandbox) StartUnit(ctx context.Context, suffix string) (string, error) {
	if _, err := s.cli.ImageInspect(ctx, UnitImage); err != nil {
		rc, err := s.cli.ImagePull(ctx, UnitImage, image.PullOptions{})
		if err != nil {
			return "", fmt.Errorf("failed to pull %s: %w", UnitImage, err)
		}
		_, _ = io.Copy(io.Discard, rc)
		_ = rc.Close()
	}

	name := s.Network + "-" + suffix
	_, err := s.cli.ContainerCreate(ctx,
		&container.Config{Image: UnitImage, Cmd: []string{"sleep", "3600"}},
		&container.HostConfig{NetworkMode: container.NetworkMode(s.Network)},
		nil, nil, name,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}
	s.Units = append(s.Units, name)

	if err := s.cli.ContainerStart(ctx, name, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start %s: %w", name, err)
	}
	return name, nil
}

// Attached reports whether the unit is on the sandbox network.
func (s *Sandbox) Attached(ctx context.Context, unit string) (bool, error) {
	info, err := s.cli.ContainerInspect(ctx, unit)
	if err != nil {
		return false, err
	}
	_, ok := info.NetworkSettings.Networks[s.Network]
	return ok, nil
}

func (s *Sandbox) cleanup(ctx context.Context) {
	for _, unit := range s.Units {
		_ = s.cli.ContainerRemove(ctx, unit, container.RemoveOptions{Force: true})
	}
	_ = s.cli.NetworkRemove(ctx, s.Network)
}
