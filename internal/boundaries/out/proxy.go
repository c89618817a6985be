// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Toxiproxy, Docker, CockroachDB, etc.).
package out

import (
	"context"

	"github.com/bnema/faultline/internal/domain"
)

// ProxyClient defines the contract for a traffic-control proxy fleet.
// Every call addresses a proxy by its name on a given API endpoint.
type ProxyClient interface {
	// List returns every proxy known to the endpoint, keyed by name.
	// Fails with domain.ErrUnreachableBackend on transport errors.
	List(ctx context.Context, endpoint string) (map[string]domain.Proxy, error)

	// SetEnabled enables or disables a proxy. Fails with domain.ErrNotFound when
	// the endpoint has no such proxy and domain.ErrUnreachableBackend otherwise.
	SetEnabled(ctx context.Context, endpoint, name string, enabled bool) error

	// AddLatency installs or replaces the downstream latency fault.
	// Best effort: failures are logged, never returned.
	AddLatency(ctx context.Context, endpoint, name string, ms int)

	// ClearToxics removes every fault from the proxy.
	// Best effort: failures are logged, never returned.
	ClearToxics(ctx context.Context, endpoint, name string)
}
