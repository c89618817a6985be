package out

import "context"

// ProcessRuntime defines the contract for out-of-process control of named workload units.
// Each call targets one unit and is independently fallible; all calls are idempotent.
type ProcessRuntime interface {
	// IsRunning reports whether the unit runs. A unit the runtime does not know
	// is reported as not running. An error means liveness could not be determined;
	// callers choose the default.
	IsRunning(ctx context.Context, name string) (bool, error)

	// Stop terminates the unit gracefully.
	Stop(ctx context.Context, name string) error

	// Kill terminates the unit forcefully.
	Kill(ctx context.Context, name string) error

	// Start starts the unit. Starting a running unit succeeds.
	Start(ctx context.Context, name string) error

	// DisconnectNetwork detaches the unit from a network. Detaching a detached unit succeeds.
	DisconnectNetwork(ctx context.Context, name, networkID string) error

	// ReconnectNetwork attaches the unit to a network. Attaching an attached unit succeeds.
	ReconnectNetwork(ctx context.Context, name, networkID string) error

	// ResolveNetworkID discovers the network shared by the managed units. Never fails.
	ResolveNetworkID(ctx context.Context) string
}
