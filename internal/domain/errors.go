package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Registry errors
	ErrUnknownRegion   = errors.New("unknown region")
	ErrInvalidRegistry = errors.New("invalid region registry")

	// Substrate errors
	ErrUnreachableBackend = errors.New("backend unreachable")
	ErrNotFound           = errors.New("handle not found")

	// Operation errors
	ErrInvalidLatency = errors.New("latency must not be negative")

	// Cluster probe errors
	ErrProbeDisabled = errors.New("cluster probe is not configured")
	ErrInvalidCount  = errors.New("write count out of range")
)
