// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/faultline/internal/domain"
)

// FaultService defines the contract for regional fault injection.
type FaultService interface {
	// Kill forcefully terminates every unit of the region and closes its proxies.
	Kill(ctx context.Context, region string) (*domain.OperationResult, error)

	// Stop gracefully stops every unit of the region and closes its proxies.
	Stop(ctx context.Context, region string) (*domain.OperationResult, error)

	// Partition detaches every unit from the shared network and closes the proxies.
	Partition(ctx context.Context, region string) (*domain.OperationResult, error)

	// Brownout keeps the region reachable but adds latency to its proxies.
	Brownout(ctx context.Context, region string, latencyMs int) (*domain.OperationResult, error)

	// Recover reattaches and starts every unit and reopens the proxies.
	Recover(ctx context.Context, region string) (*domain.OperationResult, error)

	// Status computes the health verdict of one region.
	Status(ctx context.Context, region string) (*domain.RegionStatus, error)

	// StatusAll computes the health verdict of every region.
	StatusAll(ctx context.Context) map[string]*domain.RegionStatus

	// Regions lists the configured regions.
	Regions() []domain.Region

	// Operations returns the operation counts per action.
	Operations() map[domain.Action]int64
}
