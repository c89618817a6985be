package in

import (
	"context"

	"github.com/bnema/faultline/internal/domain"
)

// ClusterService defines the contract for observing the data store.
type ClusterService interface {
	Health(ctx context.Context) (*domain.ClusterHealth, error)
	SimulateWrites(ctx context.Context, count int) (*domain.WriteReport, error)
	Transactions(ctx context.Context) (int64, error)
}
