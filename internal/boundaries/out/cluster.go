package out

import (
	"context"

	"github.com/bnema/faultline/internal/domain"
)

// ClusterProbe observes the data store from the SQL side and drives a demo write workload.
type ClusterProbe interface {
	// Health queries node, range and replica counts.
	Health(ctx context.Context) (*domain.ClusterHealth, error)

	// SimulateWrites inserts count rows one connection at a time.
	SimulateWrites(ctx context.Context, count int) (*domain.WriteReport, error)

	// Transactions returns the number of successful simulated writes so far.
	Transactions() int64
}
