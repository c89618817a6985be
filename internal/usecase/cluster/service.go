// Package cluster implements the data store observation use case.
package cluster

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/faultline/internal/boundaries/in"
	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// MaxWrites caps a single simulate-writes batch.
const MaxWrites = 1000

// Ensure Service implements in.ClusterService.
var _ in.ClusterService = (*Service)(nil)

// Service implements the ClusterService interface. A nil probe disables every call.
type Service struct {
	probe out.ClusterProbe
	log   *log.Logger
}

// NewService creates a new cluster service.
func NewService(probe out.ClusterProbe, logger *log.Logger) *Service {
	return &Service{
		probe: probe,
		log:   logger.With("usecase", "cluster"),
	}
}

// Health returns the current cluster counts.
func (s *Service) Health(ctx context.Context) (*domain.ClusterHealth, error) {
	if s.probe == nil {
		return nil, domain.ErrProbeDisabled
	}

	health, err := s.probe.Health(ctx)
	if err != nil {
		s.log.Warn("cluster health unavailable", "error", err)
		return nil, err
	}
	return health, nil
}

// SimulateWrites runs a batch of demo writes against the cluster.
func (s *Service) SimulateWrites(ctx context.Context, count int) (*domain.WriteReport, error) {
	if s.probe == nil {
		return nil, domain.ErrProbeDisabled
	}
	if count < 1 || count > MaxWrites {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidCount, count, MaxWrites)
	}

	// The batch outlives a disconnecting client like fault operations do.
	return s.probe.SimulateWrites(context.WithoutCancel(ctx), count)
}

// Transactions returns the number of successful simulated writes.
func (s *Service) Transactions(_ context.Context) (int64, error) {
	if s.probe == nil {
		return 0, domain.ErrProbeDisabled
	}
	return s.probe.Transactions(), nil
}
