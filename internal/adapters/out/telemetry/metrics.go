package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/bnema/faultline/internal/boundaries/out"
	"github.com/bnema/faultline/internal/domain"
)

// Ensure OperationCounter implements out.OperationRecorder.
var _ out.OperationRecorder = (*OperationCounter)(nil)

// OperationCounter counts fault operations per action. Counts are kept in memory
// for the control surface and mirrored into OTel instruments.
type OperationCounter struct {
	mu     sync.Mutex
	counts map[domain.Action]int64

	total   metric.Int64Counter
	partial metric.Int64Counter
	failed  metric.Int64Counter
}

// NewOperationCounter creates the counter and registers its instruments on meter.
// A nil meter records in memory only.
func NewOperationCounter(meter metric.Meter) (*OperationCounter, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter(MeterName)
	}

	c := &OperationCounter{counts: make(map[domain.Action]int64, len(domain.Actions))}
	var err error

	if c.total, err = meter.Int64Counter("faultline.operations",
		metric.WithDescription("Total fault operations by action and region")); err != nil {
		return nil, err
	}
	if c.partial, err = meter.Int64Counter("faultline.operations.partial",
		metric.WithDescription("Fault operations that left at least one handle unaffected")); err != nil {
		return nil, err
	}
	if c.failed, err = meter.Int64Counter("faultline.operations.failed",
		metric.WithDescription("Fault operations that returned an error")); err != nil {
		return nil, err
	}

	return c, nil
}

// Record counts one operation.
func (c *OperationCounter) Record(ctx context.Context, action domain.Action, region string, partial bool, err error) {
	c.mu.Lock()
	c.counts[action]++
	c.mu.Unlock()

	attrs := metric.WithAttributes(
		attribute.String("action", string(action)),
		attribute.String("region", region),
	)
	c.total.Add(ctx, 1, attrs)
	if partial {
		c.partial.Add(ctx, 1, attrs)
	}
	if err != nil {
		c.failed.Add(ctx, 1, attrs)
	}
}

// Snapshot returns the count of every action, including those never recorded.
func (c *OperationCounter) Snapshot() map[domain.Action]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[domain.Action]int64, len(domain.Actions))
	for _, action := range domain.Actions {
		snapshot[action] = c.counts[action]
	}
	return snapshot
}
