package out

import (
	"context"

	"github.com/bnema/faultline/internal/domain"
)

// OperationRecorder counts fault operations. Implementations must be safe for
// concurrent use since counts are read while operations run.
type OperationRecorder interface {
	// Record counts one operation of the given action against a region.
	Record(ctx context.Context, action domain.Action, region string, partial bool, err error)

	// Snapshot returns the number of operations recorded per action.
	Snapshot() map[domain.Action]int64
}
