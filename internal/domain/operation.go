package domain

// Action identifies a compound fault operation.
type Action string

const (
	ActionKill      Action = "kill"
	ActionStop      Action = "stop"
	ActionPartition Action = "partition"
	ActionBrownout  Action = "brownout"
	ActionRecover   Action = "recover"
)

// Actions lists every fault action in display order.
var Actions = []Action{ActionKill, ActionStop, ActionPartition, ActionBrownout, ActionRecover}

// HandleKind distinguishes proxy handles from process-unit handles.
type HandleKind string

const (
	HandleProxy HandleKind = "proxy"
	HandleUnit  HandleKind = "unit"
)

// HandleFailure records one handle a compound operation could not affect.
type HandleFailure struct {
	Handle string
	Kind   HandleKind
	Err    error
}

// OperationResult is the outcome of a compound fault operation.
// A partially applied operation is a normal outcome: AffectedHandles lists what
// succeeded and Failed lists what did not.
type OperationResult struct {
	Region          string
	Action          Action
	AffectedHandles []string
	Failed          []HandleFailure
	LatencyMs       int
}

// Partial reports whether at least one handle failed.
func (r *OperationResult) Partial() bool {
	return len(r.Failed) > 0
}

// MarkAffected records a handle the operation affected.
func (r *OperationResult) MarkAffected(handle string) {
	r.AffectedHandles = append(r.AffectedHandles, handle)
}

// MarkFailed records a handle the operation could not affect.
func (r *OperationResult) MarkFailed(handle string, kind HandleKind, err error) {
	r.Failed = append(r.Failed, HandleFailure{Handle: handle, Kind: kind, Err: err})
}
