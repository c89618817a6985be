package dto

// HandleFailureResponse describes a handle an operation could not affect.
type HandleFailureResponse struct {
	Handle string `json:"handle"`
	Kind   string `json:"kind"`
	Error  string `json:"error"`
}

// OperationResponse is returned by the fault endpoints.
type OperationResponse struct {
	OK              bool                    `json:"ok"`
	Region          string                  `json:"region"`
	Action          string                  `json:"action"`
	AffectedHandles []string                `json:"affectedHandles"`
	Failed          []HandleFailureResponse `json:"failed"`
	LatencyMs       *int                    `json:"latencyMs,omitempty"`
}

// OperationsResponse is returned by /api/operations.
type OperationsResponse struct {
	Operations map[string]int64 `json:"operations"`
	Total      int64            `json:"total"`
}
