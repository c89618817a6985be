package dto

import "time"

// ClusterHealthResponse is returned by /api/cluster-health.
type ClusterHealthResponse struct {
	Nodes     int       `json:"nodes"`
	Ranges    int       `json:"ranges"`
	Replicas  int       `json:"replicas"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionsResponse is returned by /api/transactions.
type TransactionsResponse struct {
	Count     int64     `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// WriteReportResponse is returned by /api/simulate-writes.
type WriteReportResponse struct {
	Success    int   `json:"success"`
	Failed     int   `json:"failed"`
	TotalCount int64 `json:"total_count"`
}

// HealthzResponse is returned by /healthz.
type HealthzResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
