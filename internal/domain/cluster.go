package domain

import "time"

// ClusterHealth is a snapshot of the data store as seen through SQL.
type ClusterHealth struct {
	Nodes     int
	Ranges    int
	Replicas  int
	Timestamp time.Time
}

// WriteReport summarizes a batch of simulated writes.
type WriteReport struct {
	Success    int
	Failed     int
	TotalCount int64
}
