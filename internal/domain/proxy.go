package domain

// LatencyToxicName is the name under which the latency fault is installed on a proxy.
const LatencyToxicName = "latency"

// Proxy is the state of a named traffic-control proxy as reported by the proxy backend.
type Proxy struct {
	Name     string
	Listen   string
	Upstream string
	Enabled  bool
	Toxics   []Toxic
}

// Toxic is a named fault descriptor attached to a proxy.
type Toxic struct {
	Name       string
	Type       string
	Stream     string
	Toxicity   float64
	Attributes map[string]int
}

// LatencyToxic builds the downstream latency fault for the given magnitude.
// Jitter is a third of the latency, rounded down.
func LatencyToxic(ms int) Toxic {
	return Toxic{
		Name:     LatencyToxicName,
		Type:     "latency",
		Stream:   "downstream",
		Toxicity: 1.0,
		Attributes: map[string]int{
			"latency": ms,
			"jitter":  ms / 3,
		},
	}
}
