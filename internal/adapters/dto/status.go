package dto

// ToxicResponse represents a fault installed on a proxy.
type ToxicResponse struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Stream     string         `json:"stream,omitempty"`
	Toxicity   float64        `json:"toxicity"`
	Attributes map[string]int `json:"attributes,omitempty"`
}

// ProxyResponse represents the state of one proxy.
type ProxyResponse struct {
	Name     string          `json:"name"`
	Listen   string          `json:"listen,omitempty"`
	Upstream string          `json:"upstream,omitempty"`
	Enabled  bool            `json:"enabled"`
	Toxics   []ToxicResponse `json:"toxics"`
}

// RegionStatusResponse is returned by the status endpoints. When Error is set the
// region could not be observed and only Up and Error are present.
type RegionStatusResponse struct {
	Up               bool                     `json:"up"`
	Proxies          map[string]ProxyResponse `json:"proxies,omitempty"`
	ProxiesEnabled   *bool                    `json:"proxiesEnabled,omitempty"`
	ProcessesRunning *bool                    `json:"processesRunning,omitempty"`
	Processes        map[string]bool          `json:"processes,omitempty"`
	Error            string                   `json:"error,omitempty"`
}
