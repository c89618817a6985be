package dto

// RegionResponse describes one configured region.
type RegionResponse struct {
	ID       string   `json:"id"`
	Color    string   `json:"color,omitempty"`
	ProxyAPI string   `json:"proxyApi"`
	Proxies  []string `json:"proxies"`
	Units    []string `json:"units"`
}

// RegionsResponse is returned by /api/regions.
type RegionsResponse struct {
	Regions []RegionResponse `json:"regions"`
}
