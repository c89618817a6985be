package domain

// RegionStatus is the point-in-time health verdict of a region.
// Up holds only if at least one proxy is enabled and every process unit is running.
type RegionStatus struct {
	Region           string
	Up               bool
	Proxies          map[string]Proxy
	ProxiesEnabled   bool
	Processes        map[string]bool
	ProcessesRunning bool
	Error            string
}

// Verdict combines the two health signals of a region.
// Proxies are OR-ed (one open path is enough), units are AND-ed (all nodes must run).
func Verdict(proxiesEnabled []bool, unitsRunning []bool) (anyEnabled, allRunning, up bool) {
	for _, enabled := range proxiesEnabled {
		if enabled {
			anyEnabled = true
			break
		}
	}

	allRunning = true
	for _, running := range unitsRunning {
		if !running {
			allRunning = false
			break
		}
	}

	return anyEnabled, allRunning, anyEnabled && allRunning
}
