// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import (
	"fmt"
	"sort"
)

// Region is a logical deployment zone with its own proxy and process-unit handles.
type Region struct {
	ID       string
	ProxyAPI string
	Proxies  []string
	Units    []string
	Color    string
}

// Registry maps region identifiers to their handles. It is immutable once built.
type Registry struct {
	regions map[string]Region
	order   []string
}

// NewRegistry validates the given regions and builds a registry.
// Every proxy name and unit name must belong to exactly one region.
func NewRegistry(regions []Region) (*Registry, error) {
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: no regions configured", ErrInvalidRegistry)
	}

	r := &Registry{
		regions: make(map[string]Region, len(regions)),
		order:   make([]string, 0, len(regions)),
	}
	proxyOwner := make(map[string]string)
	unitOwner := make(map[string]string)

	for _, region := range regions {
		if region.ID == "" {
			return nil, fmt.Errorf("%w: region with empty id", ErrInvalidRegistry)
		}
		if _, exists := r.regions[region.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate region %q", ErrInvalidRegistry, region.ID)
		}
		if region.ProxyAPI == "" {
			return nil, fmt.Errorf("%w: region %q has no proxy api", ErrInvalidRegistry, region.ID)
		}
		if len(region.Proxies) == 0 {
			return nil, fmt.Errorf("%w: region %q has no proxies", ErrInvalidRegistry, region.ID)
		}

		for _, name := range region.Proxies {
			if owner, taken := proxyOwner[name]; taken {
				return nil, fmt.Errorf("%w: proxy %q belongs to %q and %q", ErrInvalidRegistry, name, owner, region.ID)
			}
			proxyOwner[name] = region.ID
		}
		for _, name := range region.Units {
			if owner, taken := unitOwner[name]; taken {
				return nil, fmt.Errorf("%w: unit %q belongs to %q and %q", ErrInvalidRegistry, name, owner, region.ID)
			}
			unitOwner[name] = region.ID
		}

		r.regions[region.ID] = region.clone()
		r.order = append(r.order, region.ID)
	}

	return r, nil
}

// Get returns a copy of the region with the given id.
func (r *Registry) Get(id string) (Region, error) {
	region, ok := r.regions[id]
	if !ok {
		return Region{}, fmt.Errorf("%w: %s", ErrUnknownRegion, id)
	}
	return region.clone(), nil
}

// Regions returns copies of all regions in configuration order.
func (r *Registry) Regions() []Region {
	out := make([]Region, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.regions[id].clone())
	}
	return out
}

// IDs returns the region identifiers sorted alphabetically.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}

// Units returns every unit name across all regions, in configuration order.
func (r *Registry) Units() []string {
	var units []string
	for _, id := range r.order {
		units = append(units, r.regions[id].Units...)
	}
	return units
}

func (r Region) clone() Region {
	r.Proxies = append([]string(nil), r.Proxies...)
	r.Units = append([]string(nil), r.Units...)
	return r
}
