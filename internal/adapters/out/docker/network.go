package docker

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// errNoMatch is returned by a probe that ran but found nothing.
var errNoMatch = errors.New("no matching network")

// defaultNetworks are the built-in Docker networks every container can join.
var defaultNetworks = map[string]bool{"bridge": true, "host": true, "none": true}

// NetworkProbe is one strategy for finding the network shared by the managed units.
type NetworkProbe struct {
	Name string
	Find func(ctx context.Context) (string, error)
}

// ResolveNetwork evaluates probes in order and returns the first network found.
// It returns fallback when every probe fails.
func ResolveNetwork(ctx context.Context, probes []NetworkProbe, fallback string) string {
	for _, probe := range probes {
		if probe.Find == nil {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		id, err := probe.Find(ctx)
		if err == nil && id != "" {
			return id
		}
	}
	return fallback
}

// CandidateNamesProbe tries each known network name in order.
func CandidateNamesProbe(exists func(ctx context.Context, name string) (string, error), names []string) NetworkProbe {
	return NetworkProbe{
		Name: "candidate-names",
		Find: func(ctx context.Context) (string, error) {
			for _, name := range names {
				if id, err := exists(ctx, name); err == nil && id != "" {
					return id, nil
				}
			}
			return "", errNoMatch
		},
	}
}

// AttachmentProbe inspects known units and returns the first user-defined network
// one of them is attached to. Units attached only to a default network yield that
// network when no unit has a user-defined one.
func AttachmentProbe(attachments func(ctx context.Context, unit string) ([]string, error), units []string) NetworkProbe {
	return NetworkProbe{
		Name: "unit-attachment",
		Find: func(ctx context.Context) (string, error) {
			var fallback string
			for _, unit := range units {
				names, err := attachments(ctx, unit)
				if err != nil {
					continue
				}
				sort.Strings(names)
				for _, name := range names {
					if !defaultNetworks[name] {
						return name, nil
					}
					if fallback == "" {
						fallback = name
					}
				}
			}
			if fallback != "" {
				return fallback, nil
			}
			return "", fmt.Errorf("%w among %d units", errNoMatch, len(units))
		},
	}
}
