package assemble

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"picroute/core"
	"picroute/routing"
)

// BundleConfig configures full bundle assembly: routing options for
// the backbone paths plus the assembly Config for components.
type BundleConfig struct {
	Config
	Routing routing.Options
}

// Bundle routes every port pair of the two banks along the shared
// waypoints and assembles each backbone path into placed components.
// Any failure aborts the whole bundle with no partial results.
func Bundle(a, b []core.Port, waypoints []core.Point, cfg BundleConfig) ([]*Route, error) {
	paths, err := routing.GenerateBundle(a, b, waypoints, cfg.Routing)
	if err != nil {
		return nil, err
	}

	routes := make([]*Route, len(paths))
	assembleOne := func(i int) error {
		r, err := RoundCorners(paths[i], cfg.Config)
		if err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		routes[i] = r
		return nil
	}

	if cfg.Routing.Parallel {
		var eg errgroup.Group
		for i := range paths {
			i := i
			eg.Go(func() error { return assembleOne(i) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range paths {
			if err := assembleOne(i); err != nil {
				return nil, err
			}
		}
	}
	return routes, nil
}
