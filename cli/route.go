package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"picroute/assemble"
	"picroute/core"
	"picroute/problem"
	"picroute/routing"
)

// routeOutput is the serialized result of the route command.
type routeOutput struct {
	Name   string       `json:"name,omitempty" yaml:"name,omitempty"`
	Count  int          `json:"count" yaml:"count"`
	Paths  []core.Path  `json:"paths" yaml:"paths"`
	Routes []routeEntry `json:"routes,omitempty" yaml:"routes,omitempty"`
}

// routeEntry carries the assembled form of one route.
type routeEntry struct {
	Length     float64          `json:"length" yaml:"length"`
	Ports      [2]core.Port     `json:"ports" yaml:"ports"`
	Placements []placementEntry `json:"placements" yaml:"placements"`
}

// placementEntry flattens an assemble.Placement into plain data; the
// component is referenced by name.
type placementEntry struct {
	Component string           `json:"component" yaml:"component"`
	Position  core.Point       `json:"position" yaml:"position"`
	Rotation  core.Orientation `json:"rotation" yaml:"rotation"`
	Mirror    bool             `json:"mirror,omitempty" yaml:"mirror,omitempty"`
}

// NewRouteCommand computes the routes of a problem file and emits them
// as JSON or YAML.
func NewRouteCommand() *cobra.Command {
	var (
		input     string
		output    string
		format    string
		parallel  bool
		assembled bool
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute routes for a problem file",
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := problem.Load(input)
			if err != nil {
				return err
			}
			if err := prob.Validate(); err != nil {
				return err
			}

			a, b, waypoints, opts := prob.Routing()
			if parallel {
				opts.Parallel = true
			}
			log().Debug("routing bundle",
				zap.String("problem", prob.Name),
				zap.Int("ports", len(a)),
				zap.Int("waypoints", len(waypoints)))

			paths, err := routing.GenerateBundle(a, b, waypoints, opts)
			if err != nil {
				return err
			}
			out := routeOutput{Name: prob.Name, Count: len(paths), Paths: paths}
			if assembled {
				cfg := prob.Assembly()
				for i, p := range paths {
					r, err := assemble.RoundCorners(p, cfg.Config)
					if err != nil {
						return fmt.Errorf("route %d: %w", i, err)
					}
					out.Routes = append(out.Routes, newRouteEntry(r))
				}
			}

			data, err := encode(out, format)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			log().Info("routes written", zap.String("file", output), zap.Int("count", out.Count))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "problem file (yaml or json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, defaults to stdout")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "route bundle members concurrently")
	cmd.Flags().BoolVar(&assembled, "assemble", false, "include bend and straight placements")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func newRouteEntry(r *assemble.Route) routeEntry {
	e := routeEntry{Length: r.Length, Ports: r.Ports}
	for _, p := range r.Placements {
		e.Placements = append(e.Placements, placementEntry{
			Component: p.Component.Name(),
			Position:  p.Position,
			Rotation:  p.Rotation,
			Mirror:    p.Mirror,
		})
	}
	return e
}

// encode marshals v in the requested format. JSON output is indented
// and newline terminated so it can go straight to a terminal.
func encode(v any, format string) ([]byte, error) {
	switch format {
	case "json", "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		return yaml.Marshal(v)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}
