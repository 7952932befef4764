package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"picroute/assemble"
	"picroute/core"
	"picroute/problem"
	"picroute/render"
	"picroute/routing"
)

// NewCheckCommand validates a problem file, routes and assembles its
// bundle and prints a summary. A problem that parses but cannot be
// built, because the bend radius does not fit between waypoints for
// example, fails here rather than in a fab deck later.
func NewCheckCommand() *cobra.Command {
	var (
		input string
		draw  bool
		ascii bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a problem file and summarize its routes",
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := problem.Load(input)
			if err != nil {
				return err
			}
			if err := prob.Validate(); err != nil {
				return err
			}

			a, b, waypoints, opts := prob.Routing()
			cfg := prob.Assembly()
			cfg.Routing = opts
			routes, err := assemble.Bundle(a, b, waypoints, cfg)
			if err != nil {
				return err
			}
			log().Debug("bundle assembled",
				zap.String("problem", prob.Name),
				zap.Int("routes", len(routes)))

			var total, longest float64
			var components, bends int
			for _, r := range routes {
				total += r.Length
				if r.Length > longest {
					longest = r.Length
				}
				components += len(r.Placements)
				for _, p := range r.Placements {
					if strings.HasPrefix(p.Component.Name(), "bend") {
						bends++
					}
				}
			}

			name := prob.Name
			if name == "" {
				name = filepath.Base(input)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: ok\n", name)
			fmt.Fprintf(w, "  ports:      %d per bank\n", len(a))
			fmt.Fprintf(w, "  waypoints:  %d\n", len(waypoints))
			fmt.Fprintf(w, "  routes:     %d\n", len(routes))
			fmt.Fprintf(w, "  length:     %.4g total, %.4g longest\n", total, longest)
			fmt.Fprintf(w, "  components: %d (%d bends)\n", components, bends)

			if draw {
				paths, err := routing.GenerateBundle(a, b, waypoints, opts)
				if err != nil {
					return err
				}
				ports := make([]core.Port, 0, len(a)+len(b))
				ports = append(ports, a...)
				ports = append(ports, b...)
				fmt.Fprintln(w)
				fmt.Fprintln(w, render.Render(paths, render.Options{
					ASCII:     ascii,
					Margin:    1,
					Ports:     ports,
					Waypoints: waypoints,
				}))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "problem file (yaml or json)")
	cmd.Flags().BoolVar(&draw, "draw", false, "print the routed bundle as text")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "draw with ASCII characters only")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
