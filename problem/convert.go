package problem

import (
	"fmt"

	"picroute/assemble"
	"picroute/core"
	"picroute/routing"
)

// Routing returns the two port banks, the waypoint list and the router
// options described by the problem. Bank widths default to the cross
// section width; bank prefixes default to "a" and "b".
func (p *Problem) Routing() ([]core.Port, []core.Port, []core.Point, routing.Options) {
	width := p.crossSection().Width
	a := p.Start.build("a", width)
	b := p.End.build("b", width)

	waypoints := make([]core.Point, len(p.Waypoints))
	copy(waypoints, p.Waypoints)

	return a, b, waypoints, routing.Options{
		Separation: p.Separation,
		KeepOrder:  p.KeepOrder,
		Parallel:   p.Parallel,
	}
}

// Assembly returns the bundle assembly configuration described by the
// problem. Component factories stay at their reference defaults;
// callers with custom components override the returned config.
func (p *Problem) Assembly() assemble.BundleConfig {
	return assemble.BundleConfig{
		Config: assemble.Config{Cross: p.crossSection()},
		Routing: routing.Options{
			Separation: p.Separation,
			KeepOrder:  p.KeepOrder,
			Parallel:   p.Parallel,
		},
	}
}

func (p *Problem) crossSection() assemble.CrossSection {
	if p.Cross != nil {
		return *p.Cross
	}
	return assemble.Strip()
}

// build materializes the bank into named router ports.
func (b Bank) build(defaultPrefix string, defaultWidth float64) []core.Port {
	prefix := b.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	width := b.Width
	if width == 0 {
		width = defaultWidth
	}
	o := core.Orientation(b.Orientation)

	if b.Array != nil {
		return core.PortArray(prefix, b.Array.Origin, b.Array.Pitch, b.Array.Count, o, width)
	}
	ports := make([]core.Port, len(b.Ports))
	for i, pos := range b.Ports {
		ports[i] = core.NewPort(fmt.Sprintf("%s%d", prefix, i+1), pos.X, pos.Y, o, width)
	}
	return ports
}
