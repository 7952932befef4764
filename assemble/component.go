package assemble

import (
	"fmt"
	"math"

	"picroute/core"
	"picroute/geometry"
)

// Component is a placeable building block. Bends, straights and tapers
// expose their attachment ports in local coordinates plus the length of
// their centerline. Footprints carry no polygons; callers plug in their
// own implementations to attach real geometry. The Ports map is read
// only.
type Component interface {
	Name() string
	Ports() map[string]core.Port
	Length() float64
}

// BendFactory builds the 90 degree bend placed at every corner.
type BendFactory func(cs CrossSection) (Component, error)

// StraightFactory builds a straight of the given centerline length.
type StraightFactory func(length float64, cs CrossSection) (Component, error)

// TaperFactory builds a linear taper between two widths.
type TaperFactory func(length, width1, width2 float64) (Component, error)

type component struct {
	name   string
	ports  map[string]core.Port
	length float64
}

func (c *component) Name() string                { return c.name }
func (c *component) Ports() map[string]core.Port { return c.ports }
func (c *component) Length() float64             { return c.length }

// CircularBend returns the footprint of a quarter circle bend: o1 at
// the origin, o2 one radius along and one radius up, arc length
// pi*Radius/2. Unmirrored, the bend turns counterclockwise.
func CircularBend(cs CrossSection) (Component, error) {
	if cs.Radius <= 0 {
		return nil, fmt.Errorf("assemble: bend radius %g must be positive", cs.Radius)
	}
	return &component{
		name: fmt.Sprintf("bend_circular_R%g", cs.Radius),
		ports: map[string]core.Port{
			"o1": {Name: "o1", Orientation: core.West, Width: cs.Width},
			"o2": {Name: "o2", Position: core.Point{X: cs.Radius, Y: cs.Radius}, Orientation: core.North, Width: cs.Width},
		},
		length: math.Pi * cs.Radius / 2,
	}, nil
}

// Straight returns the footprint of a straight waveguide running from
// o1 at the origin to o2 at (length, 0).
func Straight(length float64, cs CrossSection) (Component, error) {
	if length < 0 {
		return nil, fmt.Errorf("assemble: straight length %g must not be negative", length)
	}
	return &component{
		name: fmt.Sprintf("straight_L%g_W%g", length, cs.Width),
		ports: map[string]core.Port{
			"o1": {Name: "o1", Orientation: core.West, Width: cs.Width},
			"o2": {Name: "o2", Position: core.Point{X: length}, Orientation: core.East, Width: cs.Width},
		},
		length: length,
	}, nil
}

// Taper returns the footprint of a linear taper from width1 at o1 to
// width2 at o2.
func Taper(length, width1, width2 float64) (Component, error) {
	if length <= 0 {
		return nil, fmt.Errorf("assemble: taper length %g must be positive", length)
	}
	return &component{
		name: fmt.Sprintf("taper_L%g_W%g_%g", length, width1, width2),
		ports: map[string]core.Port{
			"o1": {Name: "o1", Orientation: core.West, Width: width1},
			"o2": {Name: "o2", Position: core.Point{X: length}, Orientation: core.East, Width: width2},
		},
		length: length,
	}, nil
}

// bendLeg returns the distance a bend consumes along each adjacent
// stretch, derived from the separation of its two ports.
func bendLeg(bend Component) (float64, error) {
	ports := bend.Ports()
	in, ok := ports["o1"]
	if !ok {
		return 0, fmt.Errorf("assemble: bend %q has no o1 port", bend.Name())
	}
	out, ok := ports["o2"]
	if !ok {
		return 0, fmt.Errorf("assemble: bend %q has no o2 port", bend.Name())
	}
	dx := math.Abs(out.Position.X - in.Position.X)
	dy := math.Abs(out.Position.Y - in.Position.Y)
	if dx < geometry.Tolerance || math.Abs(dx-dy) > geometry.Tolerance {
		return 0, fmt.Errorf("assemble: bend %q spans %g x %g, want a square quarter turn", bend.Name(), dx, dy)
	}
	return dx, nil
}
