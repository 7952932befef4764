// Package geometry provides tolerance-aware segment math for Manhattan
// waveguide routing.
package geometry

import (
	"math"

	"picroute/core"
)

// Tolerance is the coordinate slack under which a segment counts as
// axis-aligned. Layout tools emit coordinates on a nanometer grid, so
// anything below 1e-5 micrometers is noise.
const Tolerance = 1e-5

// Segment is a directed straight stretch between two points.
type Segment struct {
	A, B core.Point
}

// Axis classifies the direction of a segment.
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the string representation of an Axis.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "skew"
	}
}

// Horizontal reports whether the segment's endpoints share a Y
// coordinate within Tolerance.
func (s Segment) Horizontal() bool {
	return math.Abs(s.B.Y-s.A.Y) < Tolerance
}

// Vertical reports whether the segment's endpoints share an X coordinate
// within Tolerance.
func (s Segment) Vertical() bool {
	return math.Abs(s.B.X-s.A.X) < Tolerance
}

// Axis returns the segment's axis, or AxisNone for a skew segment.
// A degenerate point-segment counts as horizontal.
func (s Segment) Axis() Axis {
	switch {
	case s.Horizontal():
		return AxisHorizontal
	case s.Vertical():
		return AxisVertical
	}
	return AxisNone
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.DistanceTo(s.B)
}

// SegmentSign returns the travel direction along the segment's own axis:
// sign(B.Y-A.Y) for vertical segments, sign(B.X-A.X) for horizontal ones.
// Vertical wins for degenerate segments; skew segments yield 0.
func SegmentSign(s Segment) float64 {
	if s.Vertical() {
		return Sign(s.B.Y - s.A.Y)
	}
	if s.Horizontal() {
		return Sign(s.B.X - s.A.X)
	}
	return 0
}

// Displace returns a copy of s shifted perpendicular to its axis by d
// scaled with the segment's travel sign: horizontal segments shift along
// +Y, vertical segments along -X. The opposed axis signs keep a positive
// offset on one consistent side of the path through every corner; both
// routing and its tests rely on this exact convention. Skew segments
// cannot be displaced and report ok = false.
func Displace(s Segment, d float64) (Segment, bool) {
	sign := SegmentSign(s)
	var dp core.Point
	switch {
	case s.Horizontal():
		dp = core.Point{X: 0, Y: sign * d}
	case s.Vertical():
		dp = core.Point{X: -sign * d, Y: 0}
	default:
		return Segment{}, false
	}
	return Segment{A: s.A.Add(dp), B: s.B.Add(dp)}, true
}

// Intersect returns the corner where the lines through one horizontal and
// one vertical segment cross: the vertical segment fixes X, the
// horizontal segment fixes Y. Any other pairing reports ok = false.
func Intersect(s1, s2 Segment) (core.Point, bool) {
	switch {
	case s1.Horizontal() && s2.Vertical():
		return core.Point{X: s2.A.X, Y: s1.A.Y}, true
	case s2.Horizontal() && s1.Vertical():
		return core.Point{X: s1.A.X, Y: s2.A.Y}, true
	}
	return core.Point{}, false
}

// PathSegments decomposes a polyline into its consecutive segments.
func PathSegments(points []core.Point) []Segment {
	if len(points) < 2 {
		return nil
	}
	segs := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		segs = append(segs, Segment{A: points[i-1], B: points[i]})
	}
	return segs
}
