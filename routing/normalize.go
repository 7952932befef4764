package routing

import (
	"fmt"
	"math"

	"picroute/core"
	"picroute/geometry"
)

// NormalizePath returns a copy of points with coincident neighbors
// dropped and collinear runs collapsed to their endpoints, so that the
// remaining segments strictly alternate between horizontal and vertical.
// A path that still contains a skew segment after collapsing fails with
// InvalidPathError. NormalizePath is idempotent and never aliases or
// mutates its input.
func NormalizePath(points []core.Point) ([]core.Point, error) {
	if len(points) < 2 {
		return nil, &InvalidPathError{
			Index:  -1,
			Reason: fmt.Sprintf("need at least 2 waypoints, got %d", len(points)),
		}
	}

	// Drop consecutive points that coincide within tolerance. Their
	// direction is undefined and they carry no geometry.
	cleaned := make([]core.Point, 0, len(points))
	cleaned = append(cleaned, points[0])
	for _, p := range points[1:] {
		last := cleaned[len(cleaned)-1]
		if math.Abs(p.X-last.X) < geometry.Tolerance && math.Abs(p.Y-last.Y) < geometry.Tolerance {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) < 2 {
		return nil, &InvalidPathError{Index: -1, Reason: "all waypoints coincide"}
	}

	// Keep an interior point only where the axis of travel changes.
	// A reversal along the same axis counts as flat and collapses too.
	out := make([]core.Point, 0, len(cleaned))
	out = append(out, cleaned[0])
	for i := 1; i < len(cleaned)-1; i++ {
		in := geometry.Segment{A: out[len(out)-1], B: cleaned[i]}
		next := geometry.Segment{A: cleaned[i], B: cleaned[i+1]}
		if sameAxis(in, next) {
			continue
		}
		out = append(out, cleaned[i])
	}
	out = append(out, cleaned[len(cleaned)-1])

	for i, s := range geometry.PathSegments(out) {
		if s.Axis() == geometry.AxisNone {
			return nil, &InvalidPathError{
				Index:   i,
				Segment: s,
				Reason:  "neither horizontal nor vertical",
			}
		}
	}
	return out, nil
}

func sameAxis(a, b geometry.Segment) bool {
	if a.Horizontal() && b.Horizontal() {
		return true
	}
	return a.Vertical() && b.Vertical()
}
