// Package routing generates Manhattan waveguide bundles: it connects two
// banks of ports along a shared waypoint path, fanning the individual
// routes out so they run parallel and never cross.
//
// The pipeline per bundle is fixed: normalize the waypoint path, sort
// both port banks into a non-crossing order, derive per-port lateral
// offsets, displace the path segments by those offsets and intersect
// consecutive displaced segments into corners, then snap each route onto
// its exact end ports. Every step is a pure function over value inputs;
// caller data is never mutated.
package routing

import (
	"golang.org/x/sync/errgroup"

	"picroute/core"
	"picroute/geometry"
)

// Options configures bundle generation. The zero value routes with the
// ports' natural spacing, sorted bundles, and sequential execution.
type Options struct {
	// Separation spreads the routes to a uniform pitch while they run
	// along the waypoint path. Zero keeps each port's natural offset.
	Separation float64

	// KeepOrder pairs ports in caller order instead of sorting both
	// bundles into the non-crossing order for their orientation pair.
	KeepOrder bool

	// Parallel builds the per-port routes concurrently. The result is
	// identical to sequential execution.
	Parallel bool
}

// GenerateBundle routes every port of bundle a to its counterpart in
// bundle b along a shared waypoint path and returns one Manhattan path
// per pair, in sorted-bundle order (SortBundles recovers the pairing).
// The waypoint path is augmented with the positions of a[0] and b[0] in
// caller order; those two reference ports define the nominal route the
// rest of the bundle fans around. Any failure aborts the whole bundle
// with a typed error and no partial results.
func GenerateBundle(a, b []core.Port, waypoints []core.Point, opts Options) ([]core.Path, error) {
	sa, sb, keys, err := prepareBundles(a, b)
	if err != nil {
		return nil, err
	}

	// Reference ports are taken before sorting on purpose: offsets are
	// measured against the caller's first pair.
	aug := make([]core.Point, 0, len(waypoints)+2)
	aug = append(aug, sa[0].Position)
	aug = append(aug, waypoints...)
	aug = append(aug, sb[0].Position)

	if !opts.KeepOrder {
		sortPorts(sa, keys[0])
		sortPorts(sb, keys[1])
	}
	return generate(sa, sb, aug, opts)
}

// Single routes one pair of ports along explicit waypoints. The port
// positions themselves need not appear in the waypoint list.
func Single(src, dst core.Port, waypoints []core.Point) (core.Path, error) {
	paths, err := GenerateBundle([]core.Port{src}, []core.Port{dst}, waypoints, Options{})
	if err != nil {
		return core.Path{}, err
	}
	return paths[0], nil
}

// generate runs the routing kernel for prepared bundles over the
// augmented waypoint path.
func generate(a, b []core.Port, waypoints []core.Point, opts Options) ([]core.Path, error) {
	points, err := NormalizePath(waypoints)
	if err != nil {
		return nil, err
	}
	segs := geometry.PathSegments(points)

	offStart := startOffsets(a, points[0])
	offMid, err := midOffsets(offStart, opts.Separation)
	if err != nil {
		return nil, err
	}
	if !a[0].Orientation.Horizontal() {
		flipOffsets(offStart)
		flipOffsets(offMid)
	}

	paths := make([]core.Path, len(a))
	build := func(i int) error {
		pts, err := buildPath(segs, offStart[i], offMid[i], a[i], b[i], i)
		if err != nil {
			return err
		}
		paths[i] = core.Path{Points: pts}
		return nil
	}

	if opts.Parallel {
		var eg errgroup.Group
		for i := range a {
			i := i
			eg.Go(func() error { return build(i) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range a {
			if err := build(i); err != nil {
				return nil, err
			}
		}
	}
	return paths, nil
}

// buildPath constructs the route for one port pair: displace every way
// segment by the port's offset, intersect consecutive displaced segments
// into corners, then pin both ends onto the exact port positions.
func buildPath(segs []geometry.Segment, offStart, offMid float64, src, dst core.Port, port int) ([]core.Point, error) {
	points := make([]core.Point, 0, len(segs)+1)
	prevOff := offStart

	for j, seg := range segs {
		off := offMid
		if j == 0 {
			off = offStart
		}
		dSeg, ok := geometry.Displace(seg, off)
		if !ok {
			return nil, &InvalidPathError{Index: j, Segment: seg, Reason: "neither horizontal nor vertical"}
		}

		var start core.Point
		if j == 0 {
			start = dSeg.A
		} else {
			prevSeg, ok := geometry.Displace(segs[j-1], prevOff)
			if !ok {
				return nil, &InvalidPathError{Index: j - 1, Segment: segs[j-1], Reason: "neither horizontal nor vertical"}
			}
			corner, ok := geometry.Intersect(dSeg, prevSeg)
			if !ok {
				return nil, &IntersectionError{Port: port, Index: j, Prev: prevSeg, Curr: dSeg}
			}
			start = corner
		}
		points = append(points, start)

		if j == len(segs)-1 {
			points = append(points, dst.Position)
			if dst.Orientation.Horizontal() {
				snapEndY(points, dst.Position.Y)
			} else {
				snapEndX(points, dst.Position.X)
			}
		}
		prevOff = off
	}

	points[0] = src.Position
	return points, nil
}

// snapEndY forces the last two points onto y, keeping their X
// coordinates. Used when the destination bundle faces East or West.
func snapEndY(points []core.Point, y float64) {
	n := len(points)
	points[n-2].Y = y
	points[n-1].Y = y
}

// snapEndX forces the last two points onto x, keeping their Y
// coordinates. Used when the destination bundle faces North or South.
func snapEndX(points []core.Point, x float64) {
	n := len(points)
	points[n-2].X = x
	points[n-1].X = x
}
