package routing

import (
	"fmt"

	"picroute/core"
	"picroute/geometry"
)

// CountMismatchError reports bundles whose ports cannot be paired up.
type CountMismatchError struct {
	Start, End int
}

func (e *CountMismatchError) Error() string {
	if e.Start == 0 && e.End == 0 {
		return "routing: both bundles are empty"
	}
	return fmt.Sprintf("routing: start bundle has %d ports, end bundle has %d", e.Start, e.End)
}

// MixedOrientationError reports a bundle whose ports do not all share one
// facing direction.
type MixedOrientationError struct {
	Bundle string // "start" or "end"
	Port   int    // index of the first offender
	Want   core.Orientation
	Got    core.Orientation
}

func (e *MixedOrientationError) Error() string {
	return fmt.Sprintf("routing: %s bundle port %d faces %v, rest of the bundle faces %v",
		e.Bundle, e.Port, e.Got, e.Want)
}

// InvalidPathError reports a waypoint path the router cannot follow.
type InvalidPathError struct {
	Index   int // offending segment index, -1 when the path as a whole is unusable
	Segment geometry.Segment
	Reason  string
}

func (e *InvalidPathError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("routing: invalid waypoint path: %s", e.Reason)
	}
	return fmt.Sprintf("routing: invalid waypoint path: segment %d (%v -> %v) is %s",
		e.Index, e.Segment.A, e.Segment.B, e.Reason)
}

// UnsupportedPairError reports an orientation pair with no entry in the
// bundle sort table. Only the four cardinal directions are routable.
type UnsupportedPairError struct {
	Start, End core.Orientation
}

func (e *UnsupportedPairError) Error() string {
	return fmt.Sprintf("routing: no sort order for orientation pair %v -> %v; bundle orientations must be cardinal",
		e.Start, e.End)
}

// AmbiguousSeparationError reports a separation request without a usable
// anchor: the port sitting exactly on the reference path must be at one
// end of the sorted bundle, and only one end.
type AmbiguousSeparationError struct {
	First, Last float64
}

func (e *AmbiguousSeparationError) Error() string {
	if e.First == 0 && e.Last == 0 {
		return "routing: separation requested but both bundle ends sit on the reference path, fan direction is ambiguous"
	}
	return fmt.Sprintf("routing: separation requested but neither bundle end sits on the reference path (end offsets %g and %g)",
		e.First, e.Last)
}

// IntersectionError reports two consecutive displaced segments that are
// not perpendicular, so no corner exists between them.
type IntersectionError struct {
	Port  int // index into the sorted bundle
	Index int // way-segment index of the second segment
	Prev  geometry.Segment
	Curr  geometry.Segment
}

func (e *IntersectionError) Error() string {
	return fmt.Sprintf("routing: port %d: way segments %d and %d are %v and %v, need one horizontal and one vertical",
		e.Port, e.Index-1, e.Index, e.Prev.Axis(), e.Curr.Axis())
}
