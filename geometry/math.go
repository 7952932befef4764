package geometry

import (
	"math"

	"picroute/core"
)

// Sign returns -1, 0, or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// SnapAngle snaps an angle in degrees to the nearest cardinal
// orientation. Angles on an exact diagonal snap to East.
func SnapAngle(deg float64) core.Orientation {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	switch {
	case a > 45 && a < 135:
		return core.North
	case a > 135 && a < 225:
		return core.West
	case a > 225 && a < 315:
		return core.South
	}
	return core.East
}

// AngleDeg returns the direction from a to b in degrees, counterclockwise
// from the +X axis, in [0, 360).
func AngleDeg(a, b core.Point) float64 {
	deg := math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
