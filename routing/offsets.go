package routing

import (
	"picroute/core"
	"picroute/geometry"
)

// startOffsets measures each port's signed distance from the reference
// point along the bundle's fan axis: Y for ports facing East or West,
// X otherwise.
func startOffsets(ports []core.Port, ref core.Point) []float64 {
	if len(ports) == 0 {
		return nil
	}
	offsets := make([]float64, len(ports))
	horizontal := ports[0].Orientation.Horizontal()
	for i, p := range ports {
		if horizontal {
			offsets[i] = p.Position.Y - ref.Y
		} else {
			offsets[i] = p.Position.X - ref.X
		}
	}
	return offsets
}

// midOffsets spreads the bundle to a uniform pitch for the stretch along
// the waypoint path. The reference port, offset exactly zero, anchors the
// fan from one end of the bundle; the fan grows away from it with the
// sign of its neighbor's offset. Zero separation keeps the natural
// start offsets, as does a single-port bundle. A bundle anchored at both
// ends, or at neither, fails with AmbiguousSeparationError.
func midOffsets(start []float64, separation float64) ([]float64, error) {
	out := make([]float64, len(start))
	if separation == 0 || len(start) < 2 {
		copy(out, start)
		return out, nil
	}

	first, last := start[0], start[len(start)-1]
	switch {
	case first == 0 && last == 0:
		return nil, &AmbiguousSeparationError{First: first, Last: last}
	case first == 0:
		sign := geometry.Sign(start[1])
		for i := range out {
			out[i] = sign * separation * float64(i)
		}
	case last == 0:
		sign := geometry.Sign(start[len(start)-2])
		for i := range out {
			out[i] = sign * separation * float64(i)
		}
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	default:
		return nil, &AmbiguousSeparationError{First: first, Last: last}
	}
	return out, nil
}

// flipOffsets negates a slice of offsets in place. Bundles facing North
// or South measure offsets along X, whose displacement convention runs
// opposite to Y, so both offset lists flip after the fan is computed.
func flipOffsets(offsets []float64) {
	for i := range offsets {
		offsets[i] = -offsets[i]
	}
}
