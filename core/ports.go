package core

import "fmt"

// NewPort builds a port at (x, y) facing o.
func NewPort(name string, x, y float64, o Orientation, width float64) Port {
	return Port{
		Name:        name,
		Position:    Point{X: x, Y: y},
		Orientation: o,
		Width:       width,
	}
}

// PortArray builds a linear bank of n equally spaced ports sharing one
// orientation, the usual shape of a coupler or pad row. The bank starts
// at origin and steps by pitch along the fan axis: ports facing East or
// West stack in Y, ports facing North or South stack in X. Ports are
// named prefix1..prefixN.
func PortArray(prefix string, origin Point, pitch float64, n int, o Orientation, width float64) []Port {
	ports := make([]Port, 0, n)
	for i := 0; i < n; i++ {
		pos := origin
		if o.Horizontal() {
			pos.Y += pitch * float64(i)
		} else {
			pos.X += pitch * float64(i)
		}
		ports = append(ports, Port{
			Name:        fmt.Sprintf("%s%d", prefix, i+1),
			Position:    pos,
			Orientation: o,
			Width:       width,
		})
	}
	return ports
}
