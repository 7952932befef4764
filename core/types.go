// Package core contains the fundamental types used throughout the picroute
// waveguide router.
package core

import (
	"math"
	"strconv"
)

// Point represents a 2D coordinate in world units (micrometers).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the point translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns the point with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Orientation is a port facing direction in degrees, counterclockwise from
// the +X axis. Routing accepts the four cardinals only; Normalize folds
// arbitrary angles into [0, 360).
type Orientation int

const (
	East  Orientation = 0
	North Orientation = 90
	West  Orientation = 180
	South Orientation = 270
)

// Normalize folds the orientation into [0, 360).
func (o Orientation) Normalize() Orientation {
	return ((o % 360) + 360) % 360
}

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o.Normalize() {
	case East:
		return "East"
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	default:
		return strconv.Itoa(int(o)) + "deg"
	}
}

// Opposite returns the orientation rotated by 180 degrees.
func (o Orientation) Opposite() Orientation {
	return (o + 180).Normalize()
}

// Horizontal reports whether the orientation faces along the X axis
// (East or West). Ports facing along X fan out in Y and vice versa.
func (o Orientation) Horizontal() bool {
	n := o.Normalize()
	return n == East || n == West
}

// Cardinal reports whether the orientation is one of the four cardinals.
func (o Orientation) Cardinal() bool {
	n := o.Normalize()
	return n == East || n == North || n == West || n == South
}

// Vector returns the unit vector pointing along the orientation. The four
// cardinals map to exact axis vectors.
func (o Orientation) Vector() Point {
	switch o.Normalize() {
	case East:
		return Point{X: 1}
	case North:
		return Point{Y: 1}
	case West:
		return Point{X: -1}
	case South:
		return Point{Y: -1}
	}
	rad := float64(o) * math.Pi / 180
	return Point{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Port is a named attachment point on a component: a position, a facing
// direction, and a waveguide width. Ports are value types; the router
// works on copies and never mutates caller ports.
type Port struct {
	Name        string      `json:"name,omitempty"`
	Position    Point       `json:"position"`
	Orientation Orientation `json:"orientation"`
	Width       float64     `json:"width,omitempty"`
}

// Normalized returns a copy of the port with its orientation folded into
// [0, 360).
func (p Port) Normalized() Port {
	p.Orientation = p.Orientation.Normalize()
	return p
}

// Path is an ordered polyline through world space. Routes produced by the
// bundle router are Manhattan paths: every segment is axis-aligned and
// consecutive segments alternate between horizontal and vertical.
type Path struct {
	Points []Point `json:"points"`
}

// Len returns the number of points in the path.
func (p Path) Len() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Start returns the first point of the path.
func (p Path) Start() Point {
	return p.Points[0]
}

// End returns the last point of the path.
func (p Path) End() Point {
	return p.Points[len(p.Points)-1]
}

// Length returns the geometric length of the path centerline.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i-1].DistanceTo(p.Points[i])
	}
	return total
}

// Bounds returns the axis-aligned bounding box of the path. An empty path
// yields the zero bounds.
func (p Path) Bounds() Bounds {
	if p.IsEmpty() {
		return Bounds{}
	}
	b := Bounds{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b = b.Expand(pt)
	}
	return b
}

// Bounds represents a rectangular area in world space.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds, borders included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Expand grows the bounds to include p.
func (b Bounds) Expand(p Point) Bounds {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	return b
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return b.Expand(o.Min).Expand(o.Max)
}
