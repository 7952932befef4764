// Package assemble turns Manhattan backbone paths into placed
// component sequences: a bend at every corner, straights in between,
// and tapers onto wider straights where the cross section asks for
// them. It is the boundary of the router: placements carry position,
// rotation and mirror for black-box components, polygon generation
// stays with the caller.
package assemble

import (
	"picroute/core"
	"picroute/geometry"
	"picroute/routing"
)

// Placement positions one component on a route. The component's o1
// port lands on Position, the component is rotated by Rotation around
// it, and Mirror reflects it across the o1 axis before rotating. Bends
// are mirrored on clockwise turns.
type Placement struct {
	Component Component
	Position  core.Point
	Rotation  core.Orientation
	Mirror    bool
}

// Route is one assembled bundle member: placements in path order, the
// exposed end ports, and the total centerline length.
type Route struct {
	Placements []Placement
	Ports      [2]core.Port
	Length     float64
}

// Config selects the cross section and the component factories used
// during assembly. Nil factories fall back to the reference
// footprints.
type Config struct {
	Cross    CrossSection
	Bend     BendFactory
	Straight StraightFactory
	Taper    TaperFactory
}

func (c Config) bendFactory() BendFactory {
	if c.Bend != nil {
		return c.Bend
	}
	return CircularBend
}

func (c Config) straightFactory() StraightFactory {
	if c.Straight != nil {
		return c.Straight
	}
	return Straight
}

func (c Config) taperFactory() TaperFactory {
	if c.Taper != nil {
		return c.Taper
	}
	return Taper
}

// RoundCorners replaces every corner of a Manhattan path with a bend
// placement and fills the stretches between them with straights. The
// path is normalized first, so collinear runs and duplicate points are
// accepted. Each interior corner consumes one bend leg from both
// adjacent stretches; a stretch shorter than its consumed legs fails
// with a FeasibilityError.
func RoundCorners(path core.Path, cfg Config) (*Route, error) {
	points, err := routing.NormalizePath(path.Points)
	if err != nil {
		return nil, err
	}
	segs := geometry.PathSegments(points)

	bend, err := cfg.bendFactory()(cfg.Cross)
	if err != nil {
		return nil, err
	}
	leg, err := bendLeg(bend)
	if err != nil {
		return nil, err
	}

	for j, s := range segs {
		var need float64
		if j > 0 {
			need += leg
		}
		if j < len(segs)-1 {
			need += leg
		}
		if s.Length() < need-geometry.Tolerance {
			return nil, &FeasibilityError{Stretch: j, Available: s.Length(), Required: need}
		}
	}

	r := &Route{}
	for j, s := range segs {
		dir := geometry.SnapAngle(geometry.AngleDeg(s.A, s.B))
		start, end := s.A, s.B
		if j > 0 {
			start = start.Add(dir.Vector().Scale(leg))
		}
		if j < len(segs)-1 {
			end = end.Add(dir.Vector().Scale(-leg))
		}

		if err := r.fillStretch(start, end, dir, cfg); err != nil {
			return nil, err
		}

		if j < len(segs)-1 {
			next := segs[j+1]
			nextDir := geometry.SnapAngle(geometry.AngleDeg(next.A, next.B))
			r.place(bend, end, dir, turnsClockwise(dir, nextDir))
		}
	}

	firstDir := geometry.SnapAngle(geometry.AngleDeg(segs[0].A, segs[0].B))
	lastSeg := segs[len(segs)-1]
	lastDir := geometry.SnapAngle(geometry.AngleDeg(lastSeg.A, lastSeg.B))
	r.Ports = [2]core.Port{
		{Name: "o1", Position: points[0], Orientation: firstDir.Opposite(), Width: cfg.Cross.Width},
		{Name: "o2", Position: points[len(points)-1], Orientation: lastDir, Width: cfg.Cross.Width},
	}
	return r, nil
}

// place appends a placement and accounts for its centerline length.
func (r *Route) place(c Component, at core.Point, rot core.Orientation, mirror bool) {
	r.Placements = append(r.Placements, Placement{Component: c, Position: at, Rotation: rot, Mirror: mirror})
	r.Length += c.Length()
}

// fillStretch covers the straight run from start to end. Stretches long
// enough for two tapers plus the minimum straight get a widened middle
// when AutoWiden is set; the closing taper is placed backwards so its
// narrow port meets the continuation.
func (r *Route) fillStretch(start, end core.Point, dir core.Orientation, cfg Config) error {
	length := start.DistanceTo(end)
	if length < geometry.Tolerance {
		return nil
	}

	cs := cfg.Cross
	if cs.AutoWiden && length > 2*cs.TaperLength+cs.MinStraightLength {
		taper, err := cfg.taperFactory()(cs.TaperLength, cs.Width, cs.WidthWide)
		if err != nil {
			return err
		}
		wide := cs
		wide.Width = cs.WidthWide
		mid, err := cfg.straightFactory()(length-2*cs.TaperLength, wide)
		if err != nil {
			return err
		}
		r.place(taper, start, dir, false)
		r.place(mid, start.Add(dir.Vector().Scale(cs.TaperLength)), dir, false)
		r.place(taper, end, dir.Opposite(), false)
		return nil
	}

	s, err := cfg.straightFactory()(length, cs)
	if err != nil {
		return err
	}
	r.place(s, start, dir, false)
	return nil
}

// turnsClockwise reports whether the heading change from in to out is
// a right turn, read off the cross product of the direction vectors.
func turnsClockwise(in, out core.Orientation) bool {
	a, b := in.Vector(), out.Vector()
	return a.X*b.Y-a.Y*b.X < 0
}
