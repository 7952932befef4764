// Package render draws routed bundles as box-drawing text. Routes are
// projected through a Viewport onto a rune Canvas; corners follow the
// travel direction and crossings merge into junction characters.
package render

import "picroute/core"

// Cell is a single canvas cell produced by rasterizing a route.
type Cell struct {
	X, Y int
	R    rune
}

// gridPoint is a route vertex in canvas coordinates.
type gridPoint struct {
	x, y int
}

type direction int

const (
	dirNone direction = iota
	dirEast
	dirWest
	dirNorth
	dirSouth
)

// stepDirection classifies the move between two cells. North is up on
// screen, which is decreasing y.
func stepDirection(from, to gridPoint) direction {
	switch {
	case to.x > from.x:
		return dirEast
	case to.x < from.x:
		return dirWest
	case to.y < from.y:
		return dirNorth
	case to.y > from.y:
		return dirSouth
	}
	return dirNone
}

// step advances one cell in the given direction.
func step(p gridPoint, d direction) gridPoint {
	switch d {
	case dirEast:
		p.x++
	case dirWest:
		p.x--
	case dirNorth:
		p.y--
	case dirSouth:
		p.y++
	}
	return p
}

// cornerRune picks the character for a vertex entered travelling in
// and left travelling out. Collinear vertices degrade to a straight
// line, full reversals to a cross.
func cornerRune(in, out direction, st Style) rune {
	switch {
	case in == dirEast && out == dirSouth, in == dirNorth && out == dirWest:
		return st.TopRight
	case in == dirEast && out == dirNorth, in == dirSouth && out == dirWest:
		return st.BottomRight
	case in == dirWest && out == dirSouth, in == dirNorth && out == dirEast:
		return st.TopLeft
	case in == dirWest && out == dirNorth, in == dirSouth && out == dirEast:
		return st.BottomLeft
	case in == out:
		if in == dirEast || in == dirWest {
			return st.Horizontal
		}
		return st.Vertical
	}
	return st.Cross
}

// projectPath maps every path vertex through the viewport, dropping
// consecutive duplicates that appear when the scale collapses short
// segments.
func projectPath(v Viewport, path core.Path) []gridPoint {
	pts := make([]gridPoint, 0, path.Len())
	for _, wp := range path.Points {
		x, y := v.Cell(wp)
		g := gridPoint{x: x, y: y}
		if n := len(pts); n > 0 && pts[n-1] == g {
			continue
		}
		pts = append(pts, g)
	}
	return pts
}

// PathCells rasterizes one route polyline into canvas cells. Corner
// characters are resolved per vertex up front and segments drawn
// around them, so a route never clobbers its own corners. Axis aligned
// input stays axis aligned under projection, which keeps every step a
// straight walk.
func PathCells(v Viewport, path core.Path, st Style) []Cell {
	pts := projectPath(v, path)
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return []Cell{{X: pts[0].x, Y: pts[0].y, R: st.Horizontal}}
	}

	corners := make([]rune, len(pts))
	for i := 1; i < len(pts)-1; i++ {
		in := stepDirection(pts[i-1], pts[i])
		out := stepDirection(pts[i], pts[i+1])
		corners[i] = cornerRune(in, out, st)
	}

	var cells []Cell
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		d := stepDirection(a, b)
		line := st.Horizontal
		if d == dirNorth || d == dirSouth {
			line = st.Vertical
		}
		if i == 0 {
			cells = append(cells, Cell{X: a.x, Y: a.y, R: line})
		}
		for c := step(a, d); c != b; c = step(c, d) {
			cells = append(cells, Cell{X: c.x, Y: c.y, R: line})
		}
		if r := corners[i+1]; r != 0 {
			cells = append(cells, Cell{X: b.x, Y: b.y, R: r})
		} else {
			cells = append(cells, Cell{X: b.x, Y: b.y, R: line})
		}
	}
	return cells
}

// Compose rasterizes routes and markers onto a fresh canvas. Routes
// merge with each other at crossings; waypoint and port markers are
// stamped on top afterwards, ports last.
func Compose(paths []core.Path, ports []core.Port, waypoints []core.Point, v Viewport, st Style) *Canvas {
	c := NewCanvas(v.Width, v.Height)
	if c == nil {
		return nil
	}
	for _, p := range paths {
		for _, cl := range PathCells(v, p, st) {
			c.Set(cl.X, cl.Y, cl.R)
		}
	}
	for _, wp := range waypoints {
		x, y := v.Cell(wp)
		c.SetOver(x, y, st.Waypoint)
	}
	for _, pt := range ports {
		x, y := v.Cell(pt.Position)
		c.SetOver(x, y, st.Port)
	}
	return c
}

// Options controls Render output. The zero value draws on a 100x30
// canvas with Unicode characters and no markers.
type Options struct {
	Width     int  // canvas width in cells, default 100
	Height    int  // canvas height in cells, default 30
	Margin    int  // blank cells kept around the drawing
	ASCII     bool // draw with ASCII characters only
	Ports     []core.Port
	Waypoints []core.Point
}

// Render fits a viewport around the routes and markers and returns the
// drawing as a string. With nothing to draw it returns the empty
// string.
func Render(paths []core.Path, opts Options) string {
	if len(paths) == 0 && len(opts.Ports) == 0 && len(opts.Waypoints) == 0 {
		return ""
	}
	width := opts.Width
	if width <= 0 {
		width = 100
	}
	height := opts.Height
	if height <= 0 {
		height = 30
	}
	st := DefaultStyle
	if opts.ASCII {
		st = ASCIIStyle
	}
	world := WorldBounds(paths, opts.Ports, opts.Waypoints)
	v := FitViewport(world, width, height, opts.Margin)
	c := Compose(paths, opts.Ports, opts.Waypoints, v, st)
	if c == nil {
		return ""
	}
	return c.String()
}
