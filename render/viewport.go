package render

import (
	"math"

	"picroute/core"
)

// Viewport maps world coordinates onto canvas cells. World Y grows
// upward while canvas rows grow downward, so the vertical axis flips.
// The two axes scale independently; routes are axis aligned, so their
// shape survives anisotropic scaling and the drawing fills the canvas
// whatever the aspect ratio.
type Viewport struct {
	World  core.Bounds
	Width  int
	Height int
	Margin int
}

// FitViewport builds a viewport that projects world onto a
// width x height cell grid, keeping a blank margin on every side.
func FitViewport(world core.Bounds, width, height, margin int) Viewport {
	if margin < 0 {
		margin = 0
	}
	return Viewport{World: world, Width: width, Height: height, Margin: margin}
}

// Cell projects a world point to canvas coordinates. Points outside
// the world window land outside the canvas.
func (v Viewport) Cell(p core.Point) (x, y int) {
	innerW := v.Width - 1 - 2*v.Margin
	if innerW < 0 {
		innerW = 0
	}
	innerH := v.Height - 1 - 2*v.Margin
	if innerH < 0 {
		innerH = 0
	}
	x = v.Margin
	if w := v.World.Width(); w > 0 {
		x += int(math.Round((p.X - v.World.Min.X) / w * float64(innerW)))
	} else {
		x += innerW / 2
	}
	y = v.Margin + innerH
	if h := v.World.Height(); h > 0 {
		y -= int(math.Round((p.Y - v.World.Min.Y) / h * float64(innerH)))
	} else {
		y -= innerH / 2
	}
	return x, y
}

// Pan shifts the world window by a fraction of its own size. Positive
// dx moves the view toward larger X, positive dy toward larger Y.
func (v Viewport) Pan(dx, dy float64) Viewport {
	w := v.World.Width()
	h := v.World.Height()
	ref := math.Max(w, h)
	if ref == 0 {
		ref = 1
	}
	if w == 0 {
		w = ref
	}
	if h == 0 {
		h = ref
	}
	shift := core.Point{X: w * dx, Y: h * dy}
	v.World.Min = v.World.Min.Add(shift)
	v.World.Max = v.World.Max.Add(shift)
	return v
}

// Zoom scales the world window about its center. Factors below 1 zoom
// in, factors above 1 zoom out. Non positive factors are ignored.
func (v Viewport) Zoom(factor float64) Viewport {
	if factor <= 0 {
		return v
	}
	cx := (v.World.Min.X + v.World.Max.X) / 2
	cy := (v.World.Min.Y + v.World.Max.Y) / 2
	hw := v.World.Width() / 2 * factor
	hh := v.World.Height() / 2 * factor
	v.World = core.Bounds{
		Min: core.Point{X: cx - hw, Y: cy - hh},
		Max: core.Point{X: cx + hw, Y: cy + hh},
	}
	return v
}

// WorldBounds is the smallest box covering every route, port and
// waypoint. With no geometry at all it returns the zero bounds.
func WorldBounds(paths []core.Path, ports []core.Port, waypoints []core.Point) core.Bounds {
	var b core.Bounds
	seeded := false
	seed := func(p core.Point) {
		if !seeded {
			b = core.Bounds{Min: p, Max: p}
			seeded = true
			return
		}
		b = b.Expand(p)
	}
	for _, path := range paths {
		for _, p := range path.Points {
			seed(p)
		}
	}
	for _, pt := range ports {
		seed(pt.Position)
	}
	for _, p := range waypoints {
		seed(p)
	}
	return b
}
