package render

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"

	"picroute/core"
)

// TestViewportCell checks the world to canvas projection, including
// the vertical flip and the margin inset.
func TestViewportCell(t *testing.T) {
	v := Viewport{
		World:  core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 80, Y: 30}},
		Width:  11,
		Height: 6,
		Margin: 1,
	}

	tests := []struct {
		name  string
		point core.Point
		wantX int
		wantY int
	}{
		{"min corner is bottom left", core.Point{X: 0, Y: 0}, 1, 4},
		{"max corner is top right", core.Point{X: 80, Y: 30}, 9, 1},
		{"center", core.Point{X: 40, Y: 15}, 5, 2},
		{"quarter", core.Point{X: 20, Y: 10}, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.Cell(tt.point)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Cell(%v) = (%d, %d), want (%d, %d)", tt.point, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestViewportCellFlatWorld centers a zero height world on the middle
// row instead of dividing by zero.
func TestViewportCellFlatWorld(t *testing.T) {
	v := Viewport{
		World:  core.Bounds{Min: core.Point{X: 0, Y: 5}, Max: core.Point{X: 10, Y: 5}},
		Width:  11,
		Height: 5,
	}

	if x, y := v.Cell(core.Point{X: 0, Y: 5}); x != 0 || y != 2 {
		t.Errorf("Cell(0, 5) = (%d, %d), want (0, 2)", x, y)
	}
	if x, y := v.Cell(core.Point{X: 10, Y: 5}); x != 10 || y != 2 {
		t.Errorf("Cell(10, 5) = (%d, %d), want (10, 2)", x, y)
	}
}

// TestViewportPan shifts the world window by fractions of its size.
func TestViewportPan(t *testing.T) {
	v := Viewport{World: core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 100, Y: 50}}}

	got := v.Pan(0.1, 0).World
	want := core.Bounds{Min: core.Point{X: 10, Y: 0}, Max: core.Point{X: 110, Y: 50}}
	if got != want {
		t.Errorf("Pan(0.1, 0) = %+v, want %+v", got, want)
	}

	got = v.Pan(0, -0.5).World
	want = core.Bounds{Min: core.Point{X: 0, Y: -25}, Max: core.Point{X: 100, Y: 25}}
	if got != want {
		t.Errorf("Pan(0, -0.5) = %+v, want %+v", got, want)
	}

	flat := Viewport{World: core.Bounds{Min: core.Point{X: 0, Y: 5}, Max: core.Point{X: 10, Y: 5}}}
	got = flat.Pan(0, 1).World
	want = core.Bounds{Min: core.Point{X: 0, Y: 15}, Max: core.Point{X: 10, Y: 15}}
	if got != want {
		t.Errorf("flat Pan(0, 1) = %+v, want %+v", got, want)
	}
}

// TestViewportZoom scales the world window about its center and
// ignores non positive factors.
func TestViewportZoom(t *testing.T) {
	v := Viewport{World: core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 100, Y: 50}}}

	got := v.Zoom(0.5).World
	want := core.Bounds{Min: core.Point{X: 25, Y: 12.5}, Max: core.Point{X: 75, Y: 37.5}}
	if got != want {
		t.Errorf("Zoom(0.5) = %+v, want %+v", got, want)
	}

	got = v.Zoom(2).World
	want = core.Bounds{Min: core.Point{X: -50, Y: -25}, Max: core.Point{X: 150, Y: 75}}
	if got != want {
		t.Errorf("Zoom(2) = %+v, want %+v", got, want)
	}

	if got := v.Zoom(0).World; got != v.World {
		t.Errorf("Zoom(0) changed the window to %+v", got)
	}
	if got := v.Zoom(-1).World; got != v.World {
		t.Errorf("Zoom(-1) changed the window to %+v", got)
	}
}

// TestWorldBounds covers routes, ports and waypoints together.
func TestWorldBounds(t *testing.T) {
	paths := []core.Path{{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	ports := []core.Port{{Position: core.Point{X: -5, Y: 2}}}
	waypoints := []core.Point{{X: 3, Y: 20}}

	got := WorldBounds(paths, ports, waypoints)
	want := core.Bounds{Min: core.Point{X: -5, Y: 0}, Max: core.Point{X: 10, Y: 20}}
	if got != want {
		t.Errorf("WorldBounds = %+v, want %+v", got, want)
	}

	if got := WorldBounds(nil, nil, nil); got != (core.Bounds{}) {
		t.Errorf("empty WorldBounds = %+v, want zero", got)
	}
}

// TestPathCellsStraight rasterizes a single horizontal route at unit
// scale.
func TestPathCellsStraight(t *testing.T) {
	path := core.Path{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	v := FitViewport(path.Bounds(), 11, 1, 0)

	cells := PathCells(v, path, DefaultStyle)
	if len(cells) != 11 {
		t.Fatalf("got %d cells, want 11", len(cells))
	}
	for i, c := range cells {
		if c.R != '─' || c.Y != 0 || c.X != i {
			t.Errorf("cell %d = %+v, want {%d 0 ─}", i, c, i)
		}
	}
}

// TestPathCellsCorner checks that a route turning from east to north
// gets a bottom right corner and that segments stop short of it.
func TestPathCellsCorner(t *testing.T) {
	path := core.Path{Points: []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}}
	v := FitViewport(path.Bounds(), 5, 4, 0)

	got := PathCells(v, path, DefaultStyle)
	want := []Cell{
		{X: 0, Y: 3, R: '─'},
		{X: 1, Y: 3, R: '─'},
		{X: 2, Y: 3, R: '─'},
		{X: 3, Y: 3, R: '─'},
		{X: 4, Y: 3, R: '╯'},
		{X: 4, Y: 2, R: '│'},
		{X: 4, Y: 1, R: '│'},
		{X: 4, Y: 0, R: '│'},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathCells = %+v, want %+v", got, want)
	}
}

// TestPathCellsCollapsed projects a route so small that every vertex
// lands on one cell.
func TestPathCellsCollapsed(t *testing.T) {
	path := core.Path{Points: []core.Point{{X: 0, Y: 0}, {X: 0.2, Y: 0}, {X: 0.2, Y: 0.1}}}
	world := core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 1, Y: 1}}
	v := FitViewport(world, 2, 2, 0)

	got := PathCells(v, path, DefaultStyle)
	want := []Cell{{X: 0, Y: 1, R: '─'}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathCells = %+v, want %+v", got, want)
	}
}

// TestComposeCrossing draws two perpendicular routes and expects a
// junction where they cross.
func TestComposeCrossing(t *testing.T) {
	paths := []core.Path{
		{Points: []core.Point{{X: 0, Y: 5}, {X: 10, Y: 5}}},
		{Points: []core.Point{{X: 5, Y: 0}, {X: 5, Y: 10}}},
	}
	v := FitViewport(WorldBounds(paths, nil, nil), 11, 11, 0)

	c := Compose(paths, nil, nil, v, DefaultStyle)
	if c == nil {
		t.Fatal("Compose returned nil")
	}
	checks := []struct {
		x, y int
		want rune
	}{
		{5, 5, '┼'},
		{0, 5, '─'},
		{10, 5, '─'},
		{5, 0, '│'},
		{5, 10, '│'},
	}
	for _, ck := range checks {
		if got := c.Get(ck.x, ck.y); got != ck.want {
			t.Errorf("cell (%d, %d) = %q, want %q", ck.x, ck.y, got, ck.want)
		}
	}
}

// TestRenderGolden renders one L shaped route at unit scale and
// compares the full drawing.
func TestRenderGolden(t *testing.T) {
	paths := []core.Path{{Points: []core.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}}}}

	got := Render(paths, Options{Width: 5, Height: 4})
	want := "    │\n    │\n    │\n────╯"
	if got != want {
		t.Errorf("Render =\n%s\nwant\n%s", got, want)
	}
}

// TestRenderMarkers stamps port and waypoint markers on top of the
// route line.
func TestRenderMarkers(t *testing.T) {
	paths := []core.Path{{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	opts := Options{
		Width:  11,
		Height: 1,
		Ports: []core.Port{
			{Position: core.Point{X: 0, Y: 0}},
			{Position: core.Point{X: 10, Y: 0}},
		},
		Waypoints: []core.Point{{X: 5, Y: 0}},
	}

	got := Render(paths, opts)
	want := "●────+────●"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

// TestRenderASCII draws the same scene with the ASCII character set.
func TestRenderASCII(t *testing.T) {
	paths := []core.Path{{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	opts := Options{
		Width:  11,
		Height: 1,
		ASCII:  true,
		Ports: []core.Port{
			{Position: core.Point{X: 0, Y: 0}},
			{Position: core.Point{X: 10, Y: 0}},
		},
		Waypoints: []core.Point{{X: 5, Y: 0}},
	}

	got := Render(paths, opts)
	want := "o----+----o"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

// TestRenderEmpty returns an empty string when there is nothing to
// draw.
func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, Options{}); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
	if got := Render([]core.Path{}, Options{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}

// TestRenderDefaults checks the default canvas size.
func TestRenderDefaults(t *testing.T) {
	paths := []core.Path{{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}

	out := Render(paths, Options{})
	lines := strings.Split(out, "\n")
	if len(lines) != 30 {
		t.Fatalf("got %d rows, want 30", len(lines))
	}
	if w := utf8.RuneCountInString(lines[0]); w != 100 {
		t.Errorf("row width = %d, want 100", w)
	}
	if !strings.ContainsRune(lines[15], '─') {
		t.Errorf("middle row %q has no route line", lines[15])
	}
}
