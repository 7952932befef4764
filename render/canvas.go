package render

import "strings"

// Canvas is a grid of runes that routes are drawn onto. Overlapping
// box-drawing characters merge into junctions, so two routes crossing
// at a cell come out as ┼ instead of one overwriting the other.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
}

// NewCanvas creates a canvas of width x height cells filled with
// spaces. Returns nil if either dimension is not positive.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]rune, height)
	for y := range cells {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		cells[y] = row
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Rows exposes the underlying rune grid, row major with the top row
// first.
func (c *Canvas) Rows() [][]rune {
	return c.cells
}

// Get returns the rune at (x, y), or a space when out of bounds.
func (c *Canvas) Get(x, y int) rune {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ' '
	}
	return c.cells[y][x]
}

// Set merges r into the cell at (x, y). Writes outside the canvas are
// dropped so partially visible routes draw cleanly.
func (c *Canvas) Set(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = merge(c.cells[y][x], r)
}

// SetOver writes r without merging. Port and waypoint markers use it
// to stay visible on top of route lines.
func (c *Canvas) SetOver(x, y int, r rune) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = r
}

// String renders the canvas as newline separated rows, without a
// trailing newline.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.height * (c.width + 1))
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

// mergeRules maps pairs of overlapping characters to the character
// carrying the union of their line arms. Pairs are looked up in both
// orders, so each entry appears once.
var mergeRules = map[[2]rune]rune{
	// crossing lines
	{'─', '│'}: '┼',

	// corner over a perpendicular line
	{'╭', '─'}: '┬',
	{'╮', '─'}: '┬',
	{'╰', '─'}: '┴',
	{'╯', '─'}: '┴',
	{'╭', '│'}: '├',
	{'╰', '│'}: '├',
	{'╮', '│'}: '┤',
	{'╯', '│'}: '┤',

	// corner over corner
	{'╭', '╯'}: '┼',
	{'╮', '╰'}: '┼',
	{'╭', '╮'}: '┬',
	{'╰', '╯'}: '┴',
	{'╭', '╰'}: '├',
	{'╮', '╯'}: '┤',

	// tee over a line or corner that adds the missing arm
	{'┬', '│'}: '┼',
	{'┴', '│'}: '┼',
	{'├', '─'}: '┼',
	{'┤', '─'}: '┼',
	{'┬', '╰'}: '┼',
	{'┬', '╯'}: '┼',
	{'┴', '╭'}: '┼',
	{'┴', '╮'}: '┼',
	{'├', '╮'}: '┼',
	{'├', '╯'}: '┼',
	{'┤', '╭'}: '┼',
	{'┤', '╰'}: '┼',
	{'┬', '┴'}: '┼',
	{'├', '┤'}: '┼',
	{'┬', '├'}: '┼',
	{'┬', '┤'}: '┼',
	{'┴', '├'}: '┼',
	{'┴', '┤'}: '┼',

	// ASCII fallbacks
	{'-', '|'}: '+',
	{'+', '-'}: '+',
	{'+', '|'}: '+',
}

// merge combines the character already in a cell with a new one. Equal
// characters and blank cells are trivial, a full cross absorbs
// anything, and unknown pairs keep the existing character.
func merge(existing, next rune) rune {
	switch {
	case existing == 0 || existing == ' ':
		return next
	case existing == next:
		return existing
	case existing == '┼' || next == '┼':
		return '┼'
	}
	if r, ok := mergeRules[[2]rune{existing, next}]; ok {
		return r
	}
	if r, ok := mergeRules[[2]rune{next, existing}]; ok {
		return r
	}
	return existing
}
