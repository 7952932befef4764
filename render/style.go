package render

// Style is the character set used to draw routes. Corner names follow
// screen orientation, so TopLeft is the corner of a route that turns
// between east and south.
type Style struct {
	Horizontal  rune
	Vertical    rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Cross       rune
	Port        rune
	Waypoint    rune
}

// Predefined styles
var (
	// DefaultStyle uses Unicode box-drawing characters with rounded
	// corners.
	DefaultStyle = Style{
		Horizontal:  '─',
		Vertical:    '│',
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Cross:       '┼',
		Port:        '●',
		Waypoint:    '+',
	}

	// ASCIIStyle uses plain ASCII for terminals without Unicode support.
	ASCIIStyle = Style{
		Horizontal:  '-',
		Vertical:    '|',
		TopLeft:     '+',
		TopRight:    '+',
		BottomLeft:  '+',
		BottomRight: '+',
		Cross:       '+',
		Port:        'o',
		Waypoint:    '+',
	}
)
