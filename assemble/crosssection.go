package assemble

// CrossSection describes the waveguide profile a route is assembled
// with. Width and Radius drive placement geometry. The auto-widen
// fields swap long straight stretches for a wider waveguide between
// two tapers, which cuts propagation loss on long runs.
type CrossSection struct {
	Width  float64 `json:"width" yaml:"width"`
	Radius float64 `json:"radius" yaml:"radius"`

	AutoWiden         bool    `json:"auto_widen,omitempty" yaml:"auto_widen,omitempty"`
	WidthWide         float64 `json:"width_wide,omitempty" yaml:"width_wide,omitempty"`
	TaperLength       float64 `json:"taper_length,omitempty" yaml:"taper_length,omitempty"`
	MinStraightLength float64 `json:"min_straight_length,omitempty" yaml:"min_straight_length,omitempty"`
}

// Strip returns the default single-mode strip profile.
func Strip() CrossSection {
	return CrossSection{
		Width:             0.5,
		Radius:            10,
		WidthWide:         2,
		TaperLength:       15,
		MinStraightLength: 0.01,
	}
}
