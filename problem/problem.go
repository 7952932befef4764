// Package problem reads declarative routing problems from YAML or
// JSONC files and converts them into the inputs the routing and
// assemble packages take. A problem names two port banks, an optional
// waypoint path between them, and the cross section plus options the
// route should be built with.
package problem

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"picroute/assemble"
	"picroute/core"
)

// Problem is one routing problem as read from a file.
type Problem struct {
	Name       string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Separation float64                `json:"separation,omitempty" yaml:"separation,omitempty"`
	KeepOrder  bool                   `json:"keep_order,omitempty" yaml:"keep_order,omitempty"`
	Parallel   bool                   `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	Cross      *assemble.CrossSection `json:"cross_section,omitempty" yaml:"cross_section,omitempty"`
	Start      Bank                   `json:"start" yaml:"start"`
	End        Bank                   `json:"end" yaml:"end"`
	Waypoints  []core.Point           `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
}

// Bank describes one side of the bundle: a shared facing and width,
// with port positions either listed explicitly or generated as an
// evenly pitched linear array.
type Bank struct {
	Orientation Facing       `json:"orientation" yaml:"orientation"`
	Width       float64      `json:"width,omitempty" yaml:"width,omitempty"`
	Prefix      string       `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Ports       []core.Point `json:"ports,omitempty" yaml:"ports,omitempty"`
	Array       *Array       `json:"array,omitempty" yaml:"array,omitempty"`
}

// Count returns the number of ports the bank describes.
func (b Bank) Count() int {
	if b.Array != nil {
		return b.Array.Count
	}
	return len(b.Ports)
}

// Array generates a linear bank: Count ports from Origin at the given
// Pitch, stepping perpendicular to the bank's facing.
type Array struct {
	Origin core.Point `json:"origin" yaml:"origin"`
	Pitch  float64    `json:"pitch" yaml:"pitch"`
	Count  int        `json:"count" yaml:"count"`
}

// Facing is a core.Orientation that marshals as a cardinal name and
// unmarshals from either a name ("east", "N") or degrees.
type Facing core.Orientation

func (f Facing) name() (string, bool) {
	switch core.Orientation(f).Normalize() {
	case core.East:
		return "east", true
	case core.North:
		return "north", true
	case core.West:
		return "west", true
	case core.South:
		return "south", true
	}
	return "", false
}

func parseFacing(s string) (core.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "e":
		return core.East, nil
	case "north", "n":
		return core.North, nil
	case "west", "w":
		return core.West, nil
	case "south", "s":
		return core.South, nil
	}
	if deg, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return core.Orientation(deg), nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

func (f Facing) MarshalJSON() ([]byte, error) {
	if name, ok := f.name(); ok {
		return json.Marshal(name)
	}
	return json.Marshal(int(f))
}

func (f *Facing) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o, err := parseFacing(s)
		if err != nil {
			return err
		}
		*f = Facing(o)
		return nil
	}
	var deg int
	if err := json.Unmarshal(data, &deg); err != nil {
		return fmt.Errorf("orientation %s is neither a cardinal name nor degrees", data)
	}
	*f = Facing(deg)
	return nil
}

func (f Facing) MarshalYAML() (interface{}, error) {
	if name, ok := f.name(); ok {
		return name, nil
	}
	return int(f), nil
}

func (f *Facing) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		o, err := parseFacing(s)
		if err != nil {
			return err
		}
		*f = Facing(o)
		return nil
	}
	var deg int
	if err := value.Decode(&deg); err != nil {
		return fmt.Errorf("orientation %q is neither a cardinal name nor degrees", value.Value)
	}
	*f = Facing(deg)
	return nil
}
