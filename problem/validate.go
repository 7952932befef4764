package problem

import (
	"errors"
	"fmt"

	"picroute/core"
)

// Validate checks the problem for structural errors and reports every
// violation it finds, joined into one error of *ValidationError values.
// Waypoint geometry is not checked here; the router validates it.
func (p *Problem) Validate() error {
	var errs []error

	errs = append(errs, p.Start.validate("start")...)
	errs = append(errs, p.End.validate("end")...)

	if len(errs) == 0 && p.Start.Count() != p.End.Count() {
		errs = append(errs, &ValidationError{
			Field: "end",
			Msg:   fmt.Sprintf("%d ports, start has %d", p.End.Count(), p.Start.Count()),
		})
	}
	if p.Separation < 0 {
		errs = append(errs, &ValidationError{Field: "separation", Msg: "must not be negative"})
	}

	if cs := p.Cross; cs != nil {
		if cs.Width <= 0 {
			errs = append(errs, &ValidationError{Field: "cross_section.width", Msg: "must be positive"})
		}
		if cs.Radius <= 0 {
			errs = append(errs, &ValidationError{Field: "cross_section.radius", Msg: "must be positive"})
		}
		if cs.AutoWiden {
			if cs.WidthWide <= cs.Width {
				errs = append(errs, &ValidationError{Field: "cross_section.width_wide", Msg: "must exceed width when auto_widen is set"})
			}
			if cs.TaperLength <= 0 {
				errs = append(errs, &ValidationError{Field: "cross_section.taper_length", Msg: "must be positive when auto_widen is set"})
			}
		}
	}

	return errors.Join(errs...)
}

func (b Bank) validate(field string) []error {
	var errs []error

	if !core.Orientation(b.Orientation).Cardinal() {
		errs = append(errs, &ValidationError{
			Field: field + ".orientation",
			Msg:   fmt.Sprintf("%s is not a cardinal direction", core.Orientation(b.Orientation)),
		})
	}
	if b.Width < 0 {
		errs = append(errs, &ValidationError{Field: field + ".width", Msg: "must not be negative"})
	}

	switch {
	case len(b.Ports) > 0 && b.Array != nil:
		errs = append(errs, &ValidationError{Field: field, Msg: "set either ports or array, not both"})
	case len(b.Ports) == 0 && b.Array == nil:
		errs = append(errs, &ValidationError{Field: field, Msg: "needs ports or an array"})
	case b.Array != nil:
		if b.Array.Count < 1 {
			errs = append(errs, &ValidationError{Field: field + ".array.count", Msg: "must be at least 1"})
		}
		if b.Array.Count > 1 && b.Array.Pitch == 0 {
			errs = append(errs, &ValidationError{Field: field + ".array.pitch", Msg: "must not be zero for more than one port"})
		}
	}
	return errs
}
