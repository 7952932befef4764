package assemble

import "fmt"

// FeasibilityError reports a straight stretch too short for the bend
// footprints consumed at its ends.
type FeasibilityError struct {
	Stretch   int     // index of the stretch in the normalized path
	Available float64 // stretch length
	Required  float64 // combined bend footprint the stretch must fit
}

func (e *FeasibilityError) Error() string {
	return fmt.Sprintf("assemble: stretch %d is %g long, its bends consume %g",
		e.Stretch, e.Available, e.Required)
}
