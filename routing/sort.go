package routing

import (
	"sort"

	"picroute/core"
)

// sortKey names which port coordinate orders a bundle and in which sense.
type sortKey int

const (
	keyX sortKey = iota
	keyY
	keyNegX
	keyNegY
)

func (k sortKey) value(p core.Port) float64 {
	switch k {
	case keyX:
		return p.Position.X
	case keyY:
		return p.Position.Y
	case keyNegX:
		return -p.Position.X
	default:
		return -p.Position.Y
	}
}

// pairKeys maps a (start, end) orientation pair to the sort keys for the
// two bundles. The sixteen cases are declared outright rather than
// derived from angle arithmetic; the table is the contract.
var pairKeys = map[[2]core.Orientation][2]sortKey{
	{core.East, core.West}:   {keyY, keyY},
	{core.East, core.North}:  {keyY, keyX},
	{core.East, core.East}:   {keyY, keyNegY},
	{core.East, core.South}:  {keyY, keyNegX},
	{core.North, core.East}:  {keyX, keyY},
	{core.North, core.North}: {keyX, keyNegX},
	{core.North, core.West}:  {keyX, keyNegY},
	{core.North, core.South}: {keyX, keyX},
	{core.West, core.North}:  {keyY, keyNegX},
	{core.West, core.East}:   {keyY, keyY},
	{core.West, core.South}:  {keyY, keyX},
	{core.West, core.West}:   {keyY, keyNegY},
	{core.South, core.North}: {keyX, keyX},
	{core.South, core.South}: {keyX, keyNegX},
	{core.South, core.East}:  {keyX, keyNegY},
	{core.South, core.West}:  {keyX, keyY},
}

// SortBundles returns copies of the two bundles ordered so that a route
// from sortedA[i] to sortedB[i] never crosses its neighbors. The order
// is looked up in the orientation-pair table; ties keep their caller
// order. Caller slices are never reordered.
func SortBundles(a, b []core.Port) ([]core.Port, []core.Port, error) {
	sa, sb, keys, err := prepareBundles(a, b)
	if err != nil {
		return nil, nil, err
	}
	sortPorts(sa, keys[0])
	sortPorts(sb, keys[1])
	return sa, sb, nil
}

// prepareBundles validates both bundles, normalizes their orientations
// into owned copies, and resolves the sort keys for the orientation
// pair. The copies come back in caller order, not yet sorted.
func prepareBundles(a, b []core.Port) ([]core.Port, []core.Port, [2]sortKey, error) {
	var keys [2]sortKey
	if len(a) != len(b) || len(a) == 0 {
		return nil, nil, keys, &CountMismatchError{Start: len(a), End: len(b)}
	}

	sa := normalizePorts(a)
	sb := normalizePorts(b)

	startAngle, err := bundleOrientation(sa, "start")
	if err != nil {
		return nil, nil, keys, err
	}
	endAngle, err := bundleOrientation(sb, "end")
	if err != nil {
		return nil, nil, keys, err
	}

	keys, ok := pairKeys[[2]core.Orientation{startAngle, endAngle}]
	if !ok {
		return nil, nil, keys, &UnsupportedPairError{Start: startAngle, End: endAngle}
	}
	return sa, sb, keys, nil
}

func normalizePorts(ports []core.Port) []core.Port {
	out := make([]core.Port, len(ports))
	for i, p := range ports {
		out[i] = p.Normalized()
	}
	return out
}

// bundleOrientation returns the orientation shared by every port in the
// bundle, or MixedOrientationError naming the first port that differs.
func bundleOrientation(ports []core.Port, bundle string) (core.Orientation, error) {
	want := ports[0].Orientation
	for i, p := range ports[1:] {
		if p.Orientation != want {
			return 0, &MixedOrientationError{Bundle: bundle, Port: i + 1, Want: want, Got: p.Orientation}
		}
	}
	return want, nil
}

func sortPorts(ports []core.Port, key sortKey) {
	sort.SliceStable(ports, func(i, j int) bool {
		return key.value(ports[i]) < key.value(ports[j])
	})
}
