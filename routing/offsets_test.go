package routing

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"picroute/core"
)

func TestStartOffsets(t *testing.T) {
	tests := []struct {
		name  string
		ports []core.Port
		ref   core.Point
		want  []float64
	}{
		{
			name: "EastBundleMeasuresY",
			ports: []core.Port{
				core.NewPort("a1", 0, 2, core.East, 0.5),
				core.NewPort("a2", 9, 5, core.East, 0.5),
				core.NewPort("a3", 0, -3, core.East, 0.5),
			},
			ref:  core.Point{X: 0, Y: 2},
			want: []float64{0, 3, -5},
		},
		{
			name: "WestBundleMeasuresY",
			ports: []core.Port{
				core.NewPort("a1", 40, 10, core.West, 0.5),
				core.NewPort("a2", 40, 14, core.West, 0.5),
			},
			ref:  core.Point{X: 40, Y: 10},
			want: []float64{0, 4},
		},
		{
			name: "NorthBundleMeasuresX",
			ports: []core.Port{
				core.NewPort("a1", 7, 0, core.North, 0.5),
				core.NewPort("a2", 12, 0, core.North, 0.5),
			},
			ref:  core.Point{X: 7, Y: 0},
			want: []float64{0, 5},
		},
		{
			name: "SouthBundleMeasuresX",
			ports: []core.Port{
				core.NewPort("a1", -4, 60, core.South, 0.5),
				core.NewPort("a2", 0, 60, core.South, 0.5),
			},
			ref:  core.Point{X: 0, Y: 60},
			want: []float64{-4, 0},
		},
		{
			name:  "Empty",
			ports: nil,
			ref:   core.Point{},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOffsets(tt.ports, tt.ref)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("startOffsets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMidOffsets(t *testing.T) {
	tests := []struct {
		name       string
		start      []float64
		separation float64
		want       []float64
		wantErr    bool
	}{
		{
			// The fan grows from the anchored first port with the sign
			// of its neighbor.
			name:       "AnchoredFirst",
			start:      []float64{0, 3, 7},
			separation: 5,
			want:       []float64{0, 5, 10},
		},
		{
			name:       "AnchoredFirstNegative",
			start:      []float64{0, -3, -7},
			separation: 5,
			want:       []float64{0, -5, -10},
		},
		{
			// Anchored at the far end: the fan is built and reversed so
			// the anchored port keeps offset zero.
			name:       "AnchoredLast",
			start:      []float64{7, 3, 0},
			separation: 5,
			want:       []float64{10, 5, 0},
		},
		{
			name:       "AnchoredLastNegative",
			start:      []float64{-7, -3, 0},
			separation: 5,
			want:       []float64{-10, -5, 0},
		},
		{
			name:       "ZeroSeparationKeepsNatural",
			start:      []float64{0, 3, 7},
			separation: 0,
			want:       []float64{0, 3, 7},
		},
		{
			name:       "SinglePort",
			start:      []float64{0},
			separation: 5,
			want:       []float64{0},
		},
		{
			name:       "NoAnchor",
			start:      []float64{-5, 0, 5},
			separation: 2,
			wantErr:    true,
		},
		{
			name:       "BothEndsAnchored",
			start:      []float64{0, 0},
			separation: 2,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := midOffsets(tt.start, tt.separation)

			if tt.wantErr {
				var sepErr *AmbiguousSeparationError
				if !errors.As(err, &sepErr) {
					t.Fatalf("midOffsets() error = %v, want AmbiguousSeparationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("midOffsets() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("midOffsets() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestMidOffsetsDoesNotAliasInput checks that the uniform fan leaves the
// start offsets untouched.
func TestMidOffsetsDoesNotAliasInput(t *testing.T) {
	start := []float64{0, 3, 7}
	mid, err := midOffsets(start, 0)
	if err != nil {
		t.Fatalf("midOffsets() error = %v", err)
	}

	mid[1] = 99
	if start[1] != 3 {
		t.Error("midOffsets() aliases its input")
	}
}

func TestFlipOffsets(t *testing.T) {
	offsets := []float64{0, 3, -7}
	flipOffsets(offsets)

	want := []float64{0, -3, 7}
	if diff := cmp.Diff(want, offsets); diff != "" {
		t.Errorf("flipOffsets() mismatch (-want +got):\n%s", diff)
	}
}
