package viewer

import (
	"testing"

	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/pkg/math"
)

func TestComputeBoundsEmpty(t *testing.T) {
	if _, ok := ComputeBounds(nil); ok {
		t.Error("ComputeBounds(nil) reported bounds, want none")
	}
	if _, ok := ComputeBounds([]cabinet.Panel{}); ok {
		t.Error("ComputeBounds(empty) reported bounds, want none")
	}
}

func TestComputeBoundsTwoPanels(t *testing.T) {
	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2},
		{Label: "B", X: 10, Width: 2, Height: 2, Depth: 2},
	}

	b, ok := ComputeBounds(panels)
	if !ok {
		t.Fatal("ComputeBounds returned none for two panels")
	}

	wantMin := math.Vec3{X: -1, Y: -1, Z: -1}
	wantMax := math.Vec3{X: 11, Y: 1, Z: 1}
	if b.Min != wantMin || b.Max != wantMax {
		t.Errorf("bounds = %+v, want min %v max %v", b, wantMin, wantMax)
	}
}

func TestComputeBoundsOrdering(t *testing.T) {
	panels := []cabinet.Panel{
		{Label: "Left Side", X: -5, Y: 3, Z: 1, Width: 0.75, Height: 34.5, Depth: 24},
		{Label: "Back", X: 2, Y: -7, Z: -3, Width: 22.5, Height: 30, Depth: 0.25},
		{Label: "Toe Kick", X: 9, Y: 0.5, Z: 12, Width: 22.5, Height: 4, Depth: 0.75},
	}

	b, ok := ComputeBounds(panels)
	if !ok {
		t.Fatal("ComputeBounds returned none")
	}
	if b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z {
		t.Errorf("bounds are inverted: %+v", b)
	}

	// The union must contain every individual panel box.
	for _, p := range panels {
		pb := panelBox(p)
		if pb.Min.X < b.Min.X || pb.Min.Y < b.Min.Y || pb.Min.Z < b.Min.Z ||
			pb.Max.X > b.Max.X || pb.Max.Y > b.Max.Y || pb.Max.Z > b.Max.Z {
			t.Errorf("panel %q box %+v extends beyond union %+v", p.Label, pb, b)
		}
	}
}

func TestCentroidIsMidpoint(t *testing.T) {
	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2},
		{Label: "B", X: 10, Width: 2, Height: 2, Depth: 2},
	}
	b, _ := ComputeBounds(panels)

	got := Centroid(b)
	want := math.Vec3{X: 5, Y: 0, Z: 0}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}
