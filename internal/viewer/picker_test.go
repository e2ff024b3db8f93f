package viewer

import (
	"testing"

	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/pkg/math"
)

// pickViewer builds a viewer with a head-on camera pose so clicks at
// the surface center aim straight down the -Z axis.
func pickViewer(onSelect SelectFunc) (*Viewer, *camera.Orbit) {
	f := &fakeFactory{}
	cam := camera.NewOrbit()
	cam.SetTarget(math.Vec3{})
	cam.SetPose(0, 0, 20)
	cam.Snap()
	v := New(f, cam, onSelect)
	v.Resize(800, 600)
	return v, cam
}

func TestHandleClickSelectsHitPanel(t *testing.T) {
	var got []string
	v, cam := pickViewer(func(label string) { got = append(got, label) })

	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2, Color: "#8B5A2B"},
	}
	if err := v.Apply(PanelsChanged{Panels: panels}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	// Rebuild reframes to a diagonal pose; restore the head-on one.
	cam.SetPose(0, 0, 20)
	cam.Snap()

	v.HandleClick(400, 300)

	if len(got) != 1 || got[0] != "A" {
		t.Fatalf("selection callbacks = %v, want [A]", got)
	}
}

func TestHandleClickOnSelectedClears(t *testing.T) {
	var got []string
	v, cam := pickViewer(func(label string) { got = append(got, label) })

	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2, Color: "#8B5A2B"},
	}
	if err := v.Apply(PanelsChanged{Panels: panels}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	cam.SetPose(0, 0, 20)
	cam.Snap()

	v.HandleClick(400, 300)
	if err := v.Apply(SelectionChanged{Label: got[len(got)-1]}); err != nil {
		t.Fatalf("selection failed: %v", err)
	}
	v.HandleClick(400, 300)

	if last := got[len(got)-1]; last != "" {
		t.Errorf("second click on selected panel reported %q, want clear", last)
	}
}

func TestHandleClickMissClears(t *testing.T) {
	var got []string
	v, cam := pickViewer(func(label string) { got = append(got, label) })

	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2, Color: "#8B5A2B"},
	}
	if err := v.Apply(PanelsChanged{Panels: panels}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	cam.SetPose(0, 0, 20)
	cam.Snap()

	v.HandleClick(0, 0)

	if len(got) != 1 || got[0] != "" {
		t.Errorf("selection callbacks = %v, want one clear", got)
	}
}

func TestHandleClickPicksNearestHit(t *testing.T) {
	var got []string
	v, cam := pickViewer(func(label string) { got = append(got, label) })

	// Both panels sit on the view axis; B ends up closer to the camera
	// after centroid recentering.
	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2, Color: "#8B5A2B"},
		{Label: "B", Z: 10, Width: 2, Height: 2, Depth: 2, Color: "#CD853F"},
	}
	if err := v.Apply(PanelsChanged{Panels: panels}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	cam.SetPose(0, 0, 20)
	cam.Snap()

	v.HandleClick(400, 300)

	if len(got) != 1 || got[0] != "B" {
		t.Errorf("selection callbacks = %v, want [B]", got)
	}
}

func TestHandleClickIgnoredBeforeResize(t *testing.T) {
	var got []string
	f := &fakeFactory{}
	cam := camera.NewOrbit()
	v := New(f, cam, func(label string) { got = append(got, label) })

	panels := []cabinet.Panel{
		{Label: "A", Width: 2, Height: 2, Depth: 2, Color: "#8B5A2B"},
	}
	if err := v.Apply(PanelsChanged{Panels: panels}); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	v.HandleClick(400, 300)

	if len(got) != 0 {
		t.Errorf("click without a surface size reported %v, want nothing", got)
	}
}
