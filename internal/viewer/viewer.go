// Package viewer implements the exploded-view cabinet panel
// visualizer core: bounds and centroid layout, per-role explode
// offsets, mesh lifecycle synchronization, click picking and camera
// framing. Rendering itself is delegated to the engine packages.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/internal/engine/picking"
	"github.com/drewbus/cabview/internal/logger"
	"github.com/drewbus/cabview/pkg/math"
)

// Mesh is one displayable panel body owned by the viewer. Exactly one
// mesh exists per panel, in panel-list order, tagged with the panel's
// label. Dispose must release the underlying geometry and material.
type Mesh interface {
	Label() string
	Position() math.Vec3
	SetPosition(math.Vec3)
	SetWireframe(bool)
	SetHighlight(bool)
	Bounds() picking.AABB
	Dispose()
}

// MeshFactory creates engine meshes for panels. size carries full
// extents, color is a hex string.
type MeshFactory interface {
	NewBox(label string, size math.Vec3, color string) (Mesh, error)
}

// SelectFunc receives selection changes resolved by picking. An empty
// label means the selection was cleared. The host reacts by
// dispatching a SelectionChanged event back into the viewer.
type SelectFunc func(label string)

// Viewer owns the mesh set for the current panel list and applies
// state transitions to it. One instance per mounted view surface.
type Viewer struct {
	factory  MeshFactory
	cam      *camera.Orbit
	onSelect SelectFunc

	// Pick surface size in the same coordinate space as click events
	width  int32
	height int32

	panels   []cabinet.Panel
	meshes   []Mesh
	centroid math.Vec3

	exploded  bool
	wireframe bool
	selected  string // empty = none

	disposed bool
}

// New creates a viewer that builds meshes through factory and frames
// cam after rebuilds. onSelect may be nil.
func New(factory MeshFactory, cam *camera.Orbit, onSelect SelectFunc) *Viewer {
	return &Viewer{
		factory:  factory,
		cam:      cam,
		onSelect: onSelect,
	}
}

// Resize records the pick surface size. Degenerate sizes are ignored;
// the previous size stays in effect.
func (v *Viewer) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
}

// Selected returns the currently selected panel label, if any.
func (v *Viewer) Selected() (string, bool) {
	return v.selected, v.selected != ""
}

// Apply executes one state transition. Flag-only events mutate the
// existing meshes in place; only PanelsChanged rebuilds geometry.
func (v *Viewer) Apply(ev Event) error {
	if v.disposed {
		return fmt.Errorf("viewer is disposed")
	}

	switch e := ev.(type) {
	case PanelsChanged:
		return v.rebuild(e.Panels)

	case ExplodedToggled:
		v.exploded = e.Exploded
		for i, m := range v.meshes {
			m.SetPosition(v.panelPosition(v.panels[i]))
		}

	case WireframeToggled:
		v.wireframe = e.Wireframe
		for _, m := range v.meshes {
			m.SetWireframe(e.Wireframe)
		}

	case SelectionChanged:
		v.selected = e.Label
		for _, m := range v.meshes {
			m.SetHighlight(e.Label != "" && m.Label() == e.Label)
		}

	default:
		return fmt.Errorf("unknown event %T", ev)
	}
	return nil
}

// rebuild replaces the mesh set for a new panel list: every existing
// mesh is disposed first, then one box is created per panel positioned
// by centroid and explode offset, then the camera reframes.
func (v *Viewer) rebuild(panels []cabinet.Panel) error {
	v.clearMeshes()
	v.panels = panels

	bounds, ok := ComputeBounds(panels)
	if !ok {
		v.centroid = math.Vec3{}
		v.clearSelection()
		logger.Debug("panel list empty, scene cleared")
		return nil
	}
	v.centroid = Centroid(bounds)

	// A selection referring to a label absent from the new list is
	// cleared rather than left dangling.
	if v.selected != "" && !hasLabel(panels, v.selected) {
		v.clearSelection()
	}

	for _, p := range panels {
		size := math.Vec3{X: p.Width, Y: p.Height, Z: p.Depth}
		m, err := v.factory.NewBox(p.Label, size, p.Color)
		if err != nil {
			return fmt.Errorf("creating mesh for panel %q: %w", p.Label, err)
		}
		m.SetPosition(v.panelPosition(p))
		m.SetWireframe(v.wireframe)
		if v.selected != "" && p.Label == v.selected {
			m.SetHighlight(true)
		}
		v.meshes = append(v.meshes, m)
	}

	FrameCamera(v.cam, bounds)

	logger.Debug("scene rebuilt",
		zap.Int("panels", len(panels)),
		zap.Bool("exploded", v.exploded))
	return nil
}

// panelPosition computes a mesh position: panel center recentred on
// the assembly centroid, plus the role's explode displacement.
func (v *Viewer) panelPosition(p cabinet.Panel) math.Vec3 {
	base := math.Vec3{X: p.X, Y: p.Y, Z: p.Z}.Sub(v.centroid)
	return base.Add(Offset(p.EffectiveRole(), v.exploded))
}

func (v *Viewer) clearMeshes() {
	for _, m := range v.meshes {
		m.Dispose()
	}
	v.meshes = nil
	v.panels = nil
}

func (v *Viewer) clearSelection() {
	if v.selected == "" {
		return
	}
	v.selected = ""
	if v.onSelect != nil {
		v.onSelect("")
	}
}

func hasLabel(panels []cabinet.Panel, label string) bool {
	for _, p := range panels {
		if p.Label == label {
			return true
		}
	}
	return false
}

// Dispose releases every mesh. Safe to call more than once; the viewer
// rejects further events afterwards.
func (v *Viewer) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.clearMeshes()
}
