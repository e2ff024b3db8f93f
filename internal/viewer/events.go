package viewer

import "github.com/drewbus/cabview/internal/cabinet"

// Event is one discrete state transition applied to the viewer. Each
// mutation of viewer state flows through exactly one of the concrete
// event types below, so the update path stays auditable.
type Event interface {
	event()
}

// PanelsChanged replaces the panel list and triggers a full mesh
// rebuild. An empty list clears the scene.
type PanelsChanged struct {
	Panels []cabinet.Panel
}

// ExplodedToggled switches the exploded view on or off. Meshes are
// repositioned in place without geometry churn.
type ExplodedToggled struct {
	Exploded bool
}

// WireframeToggled switches wireframe drawing on or off. Material-only.
type WireframeToggled struct {
	Wireframe bool
}

// SelectionChanged sets the selected panel label; empty clears the
// selection. Material-only.
type SelectionChanged struct {
	Label string
}

func (PanelsChanged) event()    {}
func (ExplodedToggled) event()  {}
func (WireframeToggled) event() {}
func (SelectionChanged) event() {}
