package viewer

import (
	"github.com/drewbus/cabview/internal/cabinet"
	"github.com/drewbus/cabview/internal/engine/picking"
	"github.com/drewbus/cabview/pkg/math"
)

// panelBox returns the half-extent box around a panel's center.
func panelBox(p cabinet.Panel) picking.AABB {
	return picking.FromCenterSize(
		math.Vec3{X: p.X, Y: p.Y, Z: p.Z},
		math.Vec3{X: p.Width, Y: p.Height, Z: p.Depth},
	)
}

// ComputeBounds reduces a panel list to its shared axis-aligned
// bounding box. The second return is false for an empty list, which
// callers treat as "no geometry to show", not an error.
func ComputeBounds(panels []cabinet.Panel) (picking.AABB, bool) {
	if len(panels) == 0 {
		return picking.AABB{}, false
	}

	bounds := panelBox(panels[0])
	for _, p := range panels[1:] {
		bounds = picking.Union(bounds, panelBox(p))
	}
	return bounds, true
}

// Centroid returns the bounding box midpoint, used as the layout
// origin when positioning meshes.
func Centroid(bounds picking.AABB) math.Vec3 {
	return bounds.Center()
}
