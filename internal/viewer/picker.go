package viewer

import (
	"github.com/chewxy/math32"

	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/internal/engine/picking"
)

// HandleClick converts a pointer click on the render surface into a
// selection toggle. The click is unprojected through the camera into a
// world-space ray and tested against every mesh's bounding box with
// nearest-hit semantics. Hitting the already-selected panel clears the
// selection, hitting another selects it, and a miss always clears.
// The resolved selection is reported through the host callback only;
// viewer state changes when the host dispatches SelectionChanged.
func (v *Viewer) HandleClick(x, y float32) {
	if v.disposed || v.width <= 0 || v.height <= 0 {
		return
	}

	w := float32(v.width)
	h := float32(v.height)
	viewProj := camera.Projection(w / h).Mul(v.cam.ViewMatrix())
	ray := picking.ScreenToRay(x, y, w, h, viewProj.Inverse())

	hitLabel := ""
	nearest := float32(math32.MaxFloat32)
	for _, m := range v.meshes {
		if t, hit := ray.IntersectAABB(m.Bounds()); hit && t < nearest {
			nearest = t
			hitLabel = m.Label()
		}
	}

	next := ""
	if hitLabel != "" && hitLabel != v.selected {
		next = hitLabel
	}
	if v.onSelect != nil {
		v.onSelect(next)
	}
}
