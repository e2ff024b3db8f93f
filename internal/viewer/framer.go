package viewer

import (
	"github.com/chewxy/math32"

	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/internal/engine/picking"
	"github.com/drewbus/cabview/pkg/math"
)

// Distance multiplier applied to the largest bounds span when framing.
const frameDistanceFactor = 1.8

// Diagonal view pose used after a rebuild.
const (
	frameYaw   = 0.785398 // 45 degrees
	framePitch = 0.5
)

// FrameCamera positions the camera to show the whole assembly. The
// assembly is centered at the origin by centroid subtraction, so the
// orbit target snaps to the origin and the distance scales with the
// largest axis span of the bounds. Called on rebuild only; flag-only
// updates leave the camera alone.
func FrameCamera(cam *camera.Orbit, bounds picking.AABB) {
	if cam == nil {
		return
	}

	size := bounds.Size()
	span := math32.Max(size.X, math32.Max(size.Y, size.Z))

	cam.SetTarget(math.Vec3{})
	cam.SetPose(frameYaw, framePitch, span*frameDistanceFactor)
	cam.Snap()
}
