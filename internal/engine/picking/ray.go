// Package picking provides ray casting and object picking utilities.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/drewbus/cabview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// FromCenterSize builds an AABB around a center point with full-extent
// dimensions.
func FromCenterSize(center, size math.Vec3) AABB {
	half := size.Scale(0.5)
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// Union returns the smallest AABB enclosing both boxes.
func Union(a, b AABB) AABB {
	return AABB{
		Min: math.Vec3{
			X: math32.Min(a.Min.X, b.Min.X),
			Y: math32.Min(a.Min.Y, b.Min.Y),
			Z: math32.Min(a.Min.Z, b.Min.Z),
		},
		Max: math.Vec3{
			X: math32.Max(a.Max.X, b.Max.X),
			Y: math32.Max(a.Max.Y, b.Max.Y),
			Z: math32.Max(a.Max.Z, b.Max.Z),
		},
	}
}

// Size returns the box extents per axis.
func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the box midpoint.
func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport
// dimensions. invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coords, -1 to 1, Y flipped
	ndcX := 2.0*screenX/viewportW - 1.0
	ndcY := 1.0 - 2.0*screenY/viewportH

	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	dir := math.Vec3{
		X: farWorld[0] - nearWorld[0],
		Y: farWorld[1] - nearWorld[1],
		Z: farWorld[2] - nearWorld[2],
	}.Normalize()

	return Ray{Origin: origin, Direction: dir}
}

// IntersectAABB tests ray intersection with an axis-aligned bounding
// box using the slab method. Returns the distance to intersection and
// whether intersection occurred. If the ray starts inside the box,
// returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	bmin := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	bmax := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (bmin[axis] - origin[axis]) / dir[axis]
			t2 := (bmax[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < bmin[axis] || origin[axis] > bmax[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}

	// Entry point, or exit point if starting inside
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}
