// Package camera provides an orbit camera for the visualizer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/drewbus/cabview/pkg/math"
)

// Projection constants shared by rendering and picking. Both must use
// the same frustum or click rays drift off the drawn geometry.
const (
	FOV  = 0.785398 // 45 degrees, radians
	Near = 0.1
	Far  = 1000.0
)

// Projection returns the perspective projection matrix for the given
// aspect ratio.
func Projection(aspect float32) math.Mat4 {
	return math.Perspective(FOV, aspect, Near, Far)
}

// Orbit orbits around a target point. Drag and zoom input adjusts a
// desired pose; Update eases the visible pose toward it for damping.
type Orbit struct {
	// Desired pose
	target   math.Vec3
	yaw      float32 // horizontal angle, radians
	pitch    float32 // vertical angle, radians
	distance float32

	// Smoothed pose actually used for rendering
	curYaw      float32
	curPitch    float32
	curDistance float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
	Damping         float32 // higher = snappier, 0 disables easing
}

// NewOrbit creates an orbit camera with default settings.
func NewOrbit() *Orbit {
	c := &Orbit{
		yaw:             0.785398,
		pitch:           0.5,
		distance:        80.0,
		MinDistance:     5.0,
		MaxDistance:     500.0,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		Damping:         10.0,
	}
	c.Snap()
	return c
}

// SetTarget sets the point the camera orbits and looks at.
func (c *Orbit) SetTarget(t math.Vec3) {
	c.target = t
}

// SetPose sets the desired yaw, pitch and distance directly.
func (c *Orbit) SetPose(yaw, pitch, distance float32) {
	c.yaw = yaw
	c.pitch = clamp(pitch, c.MinPitch, c.MaxPitch)
	c.distance = clamp(distance, c.MinDistance, c.MaxDistance)
}

// Snap moves the visible pose to the desired pose immediately,
// skipping the damped easing.
func (c *Orbit) Snap() {
	c.curYaw = c.yaw
	c.curPitch = c.pitch
	c.curDistance = c.distance
}

// Update eases the visible pose toward the desired pose. dt is the
// frame delta in seconds.
func (c *Orbit) Update(dt float32) {
	if c.Damping <= 0 {
		c.Snap()
		return
	}
	f := c.Damping * dt
	if f > 1 {
		f = 1
	}
	c.curYaw += (c.yaw - c.curYaw) * f
	c.curPitch += (c.pitch - c.curPitch) * f
	c.curDistance += (c.distance - c.curDistance) * f
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.yaw -= deltaX * c.DragSensitivity
	c.pitch = clamp(c.pitch+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.distance = clamp(c.distance-delta*c.distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	x := c.curDistance * math32.Cos(c.curPitch) * math32.Sin(c.curYaw)
	y := c.curDistance * math32.Sin(c.curPitch)
	z := c.curDistance * math32.Cos(c.curPitch) * math32.Cos(c.curYaw)

	return c.target.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Target returns the current orbit target.
func (c *Orbit) Target() math.Vec3 {
	return c.target
}

// Distance returns the desired orbit distance.
func (c *Orbit) Distance() float32 {
	return c.distance
}

// ViewMatrix returns the view matrix for this camera.
func (c *Orbit) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.target, math.Vec3{Y: 1})
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
