// Package mesh manages GPU-backed box meshes for cabinet panels.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/drewbus/cabview/internal/engine/picking"
	"github.com/drewbus/cabview/pkg/math"
)

// boxVertex is the vertex format for panel boxes.
type boxVertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Box is one axis-aligned box mesh with its own geometry buffers and
// material state. It is tagged with the originating panel's label so
// picking can resolve hits back to panels.
type Box struct {
	label string
	size  math.Vec3

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	color     [3]float32
	position  math.Vec3
	wireframe bool
	highlight bool

	factory  *Factory
	disposed bool
}

// newBox uploads box geometry of the given full extents, centered on
// the local origin. Must be called with a current OpenGL context.
func newBox(label string, size math.Vec3, colorHex string) (*Box, error) {
	rgb, err := ParseHexColor(colorHex)
	if err != nil {
		return nil, fmt.Errorf("panel %q: %w", label, err)
	}

	b := &Box{
		label: label,
		size:  size,
		color: rgb,
	}

	vertices, indices := boxGeometry(size.Scale(0.5))

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(boxVertex{})), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(boxVertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)

	gl.BindVertexArray(0)

	b.indexCount = int32(len(indices))
	return b, nil
}

// boxGeometry builds the 24-vertex, 36-index box with per-face normals.
func boxGeometry(half math.Vec3) ([]boxVertex, []uint32) {
	x, y, z := half.X, half.Y, half.Z

	// Faces ordered front, back, left, right, top, bottom.
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
	}

	vertices := make([]boxVertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range f.corners {
			vertices = append(vertices, boxVertex{Position: c, Normal: f.normal})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// Label returns the originating panel's label.
func (b *Box) Label() string {
	return b.label
}

// Position returns the box center in world space.
func (b *Box) Position() math.Vec3 {
	return b.position
}

// SetPosition moves the box center to a world-space point.
func (b *Box) SetPosition(p math.Vec3) {
	b.position = p
}

// SetWireframe toggles wireframe drawing for this box.
func (b *Box) SetWireframe(on bool) {
	b.wireframe = on
}

// Wireframe reports whether the box draws as wireframe.
func (b *Box) Wireframe() bool {
	return b.wireframe
}

// SetHighlight toggles the selection highlight tint.
func (b *Box) SetHighlight(on bool) {
	b.highlight = on
}

// Highlight reports whether the selection tint is active.
func (b *Box) Highlight() bool {
	return b.highlight
}

// Color returns the base material color.
func (b *Box) Color() [3]float32 {
	return b.color
}

// Bounds returns the current world-space bounding box.
func (b *Box) Bounds() picking.AABB {
	return picking.FromCenterSize(b.position, b.size)
}

// VAO returns the vertex array for drawing.
func (b *Box) VAO() uint32 {
	return b.vao
}

// IndexCount returns the number of element indices to draw.
func (b *Box) IndexCount() int32 {
	return b.indexCount
}

// Dispose releases the box's GPU buffers and removes it from its
// factory. Safe to call more than once.
func (b *Box) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true

	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	b.indexCount = 0

	if b.factory != nil {
		b.factory.remove(b)
	}
}
