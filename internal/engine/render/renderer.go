// Package render draws panel boxes with a flat-lit forward renderer.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/drewbus/cabview/internal/engine/camera"
	"github.com/drewbus/cabview/internal/engine/mesh"
	"github.com/drewbus/cabview/internal/engine/shader"
	"github.com/drewbus/cabview/internal/logger"
	"github.com/drewbus/cabview/pkg/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uColor;
uniform vec3 uEmissive;
uniform float uAlpha;

out vec4 FragColor;

void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightDir);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 lit = (0.35 + 0.65 * diff) * uColor + uEmissive;
    FragColor = vec4(lit, uAlpha);
}
`

// Highlight tint added to the selected panel's material.
var highlightEmissive = [3]float32{0.25, 0.2, 0.05}

// Opacity used while wireframe mode is active.
const wireframeAlpha = 0.35

// Renderer owns the panel shader program and the viewport.
type Renderer struct {
	width  int32
	height int32

	program       uint32
	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locColor      int32
	locEmissive   int32
	locAlpha      int32

	lightDir [3]float32
}

// New creates a renderer. Must be called after the OpenGL context
// exists.
func New(width, height int32) (*Renderer, error) {
	r := &Renderer{
		width:    width,
		height:   height,
		lightDir: [3]float32{0.4, 0.8, 0.6},
	}

	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("panel shader: %w", err)
	}
	r.program = program
	r.locModel = shader.GetUniform(program, "uModel")
	r.locView = shader.GetUniform(program, "uView")
	r.locProjection = shader.GetUniform(program, "uProjection")
	r.locLightDir = shader.GetUniform(program, "uLightDir")
	r.locColor = shader.GetUniform(program, "uColor")
	r.locEmissive = shader.GetUniform(program, "uEmissive")
	r.locAlpha = shader.GetUniform(program, "uAlpha")

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.12, 0.12, 0.15, 1.0)

	logger.Info("renderer created", zap.Int32("width", width), zap.Int32("height", height))
	return r, nil
}

// Resize updates the viewport. Zero or negative dimensions are ignored
// so a collapsed window cannot produce a degenerate aspect ratio.
func (r *Renderer) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		logger.Warn("ignoring degenerate resize",
			zap.Int32("width", width), zap.Int32("height", height))
		return
	}
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	gl.Viewport(0, 0, width, height)
}

// Size returns the current viewport dimensions.
func (r *Renderer) Size() (int32, int32) {
	return r.width, r.height
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	return float32(r.width) / float32(r.height)
}

// Draw clears the frame and renders every live box from the camera's
// point of view.
func (r *Renderer) Draw(cam *camera.Orbit, boxes []*mesh.Box) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if len(boxes) == 0 {
		return
	}

	view := cam.ViewMatrix()
	proj := camera.Projection(r.Aspect())

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, proj.Ptr())
	gl.Uniform3fv(r.locLightDir, 1, &r.lightDir[0])

	for _, b := range boxes {
		pos := b.Position()
		model := math.Translate(pos.X, pos.Y, pos.Z)
		gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())

		color := b.Color()
		gl.Uniform3fv(r.locColor, 1, &color[0])

		emissive := [3]float32{}
		if b.Highlight() {
			emissive = highlightEmissive
		}
		gl.Uniform3fv(r.locEmissive, 1, &emissive[0])

		alpha := float32(1.0)
		if b.Wireframe() {
			alpha = wireframeAlpha
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		} else {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
		gl.Uniform1f(r.locAlpha, alpha)

		gl.BindVertexArray(b.VAO())
		gl.DrawElementsWithOffset(gl.TRIANGLES, b.IndexCount(), gl.UNSIGNED_INT, 0)
	}

	gl.BindVertexArray(0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// Close releases the shader program.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}
