// Package renderer draws the scene as colored wireframe boxes and debug
// lines with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/physics-scene/internal/engine/debug"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
	"github.com/Faultbox/physics-scene/internal/engine/shader"
	"github.com/Faultbox/physics-scene/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	FOV        float32 // Vertical field of view in degrees
	Near       float32
	Far        float32
	ClearColor [3]float32
}

// Renderer draws line batches through a single position+color shader.
type Renderer struct {
	config  Config
	program *shader.Program
	vao     uint32
	vbo     uint32
	vboSize int // bytes
	log     *zap.Logger
}

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uViewProj;

out vec4 vColor;

void main() {
	gl_Position = uViewProj * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const lineFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

// New creates a renderer. The OpenGL context must already exist.
func New(cfg Config) (*Renderer, error) {
	if cfg.FOV == 0 {
		cfg.FOV = 45
	}
	if cfg.Near == 0 {
		cfg.Near = 0.1
	}
	if cfg.Far == 0 {
		cfg.Far = 1000
	}
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.SetClearColor(cfg.ClearColor)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create line shader: %w", err)
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("line pipeline created", zap.Uint32("program", r.program.ID), zap.Uint32("vao", r.vao))
	return r, nil
}

// Close releases GL resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// SetClearColor sets the background color.
func (r *Renderer) SetClearColor(c [3]float32) {
	r.config.ClearColor = c
	gl.ClearColor(c[0], c[1], c[2], 1)
}

// Projection returns the perspective projection for the current size.
func (r *Renderer) Projection() mgl32.Mat4 {
	return Projection(r.config)
}

// Projection returns the perspective projection described by cfg.
func Projection(cfg Config) mgl32.Mat4 {
	aspect := float32(1)
	if cfg.Height > 0 {
		aspect = float32(cfg.Width) / float32(cfg.Height)
	}
	return mgl32.Perspective(mgl32.DegToRad(cfg.FOV), aspect, cfg.Near, cfg.Far)
}

// DrawScene clears the frame and draws actors as wireframe boxes and the
// debug lines on top of them.
func (r *Renderer) DrawScene(cam *scene.Camera, actors []*scene.Actor, lines []debug.Line) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	batches := BuildBatches(actors, lines)
	if len(batches) == 0 {
		return
	}

	viewProj := r.Projection().Mul4(cam.Transform.ViewMatrix())
	r.program.Use()
	r.program.SetMat4("uViewProj", viewProj)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	for _, b := range batches {
		r.upload(b.Vertices)
		gl.LineWidth(b.Width)
		gl.DrawArrays(gl.LINES, 0, int32(b.VertexCount()))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// upload writes verts into the shared buffer, growing it when needed.
func (r *Renderer) upload(verts []float32) {
	size := len(verts) * 4
	if size > r.vboSize {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)
		r.vboSize = size
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&verts[0]))
}
