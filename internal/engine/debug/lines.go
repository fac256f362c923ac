// Package debug provides transient debug geometry: per-frame 3D lines and
// wireframe box generation.
package debug

import "github.com/Faultbox/physics-scene/pkg/math"

// Line is a colored 3D segment.
type Line struct {
	Start math.Vec3
	End   math.Vec3
	Color math.Vec4 // RGBA
	Width float32
}

// LineBuffer collects lines drawn during a frame. The frame loop renders
// and then resets it, so lines must be redrawn every frame to stay visible.
type LineBuffer struct {
	lines []Line
}

// NewLineBuffer creates an empty buffer.
func NewLineBuffer() *LineBuffer {
	return &LineBuffer{lines: make([]Line, 0, 16)}
}

// DrawDebugLine3D queues a line for this frame.
func (b *LineBuffer) DrawDebugLine3D(start, end math.Vec3, color math.Vec4, width float32) {
	if width <= 0 {
		width = 1
	}
	b.lines = append(b.lines, Line{Start: start, End: end, Color: color, Width: width})
}

// Lines returns the lines queued since the last Reset.
func (b *LineBuffer) Lines() []Line {
	return b.lines
}

// Reset drops all queued lines.
func (b *LineBuffer) Reset() {
	b.lines = b.lines[:0]
}
