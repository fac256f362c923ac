package debug

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/physics-scene/pkg/math"
)

func TestLineBuffer(t *testing.T) {
	b := NewLineBuffer()
	red := math.Vec4{X: 1, W: 1}

	b.DrawDebugLine3D(math.Vec3{}, math.Vec3{X: 3}, red, 3)
	b.DrawDebugLine3D(math.Vec3{}, math.Vec3{Y: 3}, red, 0)

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].End != (math.Vec3{X: 3}) || lines[0].Width != 3 {
		t.Errorf("unexpected first line %+v", lines[0])
	}
	if lines[1].Width != 1 {
		t.Errorf("non-positive width should default to 1, got %v", lines[1].Width)
	}

	b.Reset()
	if len(b.Lines()) != 0 {
		t.Error("expected empty buffer after Reset")
	}
}

func TestTransformedBBoxWireframe(t *testing.T) {
	bounds := [6]float32{-1, -1, -1, 1, 1, 1}
	model := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.Scale3D(0.5, 0.5, 0.5))

	verts := TransformedBBoxWireframe(bounds, model)
	if len(verts) != BBoxWireframeVertexCount*3 {
		t.Fatalf("expected %d floats, got %d", BBoxWireframeVertexCount*3, len(verts))
	}
	for i := 0; i < len(verts); i += 3 {
		if verts[i] < 9.5-1e-5 || verts[i] > 10.5+1e-5 {
			t.Errorf("vertex %d x=%v outside [9.5, 10.5]", i/3, verts[i])
		}
	}
}
