package renderer

import (
	"sort"

	"github.com/Faultbox/physics-scene/internal/engine/debug"
	"github.com/Faultbox/physics-scene/internal/engine/scene"
)

// floatsPerVertex is position (3) plus RGBA color (4).
const floatsPerVertex = 7

// actorLineWidth is the width of actor wireframes.
const actorLineWidth = 1

// Batch is a set of line vertices sharing one line width.
type Batch struct {
	Width    float32
	Vertices []float32 // x, y, z, r, g, b, a per vertex
}

// VertexCount returns the number of vertices in the batch.
func (b Batch) VertexCount() int {
	return len(b.Vertices) / floatsPerVertex
}

// BuildBatches converts actors and debug lines into line batches ordered by
// width. Actors use their model color and bounds under their transform.
func BuildBatches(actors []*scene.Actor, lines []debug.Line) []Batch {
	byWidth := make(map[float32][]float32)

	for _, a := range actors {
		if a.Model == nil {
			continue
		}
		c := a.Model.Color
		if c == ([3]float32{}) {
			c = [3]float32{0.8, 0.8, 0.8}
		}
		verts := debug.TransformedBBoxWireframe(a.Model.Bounds, a.Transform.Matrix())
		out := byWidth[actorLineWidth]
		for i := 0; i < len(verts); i += 3 {
			out = append(out, verts[i], verts[i+1], verts[i+2], c[0], c[1], c[2], 1)
		}
		byWidth[actorLineWidth] = out
	}

	for _, l := range lines {
		col := l.Color
		byWidth[l.Width] = append(byWidth[l.Width],
			l.Start.X, l.Start.Y, l.Start.Z, col.X, col.Y, col.Z, col.W,
			l.End.X, l.End.Y, l.End.Z, col.X, col.Y, col.Z, col.W,
		)
	}

	batches := make([]Batch, 0, len(byWidth))
	for w, verts := range byWidth {
		batches = append(batches, Batch{Width: w, Vertices: verts})
	}
	sort.Slice(batches, func(i, j int) bool { return batches[i].Width < batches[j].Width })
	return batches
}
