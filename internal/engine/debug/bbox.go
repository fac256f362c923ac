package debug

import "github.com/go-gl/mathgl/mgl32"

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// TransformedBBoxWireframe returns the wireframe of local bounds
// [minX, minY, minZ, maxX, maxY, maxZ] moved into world space by model.
func TransformedBBoxWireframe(bounds [6]float32, model mgl32.Mat4) []float32 {
	verts := GenerateBBoxWireframeVertices(bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5])
	for i := 0; i < len(verts); i += 3 {
		p := model.Mul4x1(mgl32.Vec4{verts[i], verts[i+1], verts[i+2], 1})
		verts[i], verts[i+1], verts[i+2] = p.X(), p.Y(), p.Z()
	}
	return verts
}
