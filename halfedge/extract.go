package halfedge

import "github.com/go-gl/mathgl/mgl64"

// ReducedSubmesh extracts the currently-live mesh as a dense,
// renumbered vertex/index buffer: deleted vertices and collapsed faces
// are dropped. Dense indices are assigned by sweeping half-edges in
// index order and recording a vertex's new index on first sight of a
// live reference to it, matching getReducedSubMesh rather than a
// vertex-index sweep.
func (m *Mesh) ReducedSubmesh() (positions, normals []mgl64.Vec3, indices []uint32) {
	remap := make([]int32, len(m.positions))
	for i := range remap {
		remap[i] = -1
	}

	for e := int32(0); e < int32(len(m.edges)); e++ {
		if m.removedFaces[faceOf(e)] {
			continue
		}
		v := m.edges[e].vertex
		if remap[v] == -1 {
			remap[v] = int32(len(positions))
			positions = append(positions, m.positions[v])
			normals = append(normals, m.VertexNormal(v))
		}
		indices = append(indices, uint32(remap[v]))
	}

	return positions, normals, indices
}

// FlatShadedSubmesh extracts the live mesh with each face given its own
// three vertices (duplicated per incident face) so flat shading can use
// an unsmoothed per-face normal instead of the blended VertexNormal,
// the same per-face duplication the source's createFlatShadedMesh
// performs.
func (m *Mesh) FlatShadedSubmesh() (positions, normals []mgl64.Vec3, indices []uint32) {
	for f := 0; f < len(m.removedFaces); f++ {
		if m.removedFaces[f] {
			continue
		}
		start := int32(f) * 3
		n := m.FaceNormal(uint32(f))
		for k := int32(0); k < 3; k++ {
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, m.positions[m.edges[start+k].vertex])
			normals = append(normals, n)
		}
	}
	return positions, normals, indices
}
