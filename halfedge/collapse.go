package halfedge

import "fmt"

// IsValidCollapseCandidate tests the §4.4 validity conditions for
// collapsing half-edge ei (from vi to vj, vi being deleted):
//
//  1. if both endpoints are boundary vertices, ei itself must be a
//     boundary edge (an interior edge between two boundary vertices
//     would pinch the mesh non-manifold).
//  2. the link condition: the neighbours vi and vj share must be
//     exactly the vertices opposite to ei inside its incident
//     triangle(s), no more.
//  3. every vertex in that opposite-set must have valence > 3, so it
//     still has valence >= 3 after losing one neighbour.
func (m *Mesh) IsValidCollapseCandidate(ei int32) bool {
	if m.removedFaces[faceOf(ei)] {
		return false
	}

	ej := next(ei)
	vi := m.edges[ei].vertex
	vj := m.edges[ej].vertex

	pi := m.vertices[vi].status
	pj := m.vertices[vj].status
	opposite := m.edges[ei].opposite

	if pi.IsBoundary() && pj.IsBoundary() && opposite != Boundary {
		return false
	}

	var opposingVertices []uint32
	opposingVertices = append(opposingVertices, m.edges[next(ej)].vertex)
	if opposite != Boundary {
		opposingVertices = append(opposingVertices, m.edges[prev(opposite)].vertex)
	}

	shared := sortedIntersection(m.Neighbours(vi), m.Neighbours(vj))
	if !sortedEqual(shared, opposingVertices) {
		return false
	}

	for _, v := range shared {
		if m.Valence(v) <= 3 {
			return false
		}
	}

	return true
}

// Collapse executes the collapse of half-edge ei. Precondition:
// IsValidCollapseCandidate(ei). Removes 1 vertex and 2 faces (1 if
// ei is a boundary edge), rewiring connectivity so the twin links,
// emanating-edge anchors and boundary tables are consistent again
// afterward.
func (m *Mesh) Collapse(ei int32) error {
	if !m.IsValidCollapseCandidate(ei) {
		return fmt.Errorf("halfedge.Collapse: %w: half-edge %d", ErrInvalidCollapse, ei)
	}

	ej := next(ei)
	opposite := m.edges[ei].opposite

	vi := m.edges[ei].vertex
	vj := m.edges[ej].vertex

	// Snapshot one-rings before anything moves.
	emanatingVi := m.Emanating(vi)
	emanatingVj := m.Emanating(vj)

	var opposingVertices []uint32
	opposingVertices = append(opposingVertices, m.edges[next(ej)].vertex)
	if opposite != Boundary {
		opposingVertices = append(opposingVertices, m.edges[prev(opposite)].vertex)
	}

	m.removedFaces[faceOf(ei)] = true
	m.removedFaceCount++
	if opposite != Boundary {
		m.removedFaces[faceOf(opposite)] = true
		m.removedFaceCount++
	}

	// Purge and re-anchor any boundary vertex whose table might now
	// reference a removed face.
	m.deleteEmanatingEdges(vj)
	for _, v := range opposingVertices {
		m.deleteEmanatingEdges(v)
	}
	m.adjustEmanatingEdgeIndex(vj)
	for _, v := range opposingVertices {
		m.adjustEmanatingEdgeIndex(v)
	}

	viWasBoundary := m.vertices[vi].status.IsBoundary()

	// Rewire every surviving emanation of vi onto vj.
	for _, e := range emanatingVi {
		if m.removedFaces[faceOf(e)] {
			continue
		}
		m.edges[e].vertex = vj
	}

	m.adjustOpposites(ei)
	if opposite != Boundary {
		m.adjustOpposites(opposite)
	}

	// Boundary status transition: if vi was on the boundary but vj
	// was interior, vj has just gained a boundary and must become one.
	if viWasBoundary && m.vertices[vj].status.IsInterior() {
		idx := len(m.boundaryEmanating)
		m.boundaryEmanating = append(m.boundaryEmanating, emanatingVj)
		m.vertices[vj].status = boundaryStatus(idx)
		m.deleteEmanatingEdges(vj)
	}

	if status := m.vertices[vj].status; status.IsBoundary() {
		for _, e := range emanatingVi {
			if m.removedFaces[faceOf(e)] {
				continue
			}
			m.boundaryEmanating[status.idx] = append(m.boundaryEmanating[status.idx], e)
		}
	}

	m.vertices[vi].status = deletedStatus()

	return nil
}

// deleteEmanatingEdges purges half-edges of removed faces from a
// boundary vertex's emanating-edge table. No-op for interior vertices.
func (m *Mesh) deleteEmanatingEdges(v uint32) {
	status := m.vertices[v].status
	if !status.IsBoundary() {
		return
	}
	list := m.boundaryEmanating[status.idx]
	out := list[:0]
	for _, e := range list {
		if !m.removedFaces[faceOf(e)] {
			out = append(out, e)
		}
	}
	m.boundaryEmanating[status.idx] = out
}

// adjustEmanatingEdgeIndex advances v.edge to a live emanating
// half-edge after a collapse may have invalidated the cached one.
func (m *Mesh) adjustEmanatingEdgeIndex(v uint32) {
	status := m.vertices[v].status
	if status.IsBoundary() {
		m.vertices[v].edge = m.boundaryEmanating[status.idx][0]
		return
	}

	start := m.vertices[v].edge
	cur := start
	for {
		if !m.removedFaces[faceOf(cur)] {
			m.vertices[v].edge = cur
			return
		}
		cur = next(m.edges[cur].opposite)
		if cur == start {
			panic("halfedge: adjustEmanatingEdgeIndex found no live emanating edge")
		}
	}
}

// adjustOpposites stitches the opposites of the two half-edges flanking
// a just-removed triangle directly to each other, so the twin of the
// collapsed edge's neighbours no longer points into a dead face.
func (m *Mesh) adjustOpposites(e int32) {
	onNext := m.edges[next(e)].opposite
	onPrev := m.edges[prev(e)].opposite
	if onNext != Boundary {
		m.edges[onNext].opposite = onPrev
	}
	if onPrev != Boundary {
		m.edges[onPrev].opposite = onNext
	}
}
