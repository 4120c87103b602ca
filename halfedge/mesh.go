package halfedge

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Boundary is the sentinel opposite value for a half-edge with no twin.
const Boundary int32 = -1

// statusKind tags the lifecycle state of a vertex record, replacing
// the source's negative-integer encoding with an explicit variant per
// the "tagged union" design note: Interior vertices are walkable via
// opposite(), Boundary vertices are looked up in the boundary table,
// and Deleted vertices are orphaned remnants of a past collapse that
// no live half-edge references anymore.
type statusKind int8

const (
	statusInterior statusKind = iota
	statusBoundary
	statusDeleted
)

// VertexStatus is the tagged state of one vertex record.
type VertexStatus struct {
	kind statusKind
	idx  int // index into boundaryEmanating, valid only when kind == statusBoundary
}

func interiorStatus() VertexStatus  { return VertexStatus{kind: statusInterior} }
func boundaryStatus(i int) VertexStatus { return VertexStatus{kind: statusBoundary, idx: i} }
func deletedStatus() VertexStatus   { return VertexStatus{kind: statusDeleted} }

// IsInterior reports whether the vertex can be circled via opposite().
func (s VertexStatus) IsInterior() bool { return s.kind == statusInterior }

// IsBoundary reports whether the vertex must be looked up in the
// boundary-emanating table instead.
func (s VertexStatus) IsBoundary() bool { return s.kind == statusBoundary }

// IsDeleted reports whether the vertex was merged away by a collapse.
func (s VertexStatus) IsDeleted() bool { return s.kind == statusDeleted }

// halfedgeRecord is a directed edge inside exactly one triangle.
// vertex holds the *source* vertex of the directed edge (the half-edge
// stored at slot 3f+k starts at indices[3f+k]); its target is therefore
// the vertex of the next half-edge in face order, target(e) =
// vertex(next(e)). Either convention works per the spec as long as it
// is applied consistently; this one matches the source's own
// Halfedge::vertexIdx field.
type halfedgeRecord struct {
	vertex   uint32
	opposite int32
}

// vertexRecord is one record per original position.
type vertexRecord struct {
	status VertexStatus
	edge   int32 // one emanating half-edge, used as the one-ring walk start
}

// Mesh is a half-edge connectivity structure over an immutable set of
// vertex positions, plus the mutation and policy state layered on top
// of it (removed-face bitmap, per-edge cost cache, collapse candidate
// queue). See package doc for the layering.
type Mesh struct {
	positions []mgl64.Vec3
	edges     []halfedgeRecord
	vertices  []vertexRecord

	// boundaryEmanating[i] holds every live half-edge emanating from
	// the boundary vertex whose status.idx == i. A boundary vertex
	// cannot be circled via opposite() so this is its one-ring.
	boundaryEmanating [][]int32

	removedFaces     []bool
	removedFaceCount int

	costs      []uint32
	candidates *candidateSet
}

// BuildReport summarizes a successful construction for callers that
// want to log it, rather than New printing to stdout itself.
type BuildReport struct {
	VertexCount             int
	TriangleCount           int
	BoundaryVertexCount     int
	BoundaryEdgeCount       int
	DegenerateTriangleCount int
}

// New builds a half-edge mesh from a flat position array and a
// triangle index stream (groups of three). The input is assumed to be
// a manifold 2-manifold-with-boundary triangle mesh; a duplicate
// directed edge or an out-of-range index is reported as
// ErrNonManifold rather than left as undefined behaviour. A triangle
// with a repeated vertex index (zero area, no well-defined normal) is
// not an error: it is dropped before connectivity is built, and counted
// in the returned report's DegenerateTriangleCount.
func New(positions []mgl64.Vec3, indices []uint32) (*Mesh, BuildReport, error) {
	if len(positions) == 0 {
		return nil, BuildReport{}, fmt.Errorf("halfedge.New: %w: no vertices", ErrNonManifold)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, BuildReport{}, fmt.Errorf("halfedge.New: %w: %d indices is not a multiple of 3", ErrNonManifold, len(indices))
	}
	for i, vID := range indices {
		if int(vID) >= len(positions) {
			return nil, BuildReport{}, fmt.Errorf("halfedge.New: %w: index %d at slot %d out of range for %d vertices", ErrNonManifold, vID, i, len(positions))
		}
	}

	var degenerateCount int
	indices, degenerateCount = dropDegenerateTriangles(indices)
	if len(indices) == 0 {
		return nil, BuildReport{}, fmt.Errorf("halfedge.New: %w: every triangle is degenerate", ErrNonManifold)
	}

	m := &Mesh{
		positions: positions,
		edges:     make([]halfedgeRecord, len(indices)),
		vertices:  make([]vertexRecord, len(positions)),
	}
	for i := range m.edges {
		m.edges[i].opposite = Boundary
	}

	halfedgeOf := make(map[uint64]int32, len(indices))
	n := uint64(len(positions))

	for i, vID := range indices {
		e := int32(i)
		m.edges[e].vertex = vID
		m.vertices[vID].status = interiorStatus()
		m.vertices[vID].edge = e

		nextVID := indices[next(e)]
		key := uint64(vID)*n + uint64(nextVID)
		if _, dup := halfedgeOf[key]; dup {
			return nil, BuildReport{}, fmt.Errorf("halfedge.New: %w: duplicate directed edge %d->%d", ErrNonManifold, vID, nextVID)
		}
		halfedgeOf[key] = e

		oppositeKey := uint64(nextVID)*n + uint64(vID)
		if opp, ok := halfedgeOf[oppositeKey]; ok {
			m.edges[e].opposite = opp
			m.edges[opp].opposite = e
		}
	}

	report := BuildReport{
		VertexCount:             len(positions),
		TriangleCount:           len(indices) / 3,
		DegenerateTriangleCount: degenerateCount,
	}

	// Boundary detection: every half-edge with no twin identifies a
	// boundary vertex. For each one not yet classified, sweep the
	// whole half-edge array once for its emanating edges - acceptable
	// because construction is one-shot.
	for i := int32(0); i < int32(len(m.edges)); i++ {
		if m.edges[i].opposite != Boundary {
			continue
		}
		report.BoundaryEdgeCount++

		v := m.edges[i].vertex
		if m.vertices[v].status.IsBoundary() {
			continue
		}

		emanating := m.findEmanatingEdges(v)
		m.boundaryEmanating = append(m.boundaryEmanating, emanating)
		m.vertices[v].status = boundaryStatus(len(m.boundaryEmanating) - 1)
		report.BoundaryVertexCount++
	}

	m.removedFaces = make([]bool, len(m.edges)/3)
	m.costs = make([]uint32, len(m.edges))
	m.candidates = newCandidateSet()
	m.initCollapseCandidates()

	return m, report, nil
}

// dropDegenerateTriangles returns indices with every triangle that
// repeats a vertex index removed, plus how many were dropped. A
// repeated index collapses the triangle to a line or a point, which
// has zero area and no well-defined face normal, so it is excluded
// from connectivity rather than built and left to corrupt cost/normal
// computations downstream.
func dropDegenerateTriangles(indices []uint32) ([]uint32, int) {
	dropped := 0
	out := indices[:0:0]
	for i := 0; i < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if a == b || b == c || a == c {
			dropped++
			continue
		}
		out = append(out, a, b, c)
	}
	return out, dropped
}

// next and prev exploit the triangle-contiguous layout: the three
// half-edges of face f occupy slots 3f, 3f+1, 3f+2.
func next(e int32) int32 { return (e/3)*3 + (e+1)%3 }
func prev(e int32) int32 { return (e/3)*3 + (e+2)%3 }
func faceOf(e int32) int32 { return e / 3 }

// target returns the destination vertex of half-edge e.
func (m *Mesh) target(e int32) uint32 { return m.edges[next(e)].vertex }

// findEmanatingEdges sweeps the whole half-edge array for every edge
// whose source is vIdx. O(E); only used during construction.
func (m *Mesh) findEmanatingEdges(vIdx uint32) []int32 {
	var out []int32
	i := int32(0)
	n := int32(len(m.edges))
	for i < n {
		if m.edges[i].vertex == vIdx {
			out = append(out, i)
			i = ((i + 3) / 3) * 3
		} else {
			i++
		}
	}
	return out
}

// VertexCount is the number of original vertex slots (the positions
// array is immutable and never shrinks; vertices merged away by a
// collapse remain allocated with VertexStatus.IsDeleted() true).
func (m *Mesh) VertexCount() int { return len(m.positions) }

// FaceCount is the number of live (not collapsed-away) faces.
func (m *Mesh) FaceCount() int { return len(m.removedFaces) - m.removedFaceCount }

// IsFaceRemoved reports whether a triangle has been eliminated by a collapse.
func (m *Mesh) IsFaceRemoved(f uint32) bool { return m.removedFaces[f] }

// Position returns the immutable position of a vertex slot.
func (m *Mesh) Position(v uint32) mgl64.Vec3 { return m.positions[v] }

// Status returns the current tagged state of a vertex slot.
func (m *Mesh) Status(v uint32) VertexStatus { return m.vertices[v].status }

// Emanating returns the one-ring of directed half-edges leaving v, as
// a fresh owned snapshot invalidated by the next mutation.
func (m *Mesh) Emanating(v uint32) []int32 {
	status := m.vertices[v].status
	if status.IsBoundary() {
		src := m.boundaryEmanating[status.idx]
		out := make([]int32, len(src))
		copy(out, src)
		return out
	}
	return m.emanatingInterior(m.vertices[v].edge)
}

// emanatingInterior walks next(opposite(.)) starting at start until it
// cycles back, collecting every emanating half-edge along the way.
func (m *Mesh) emanatingInterior(start int32) []int32 {
	cur := start
	out := make([]int32, 0, 6)
	for {
		cur = next(m.edges[cur].opposite)
		out = append(out, cur)
		if cur == start {
			return out
		}
	}
}

// Neighbours returns the vertices reachable from v by a single
// half-edge, each appearing once.
func (m *Mesh) Neighbours(v uint32) []uint32 {
	status := m.vertices[v].status
	var out []uint32
	if status.IsBoundary() {
		for _, e := range m.boundaryEmanating[status.idx] {
			out = addIfNew(out, m.target(e))
			out = addIfNew(out, m.edges[prev(e)].vertex)
		}
		return out
	}
	for _, e := range m.emanatingInterior(m.vertices[v].edge) {
		out = addIfNew(out, m.target(e))
	}
	return out
}

// AdjacentFaces returns one live face index per emanating half-edge of v.
func (m *Mesh) AdjacentFaces(v uint32) []uint32 {
	emanating := m.Emanating(v)
	out := make([]uint32, len(emanating))
	for i, e := range emanating {
		out[i] = uint32(faceOf(e))
	}
	return out
}

// Valence is the size of the one-ring of v.
func (m *Mesh) Valence(v uint32) int { return len(m.Neighbours(v)) }

// FaceNormal computes a triangle's normal from its current (possibly
// already-collapsed) connectivity and the original immutable positions.
func (m *Mesh) FaceNormal(f uint32) mgl64.Vec3 {
	start := int32(f) * 3
	p0 := m.positions[m.edges[start].vertex]
	p1 := m.positions[m.edges[start+1].vertex]
	p2 := m.positions[m.edges[start+2].vertex]
	return p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
}

// VertexNormal averages the normals of every face adjacent to v.
func (m *Mesh) VertexNormal(v uint32) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, f := range m.AdjacentFaces(v) {
		sum = sum.Add(m.FaceNormal(f))
	}
	return sum.Normalize()
}
