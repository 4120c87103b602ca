package halfedge

import "math"

// computeCost scores a directed half-edge collapse using the Melax
// formulation from "A Simple, Fast, and Effective Polygon Reduction
// Algorithm": edge length times a curvature term bounded in [0,1],
// floored to an unsigned integer so the candidate queue's ordering is
// bit-identical across architectures.
func (m *Mesh) computeCost(e int32) uint32 {
	v0 := m.edges[e].vertex
	v1 := m.target(e)

	length := m.positions[v0].Sub(m.positions[v1]).Len()

	facesOfV0 := m.AdjacentFaces(v0)
	facesOfV1 := m.AdjacentFaces(v1)
	sharedFaces := unsortedIntersection(facesOfV0, facesOfV1)

	curvature := 0.0
	for _, f := range facesOfV0 {
		n0 := m.FaceNormal(f)
		minCurvature := 1.0
		for _, g := range sharedFaces {
			n1 := m.FaceNormal(g)
			c := (1 - n0.Dot(n1)) / 2
			if c < minCurvature {
				minCurvature = c
			}
		}
		if minCurvature > curvature {
			curvature = minCurvature
		}
	}

	return uint32(math.Floor(length * curvature * 1e8))
}
