package halfedge_test

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirstar13/halfedge-decimator/halfedge"
	"github.com/mirstar13/halfedge-decimator/internal/fixture"
)

func loadFixture(t *testing.T, name string) (*halfedge.Mesh, halfedge.BuildReport) {
	t.Helper()
	f, err := fixture.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	m, report, err := halfedge.New(f.Vec3Positions(), f.Indices)
	require.NoError(t, err)
	return m, report
}

func TestNewTetrahedron(t *testing.T) {
	m, report := loadFixture(t, "tetrahedron.yaml")

	assert.Equal(t, 4, report.VertexCount)
	assert.Equal(t, 4, report.TriangleCount)
	assert.Zero(t, report.BoundaryVertexCount)
	assert.Zero(t, report.BoundaryEdgeCount)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())

	for v := uint32(0); v < 4; v++ {
		assert.True(t, m.Status(v).IsInterior())
		assert.Equal(t, 3, m.Valence(v), "every tetrahedron vertex has valence 3")
	}
}

func TestNewSquarePatchHasBoundary(t *testing.T) {
	m, report := loadFixture(t, "square_patch.yaml")

	assert.Equal(t, 4, report.BoundaryVertexCount)
	assert.Equal(t, 4, report.BoundaryEdgeCount)

	for v := uint32(0); v < 4; v++ {
		assert.True(t, m.Status(v).IsBoundary(), "vertex %d should be on the boundary", v)
	}

	// The diagonal 0-2 is the only interior edge, giving its endpoints
	// 0 and 2 valence 3 (vertices 1 and 3 have valence 2); check vertex
	// 0's one-ring explicitly rather than via Valence alone.
	n0 := m.Neighbours(0)
	assert.ElementsMatch(t, []uint32{1, 2, 3}, n0)
}

func TestNewOctahedron(t *testing.T) {
	m, report := loadFixture(t, "octahedron.yaml")

	assert.Equal(t, 6, report.VertexCount)
	assert.Equal(t, 8, report.TriangleCount)
	assert.Zero(t, report.BoundaryVertexCount)

	for v := uint32(0); v < 6; v++ {
		assert.Equal(t, 4, m.Valence(v))
	}
}

func TestNewRejectsNonMultipleOfThree(t *testing.T) {
	_, _, err := halfedge.New(make([]mgl64.Vec3, 3), []uint32{0, 1})
	require.Error(t, err)
}

func TestNewRejectsOutOfRangeIndex(t *testing.T) {
	_, _, err := halfedge.New(make([]mgl64.Vec3, 3), []uint32{0, 1, 5})
	require.Error(t, err)
}

func TestNewRejectsDuplicateDirectedEdge(t *testing.T) {
	// Two faces sharing the same winding direction on an edge is
	// non-manifold: the edge would need two distinct opposites.
	_, _, err := halfedge.New(make([]mgl64.Vec3, 4), []uint32{0, 1, 2, 0, 1, 3})
	require.Error(t, err)
}

func TestFaceNormalOutwardOnOctahedron(t *testing.T) {
	m, _ := loadFixture(t, "octahedron.yaml")
	n := m.FaceNormal(0) // face 4,0,2 -> should point toward +x+y+z octant
	assert.Greater(t, n.X(), 0.0)
	assert.Greater(t, n.Y(), 0.0)
	assert.Greater(t, n.Z(), 0.0)
}
