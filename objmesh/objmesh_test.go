package objmesh_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirstar13/halfedge-decimator/objmesh"
)

func writeTempOBJ(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "mesh.obj")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTriangle(t *testing.T) {
	path := writeTempOBJ(t, `
# a single triangle
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`)

	positions, indices, err := objmesh.Load(path)
	require.NoError(t, err)
	assert.Len(t, positions, 3)
	assert.Equal(t, []uint32{0, 1, 2}, indices)
}

func TestLoadFanTriangulatesQuad(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	_, indices, err := objmesh.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, indices)
}

func TestLoadRejectsOutOfRangeFaceIndex(t *testing.T) {
	path := writeTempOBJ(t, `
v 0 0 0
v 1 0 0
f 1 2 3
`)
	_, _, err := objmesh.Load(path)
	require.Error(t, err)
}

func TestNormalizeToUnitCube(t *testing.T) {
	positions := []mgl64.Vec3{
		{0, 0, 0},
		{100, 0, 0},
		{0, 50, 0},
	}
	objmesh.NormalizeToUnitCube(positions)

	var min, max mgl64.Vec3 = positions[0], positions[0]
	for _, p := range positions[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}
	for axis := 0; axis < 3; axis++ {
		assert.LessOrEqual(t, max[axis]-min[axis], 1.0+1e-9)
	}
}
