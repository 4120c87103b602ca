// Package fixture loads small test meshes from YAML files so
// halfedge's tests can describe boundary-case geometry (tetrahedron,
// square patch, icosahedron, ...) declaratively instead of as Go
// literals.
package fixture

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// Mesh is the on-disk shape of one fixture file: a flat position list
// and a flat triangle index list, both plain YAML scalars so fixtures
// stay hand-editable.
type Mesh struct {
	Name       string      `yaml:"name"`
	Positions  [][3]float64 `yaml:"positions"`
	Indices    []uint32    `yaml:"indices"`
}

// Load reads and parses a fixture file from disk.
func Load(path string) (Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("fixture.Load: %w", err)
	}
	var m Mesh
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Mesh{}, fmt.Errorf("fixture.Load: %w", err)
	}
	return m, nil
}

// Vec3Positions converts the fixture's flat float triples into mgl64.Vec3.
func (m Mesh) Vec3Positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(m.Positions))
	for i, p := range m.Positions {
		out[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return out
}
