// Package objmesh loads Wavefront OBJ geometry into the flat
// position/index arrays halfedge.New expects, and normalizes it to a
// unit cube so meshes of wildly different scale collapse at
// comparable cost thresholds.
package objmesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Load reads a Wavefront OBJ file and returns its geometry as a flat
// position array and a triangle index stream, triangulating any n-gon
// faces by a fan from their first vertex. Only v/f directives are
// interpreted; materials, normals and UVs are not part of the
// half-edge decimator's scope and are skipped.
func Load(path string) (positions []mgl64.Vec3, indices []uint32, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("objmesh.Load: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, nil, fmt.Errorf("objmesh.Load: line %d: invalid vertex definition", lineNum)
			}
			x, err1 := strconv.ParseFloat(parts[1], 64)
			y, err2 := strconv.ParseFloat(parts[2], 64)
			z, err3 := strconv.ParseFloat(parts[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, nil, fmt.Errorf("objmesh.Load: line %d: invalid vertex coordinates", lineNum)
			}
			positions = append(positions, mgl64.Vec3{x, y, z})

		case "f":
			if len(parts) < 4 {
				return nil, nil, fmt.Errorf("objmesh.Load: line %d: face must have at least 3 vertices", lineNum)
			}
			faceVerts := make([]uint32, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				idx, err := parseFaceIndex(parts[i])
				if err != nil {
					return nil, nil, fmt.Errorf("objmesh.Load: line %d: %w", lineNum, err)
				}
				if idx < 0 || idx >= len(positions) {
					return nil, nil, fmt.Errorf("objmesh.Load: line %d: vertex index out of range", lineNum)
				}
				faceVerts = append(faceVerts, uint32(idx))
			}
			for i := 1; i < len(faceVerts)-1; i++ {
				indices = append(indices, faceVerts[0], faceVerts[i], faceVerts[i+1])
			}

		default:
			continue
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("objmesh.Load: %w", err)
	}
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("objmesh.Load: no vertices found in %s", path)
	}

	return positions, indices, nil
}

// parseFaceIndex reads the leading vertex-index component of a face
// vertex token (v, v/vt, v/vt/vn, v//vn) and converts it from OBJ's
// 1-based indexing to 0-based.
func parseFaceIndex(token string) (int, error) {
	head := token
	if i := strings.IndexByte(token, '/'); i >= 0 {
		head = token[:i]
	}
	idx, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", token)
	}
	return idx - 1, nil
}

// NormalizeToUnitCube rescales positions in place so they are centered
// on their bounding-box midpoint and fit within [-0.5, 0.5] on their
// longest axis, making the cost metric's absolute scale comparable
// across differently-sized input assets.
func NormalizeToUnitCube(positions []mgl64.Vec3) {
	if len(positions) == 0 {
		return
	}

	min, max := positions[0], positions[0]
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

	center := min.Add(max).Mul(0.5)
	extent := 0.0
	for axis := 0; axis < 3; axis++ {
		if d := max[axis] - min[axis]; d > extent {
			extent = d
		}
	}
	if extent == 0 {
		return
	}

	scale := 1.0 / extent
	for i, p := range positions {
		positions[i] = p.Sub(center).Mul(scale)
	}
}
