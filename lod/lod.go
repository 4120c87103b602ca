// Package lod builds a chain of progressively reduced meshes from a
// single halfedge.Mesh and selects among them by viewer distance, the
// way a renderer's LOD group would pick a detail level per frame -
// adapted from the teacher's own LODGroup, but with the simplification
// step replaced by real edge collapses instead of vertex skip-sampling,
// and with no Scene/Camera/Renderer coupling since rendering itself is
// out of this package's scope.
package lod

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mirstar13/halfedge-decimator/halfedge"
)

// Level is one entry in a Chain: a submesh and the maximum viewer
// distance at which it is still the most detailed acceptable choice.
type Level struct {
	Positions   []mgl64.Vec3
	Normals     []mgl64.Vec3
	Indices     []uint32
	MaxDistance float64
}

// Chain is an ordered set of Levels from most to least detailed,
// selected by distance with hysteresis so a viewer oscillating near a
// boundary doesn't flicker between two levels every frame.
type Chain struct {
	Levels           []Level
	current          int
	lastDistance     float64
	UpdateHysteresis float64
}

// BuildChain reduces mesh level by level: for each ratio (a target
// fraction of the original triangle count, most detailed first) it
// calls Reduce until the live triangle count is at or below that
// target or no collapse remains, then snapshots a Level whose
// MaxDistance is the threshold at the same index. ratios must be
// sorted descending and thresholds ascending, with at least as many
// thresholds as ratios. Reduction stops after the last ratio, not at
// exhaustion; if the mesh reaches max reduction first, the remaining
// ratios get no Level.
func BuildChain(mesh *halfedge.Mesh, ratios []float64, thresholds []float64) *Chain {
	chain := &Chain{UpdateHysteresis: 5.0}

	originalFaces := mesh.FaceCount()
	next := 0

	for next < len(ratios) {
		target := int(float64(originalFaces) * ratios[next])
		for mesh.FaceCount() > target {
			if _, err := mesh.Reduce(); err != nil {
				break
			}
		}

		positions, normals, indices := mesh.ReducedSubmesh()
		chain.Levels = append(chain.Levels, Level{
			Positions:   positions,
			Normals:     normals,
			Indices:     indices,
			MaxDistance: thresholds[next],
		})
		next++

		if mesh.ReachedMaxReduction() {
			break
		}
	}

	return chain
}

// SelectLevel picks the index of the Level appropriate for viewerDistance,
// applying hysteresis around the current selection exactly like the
// teacher's selectLODDistance: small oscillations near a boundary keep
// the previous level instead of switching every call.
func (c *Chain) SelectLevel(viewerDistance float64) int {
	if len(c.Levels) == 0 {
		return -1
	}

	if c.current >= 0 && c.current < len(c.Levels) {
		currentMaxDist := c.Levels[c.current].MaxDistance
		if math.Abs(viewerDistance-currentMaxDist) < c.UpdateHysteresis {
			c.lastDistance = viewerDistance
			return c.current
		}
	}

	selected := len(c.Levels) - 1
	for i, level := range c.Levels {
		if viewerDistance <= level.MaxDistance {
			selected = i
			break
		}
	}

	c.current = selected
	c.lastDistance = viewerDistance
	return selected
}

// CurrentLevel returns the Level last chosen by SelectLevel, or the
// most detailed one if SelectLevel has never been called.
func (c *Chain) CurrentLevel() *Level {
	if len(c.Levels) == 0 {
		return nil
	}
	if c.current < 0 || c.current >= len(c.Levels) {
		return &c.Levels[0]
	}
	return &c.Levels[c.current]
}
