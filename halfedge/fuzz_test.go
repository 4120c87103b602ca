package halfedge_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/mirstar13/halfedge-decimator/halfedge"
)

// FuzzNewNeverPanics feeds New arbitrary vertex counts and index
// streams and checks only that it returns cleanly - either a usable
// mesh or ErrNonManifold - never a panic, regardless of how garbled
// the index stream is.
func FuzzNewNeverPanics(f *testing.F) {
	f.Add([]byte{4, 0, 1, 2, 0, 3, 1, 0, 2, 3, 1, 3, 2})
	f.Add([]byte{0})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		vertexCount, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		if vertexCount == 0 {
			t.Skip()
		}

		positions := make([]mgl64.Vec3, vertexCount)
		for i := range positions {
			x, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			y, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			z, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			positions[i] = mgl64.Vec3{float64(x), float64(y), float64(z)}
		}

		indexCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}
		indexCount = indexCount % 64

		indices := make([]uint32, indexCount)
		for i := range indices {
			raw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			indices[i] = uint32(raw)
		}

		m, report, err := halfedge.New(positions, indices)
		if err != nil {
			return
		}
		if m.VertexCount() != int(vertexCount) || report.VertexCount != int(vertexCount) {
			t.Fatalf("vertex count mismatch: got mesh=%d report=%d want %d", m.VertexCount(), report.VertexCount, vertexCount)
		}
	})
}

// FuzzReduceNeverPanics drives a full Reduce loop to exhaustion on
// fuzzed-but-valid manifold geometry (the octahedron, perturbed) and
// checks the submesh extraction never produces an out-of-range index.
func FuzzReduceNeverPanics(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4, 5, 6})

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		base := []mgl64.Vec3{
			{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		}
		positions := make([]mgl64.Vec3, len(base))
		for i, p := range base {
			jitter, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}
			// Keep the perturbation small so the octahedron's topology
			// (and therefore its manifold-ness) survives.
			scale := float64(jitter) / 255.0 * 0.05
			positions[i] = mgl64.Vec3{p[0] + scale, p[1] + scale, p[2] + scale}
		}

		indices := []uint32{4, 0, 2, 4, 2, 1, 4, 1, 3, 4, 3, 0, 5, 2, 0, 5, 1, 2, 5, 3, 1, 5, 0, 3}

		m, _, err := halfedge.New(positions, indices)
		if err != nil {
			t.Skip(err)
		}

		for i := 0; i < 100; i++ {
			if _, err := m.Reduce(); err != nil {
				break
			}
		}

		positionsOut, _, indicesOut := m.ReducedSubmesh()
		for _, idx := range indicesOut {
			if int(idx) >= len(positionsOut) {
				t.Fatalf("index %d out of range for %d positions", idx, len(positionsOut))
			}
		}
	})
}
