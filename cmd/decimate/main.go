// Command decimate loads a Wavefront OBJ file, progressively collapses
// it under a per-frame time budget the way a loading screen would, and
// writes the resulting mesh back out.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mirstar13/halfedge-decimator/halfedge"
	"github.com/mirstar13/halfedge-decimator/objmesh"
)

func main() {
	inputPath := flag.String("in", "", "path to the input .obj file")
	targetRatio := flag.Float64("ratio", 0.5, "fraction of original triangles to keep, in (0, 1]")
	frameBudget := flag.Duration("frame-budget", 16*time.Millisecond, "per-iteration reduction time budget, mimicking a loading-screen frame")
	flatShaded := flag.Bool("flat-shaded", false, "extract the result as a flat-shaded, per-face duplicated submesh")
	outputPath := flag.String("out", "", "path to write the reduced .obj (optional)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "decimate: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if *targetRatio <= 0 || *targetRatio > 1 {
		fmt.Fprintln(os.Stderr, "decimate: -ratio must be in (0, 1]")
		os.Exit(2)
	}

	positions, indices, err := objmesh.Load(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decimate: %v\n", err)
		os.Exit(1)
	}
	objmesh.NormalizeToUnitCube(positions)

	mesh, report, err := halfedge.New(positions, indices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decimate: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("loaded %s: %d vertices, %d triangles (%d boundary vertices)\n",
		*inputPath, report.VertexCount, report.TriangleCount, report.BoundaryVertexCount)

	targetFaces := int(float64(report.TriangleCount) * *targetRatio)
	stats := runBudgetedReduction(mesh, targetFaces, *frameBudget)

	fmt.Printf("collapsed %d edges across %d frame(s): %d triangles remain (exhausted=%v)\n",
		stats.edges, stats.frames, mesh.FaceCount(), mesh.ReachedMaxReduction())

	if *outputPath == "" {
		return
	}

	var positionsOut, normalsOut []mgl64.Vec3
	var indicesOut []uint32
	if *flatShaded {
		positionsOut, normalsOut, indicesOut = mesh.FlatShadedSubmesh()
	} else {
		positionsOut, normalsOut, indicesOut = mesh.ReducedSubmesh()
	}

	if err := writeOBJ(*outputPath, positionsOut, normalsOut, indicesOut); err != nil {
		fmt.Fprintf(os.Stderr, "decimate: %v\n", err)
		os.Exit(1)
	}
}

type reductionStats struct {
	edges  int
	frames int
}

// runBudgetedReduction repeatedly drains Reduce() calls within
// successive frameBudget windows, stopping once targetFaces is
// reached or the mesh is fully exhausted - the same per-frame loading
// loop shape a progressive-mesh viewer uses to avoid a multi-second
// stall on a big asset.
func runBudgetedReduction(mesh *halfedge.Mesh, targetFaces int, frameBudget time.Duration) reductionStats {
	var stats reductionStats

	for mesh.FaceCount() > targetFaces && !mesh.ReachedMaxReduction() {
		stats.frames++
		deadline := time.Now().Add(frameBudget)

		for time.Now().Before(deadline) {
			if mesh.FaceCount() <= targetFaces {
				break
			}
			if _, err := mesh.Reduce(); err != nil {
				return stats
			}
			stats.edges++
		}
	}

	return stats
}

// writeOBJ emits a position/normal/triangle buffer as a minimal
// Wavefront OBJ, mirroring the teacher's own SaveOBJ.
func writeOBJ(path string, positions, normals []mgl64.Vec3, indices []uint32) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	fmt.Fprintf(w, "# Generated by halfedge-decimator\n")
	fmt.Fprintf(w, "# Vertices: %d\n", len(positions))
	fmt.Fprintf(w, "# Triangles: %d\n\n", len(indices)/3)

	for _, p := range positions {
		fmt.Fprintf(w, "v %.6f %.6f %.6f\n", p.X(), p.Y(), p.Z())
	}
	for _, n := range normals {
		fmt.Fprintf(w, "vn %.6f %.6f %.6f\n", n.X(), n.Y(), n.Z())
	}
	w.WriteString("\n")

	for i := 0; i < len(indices); i += 3 {
		fmt.Fprintf(w, "f %d//%d %d//%d %d//%d\n",
			indices[i]+1, indices[i]+1,
			indices[i+1]+1, indices[i+1]+1,
			indices[i+2]+1, indices[i+2]+1)
	}

	return nil
}
