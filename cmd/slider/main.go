// Command slider is an interactive terminal resolution scrubber: it
// records every collapse a full Reduce run performs, then lets +/-
// keypresses replay or rewind through that recorded sequence, printing
// the live triangle count as the mesh scrubs between full and
// minimal detail.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/eiannone/keyboard"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/mirstar13/halfedge-decimator/halfedge"
	"github.com/mirstar13/halfedge-decimator/objmesh"
)

func main() {
	inputPath := flag.String("in", "", "path to the input .obj file")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "slider: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	positions, indices, err := objmesh.Load(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slider: %v\n", err)
		os.Exit(1)
	}
	objmesh.NormalizeToUnitCube(positions)

	mesh, report, err := halfedge.New(positions, indices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slider: %v\n", err)
		os.Exit(1)
	}

	// Record the full collapse sequence once up front: rewinding a
	// half-edge mesh in place is not supported, so scrubbing backward
	// is simulated by rebuilding from scratch and replaying a prefix
	// of the recorded sequence instead.
	var collapsedEdges []int32
	for {
		e, err := mesh.Reduce()
		if err != nil {
			break
		}
		collapsedEdges = append(collapsedEdges, e)
	}

	fmt.Printf("%s: %d vertices, %d triangles, %d recorded collapses\n",
		*inputPath, report.VertexCount, report.TriangleCount, len(collapsedEdges))
	fmt.Println("controls: + more detail (fewer collapses applied), - less detail, x quit")

	input := newSilentInput()
	input.Start()
	defer input.Stop()

	applied := len(collapsedEdges) // start fully reduced, matching a "minimal LOD" default
	printLevel(positions, indices, collapsedEdges, applied)

	for {
		state := input.GetInputState()
		if state.Quit {
			return
		}
		changed := false
		if state.More && applied > 0 {
			applied--
			changed = true
		}
		if state.Less && applied < len(collapsedEdges) {
			applied++
			changed = true
		}
		input.ClearKeys()
		if changed {
			printLevel(positions, indices, collapsedEdges, applied)
		}
	}
}

func printLevel(positions []mgl64.Vec3, indices []uint32, collapsedEdges []int32, applied int) {
	m, _, err := halfedge.New(positions, indices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slider: %v\n", err)
		return
	}
	for i := 0; i < applied; i++ {
		if err := m.Collapse(collapsedEdges[i]); err != nil {
			fmt.Fprintf(os.Stderr, "slider: replay diverged at step %d: %v\n", i, err)
			return
		}
	}
	fmt.Printf("\rtriangles: %d (collapses applied: %d/%d)   ", m.FaceCount(), applied, len(collapsedEdges))
}

// silentInput mirrors the teacher's SilentInputManager shape, trimmed
// to the keys this tool cares about: more detail, less detail and quit.
type silentInput struct {
	keys     map[rune]bool
	mutex    sync.RWMutex
	running  bool
	stopChan chan bool
}

type inputState struct {
	More bool
	Less bool
	Quit bool
}

func newSilentInput() *silentInput {
	return &silentInput{keys: make(map[rune]bool), stopChan: make(chan bool)}
}

func (s *silentInput) Start() {
	if s.running {
		return
	}
	if err := keyboard.Open(); err != nil {
		panic(err)
	}
	s.running = true

	go func() {
		for {
			select {
			case <-s.stopChan:
				return
			default:
				char, key, err := keyboard.GetKey()
				if err != nil {
					continue
				}
				s.mutex.Lock()
				if char != 0 {
					s.keys[char] = true
				}
				if key == keyboard.KeyEsc {
					s.keys['x'] = true
				}
				s.mutex.Unlock()
			}
		}
	}()
}

func (s *silentInput) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.stopChan <- true
	keyboard.Close()
}

func (s *silentInput) GetInputState() inputState {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return inputState{
		More: s.keys['+'] || s.keys['='],
		Less: s.keys['-'] || s.keys['_'],
		Quit: s.keys['x'] || s.keys['X'],
	}
}

func (s *silentInput) ClearKeys() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.keys = make(map[rune]bool)
}
