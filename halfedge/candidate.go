package halfedge

import "container/heap"

// candidate is one (cost, half-edge) member of the collapse queue.
// Sorting by cost then by edge index gives every member a unique key,
// which is what makes erase-by-value well-defined: without the
// secondary key, two distinct edges that happen to cost the same would
// be indistinguishable to the queue, silently corrupting it.
type candidate struct {
	edge  int32
	cost  uint32
	index int // position in the backing heap, kept in sync by Swap
}

// candidateHeap is a container/heap.Interface min-heap ordered by
// (cost, edge), the same Push/Pop/Swap shape as the teacher's EdgeHeap
// in its quadric-error mesh simplifier, extended so each element tracks
// its own heap index and can be removed by value in O(log n) via
// heap.Remove instead of only ever popping the minimum.
type candidateHeap []*candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	return h[i].edge < h[j].edge
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *candidateHeap) Push(x any) {
	c := x.(*candidate)
	c.index = len(*h)
	*h = append(*h, c)
}

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	c.index = -1
	*h = old[:n-1]
	return c
}

// candidateSet is the ordered, erase-by-value collapse candidate
// queue: O(1) access to the minimum, O(log n) insert/erase, with
// uniqueness enforced per half-edge via byEdge.
type candidateSet struct {
	heap   candidateHeap
	byEdge map[int32]*candidate
}

func newCandidateSet() *candidateSet {
	return &candidateSet{byEdge: make(map[int32]*candidate)}
}

// Len is the number of candidates currently queued.
func (s *candidateSet) Len() int { return len(s.heap) }

// Insert adds (edge, cost) to the set. edge must not already be present.
func (s *candidateSet) Insert(edge int32, cost uint32) {
	c := &candidate{edge: edge, cost: cost}
	s.byEdge[edge] = c
	heap.Push(&s.heap, c)
}

// Remove erases edge from the set if present; a no-op otherwise.
func (s *candidateSet) Remove(edge int32) {
	c, ok := s.byEdge[edge]
	if !ok {
		return
	}
	heap.Remove(&s.heap, c.index)
	delete(s.byEdge, edge)
}

// PopMin removes and returns the lowest-cost candidate.
func (s *candidateSet) PopMin() (edge int32, cost uint32, ok bool) {
	if len(s.heap) == 0 {
		return 0, 0, false
	}
	c := heap.Pop(&s.heap).(*candidate)
	delete(s.byEdge, c.edge)
	return c.edge, c.cost, true
}
