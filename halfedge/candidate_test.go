package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCandidateSetBreaksCostTiesBySmallerEdgeIndex exercises spec.md
// §8's ordering-tie scenario directly against the priority queue: two
// members with identical cost must not be indistinguishable to the
// set (that would corrupt erase-by-value), and PopMin must prefer the
// smaller half-edge index between them.
func TestCandidateSetBreaksCostTiesBySmallerEdgeIndex(t *testing.T) {
	s := newCandidateSet()
	s.Insert(9, 100)
	s.Insert(2, 100)
	s.Insert(5, 100)

	edge, cost, ok := s.PopMin()
	require.True(t, ok)
	assert.Equal(t, int32(2), edge, "PopMin on a cost tie should prefer the smallest half-edge index")
	assert.Equal(t, uint32(100), cost)

	edge, _, ok = s.PopMin()
	require.True(t, ok)
	assert.Equal(t, int32(5), edge)

	edge, _, ok = s.PopMin()
	require.True(t, ok)
	assert.Equal(t, int32(9), edge)

	_, _, ok = s.PopMin()
	assert.False(t, ok, "PopMin on an empty set should report ok=false")
}

// TestCandidateSetRemoveByValue confirms erase-by-value leaves the
// remaining total order intact, the property the tie-break's secondary
// key exists to protect per spec.md's Design Notes.
func TestCandidateSetRemoveByValue(t *testing.T) {
	s := newCandidateSet()
	s.Insert(1, 50)
	s.Insert(2, 10)
	s.Insert(3, 10)

	s.Remove(2)
	require.Equal(t, 2, s.Len())

	edge, _, ok := s.PopMin()
	require.True(t, ok)
	assert.Equal(t, int32(3), edge, "PopMin should return the remaining tied-cost edge 3 once edge 2 was removed")
}
