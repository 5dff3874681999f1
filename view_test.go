package ringq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, seq func(yield func(int) bool)) []int {
	t.Helper()
	var out []int
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestIterateOldestToNewest(t *testing.T) {
	s := newTestStore(t, 4)
	// wrap so the oldest element is in the middle of the backing slice
	for i := 1; i <= 6; i++ {
		s.Enqueue(i)
	}
	require.Equal(t, []int{3, 4, 5, 6}, collect(t, s.Iterate()))
}

func TestIterateEmptyStore(t *testing.T) {
	s := newTestStore(t, 4)
	require.Empty(t, collect(t, s.Iterate()))

	snap := s.Snapshot()
	require.Equal(t, 0, snap.Len())
	require.Empty(t, snap.ToSlice())
}

// The sequence copies its elements when created, so mutating the store
// mid-pass does not change what an in-progress traversal observes.
func TestIterateStableUnderMutation(t *testing.T) {
	s := newTestStore(t, 4)
	for i := 1; i <= 4; i++ {
		s.Enqueue(i)
	}

	seq := s.Iterate()
	s.Enqueue(9) // evicts 1
	s.Dequeue()  // removes 2

	require.Equal(t, []int{1, 2, 3, 4}, collect(t, seq))
	require.Equal(t, []int{3, 4, 9}, s.ToSlice())
}

// A sequence is single pass: a second range resumes after the last element
// consumed rather than rewinding, and an exhausted sequence yields nothing.
func TestIterateSinglePass(t *testing.T) {
	s := newTestStore(t, 4)
	for i := 1; i <= 4; i++ {
		s.Enqueue(i)
	}
	seq := s.Iterate()

	var first []int
	for v := range seq {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{3, 4}, collect(t, seq))
	require.Empty(t, collect(t, seq))

	// a fresh call starts over
	require.Equal(t, []int{1, 2, 3, 4}, collect(t, s.Iterate()))
}

func TestForEachPositions(t *testing.T) {
	s := newTestStore(t, 4)
	for i := 1; i <= 6; i++ {
		s.Enqueue(i * 10)
	}

	var gotIdx, gotVal []int
	s.ForEach(func(i int, v int) {
		gotIdx = append(gotIdx, i)
		gotVal = append(gotVal, v)
	})
	require.Equal(t, []int{0, 1, 2, 3}, gotIdx)
	require.Equal(t, []int{30, 40, 50, 60}, gotVal)

	var calls int
	newTestStore(t, 2).ForEach(func(int, int) { calls++ })
	require.Zero(t, calls)
}

func TestToSliceDecoupledFromStore(t *testing.T) {
	s := newTestStore(t, 4)
	for i := 1; i <= 4; i++ {
		s.Enqueue(i)
	}
	vec := s.ToSlice()
	s.Enqueue(9)
	s.Clear()
	require.Equal(t, []int{1, 2, 3, 4}, vec)
}

func TestSnapshotAtBoundsAndFixedCount(t *testing.T) {
	s := newTestStore(t, 8)
	for i := 1; i <= 3; i++ {
		s.Enqueue(i)
	}
	snap := s.Snapshot()
	require.Equal(t, 3, snap.Len())

	v, ok := snap.At(0)
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = snap.At(2)
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok = snap.At(3)
	require.False(t, ok)
	_, ok = snap.At(-1)
	require.False(t, ok)

	// the captured count does not follow later mutation
	s.Enqueue(4)
	require.Equal(t, 3, snap.Len())
	require.Equal(t, 4, s.Len())
}
