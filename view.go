package ringq

import "iter"

// Snapshot is a read-only capture of a RingStore's positional state at one
// instant: backing slice, head, mask and element count. It borrows the
// store's buffer rather than copying it, so it allocates nothing; the count
// is fixed at capture time even if the store mutates afterwards.
//
// Snapshot is the only way traversal collaborators see the store's
// internals. Nothing reachable through it can mutate the store.
type Snapshot[T any] struct {
	buf   []T
	head  int
	mask  int
	count int
}

// Snapshot returns a read-only view of the store's current state, intended
// for traversal. General consumers should use Peek and the traversal
// helpers instead.
func (s *RingStore[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{buf: s.buf, head: s.head, mask: s.mask, count: s.count}
}

// Len returns the element count captured when the snapshot was taken.
func (v Snapshot[T]) Len() int { return v.count }

// At returns the element at logical offset i (0 = oldest) as of the read.
// Because the snapshot borrows the store's buffer, a store mutated after
// capture may show updated values here; use ToSlice for value semantics.
func (v Snapshot[T]) At(i int) (val T, ok bool) {
	if i < 0 || i >= v.count {
		return val, false
	}
	return v.buf[(v.head+i)&v.mask], true
}

// ToSlice materializes the live elements oldest first as a fresh slice,
// fully decoupled from the store. An empty store yields an empty slice.
func (v Snapshot[T]) ToSlice() []T {
	out := make([]T, v.count)
	for i := 0; i < v.count; i++ {
		out[i] = v.buf[(v.head+i)&v.mask]
	}
	return out
}

// ForEach eagerly visits every live element from oldest to newest, passing
// each element's 0-based traversal position. The store is not mutated.
func (v Snapshot[T]) ForEach(fn func(i int, val T)) {
	for i := 0; i < v.count; i++ {
		fn(i, v.buf[(v.head+i)&v.mask])
	}
}

// Iterate returns a lazy oldest-to-newest sequence over the elements.
//
// The elements are copied out when Iterate is called, so mutating the store
// during a pass cannot affect the values yielded. The sequence is single
// pass and not restartable: ranging over it again resumes after the last
// element consumed, and an exhausted sequence yields nothing. Call Iterate
// again for a fresh pass.
func (v Snapshot[T]) Iterate() iter.Seq[T] {
	items := v.ToSlice()
	next := 0
	return func(yield func(T) bool) {
		for next < len(items) {
			val := items[next]
			next++
			if !yield(val) {
				return
			}
		}
	}
}

// Iterate is shorthand for s.Snapshot().Iterate().
func (s *RingStore[T]) Iterate() iter.Seq[T] { return s.Snapshot().Iterate() }

// ForEach is shorthand for s.Snapshot().ForEach(fn).
func (s *RingStore[T]) ForEach(fn func(i int, val T)) { s.Snapshot().ForEach(fn) }

// ToSlice is shorthand for s.Snapshot().ToSlice().
func (s *RingStore[T]) ToSlice() []T { return s.Snapshot().ToSlice() }
