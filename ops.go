package ringq

// Outcome reports how a single Enqueue call resolved. Overflow is an
// ordinary outcome, never an error.
type Outcome int

const (
	// Accepted means spare capacity existed and the item was stored.
	Accepted Outcome = iota
	// EvictedOldest means the store was full and the oldest element was
	// evicted to make room (Overwrite policy).
	EvictedOldest
	// Rejected means the store was full and the item was refused, leaving
	// the store unchanged (Reject policy).
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "Accepted"
	case EvictedOldest:
		return "EvictedOldest"
	case Rejected:
		return "Rejected"
	}
	return "Unknown"
}

// phys maps a logical offset from the oldest element to a physical slot.
// Correct for any i >= 0 because len(buf) is a power of two, so mask has
// all low bits set. Every access to the backing slice goes through here.
func (s *RingStore[T]) phys(i int) int { return (s.head + i) & s.mask }

// Enqueue appends v as the newest element.
//
// With spare capacity the outcome is Accepted. On a full store the
// configured overflow policy decides: Overwrite evicts the oldest element
// and returns it with outcome EvictedOldest; Reject leaves the store
// untouched and returns outcome Rejected. The evicted value is meaningful
// only when the outcome is EvictedOldest.
func (s *RingStore[T]) Enqueue(v T) (evicted T, out Outcome) {
	switch {
	case s.count < len(s.buf):
		s.buf[s.phys(s.count)] = v
		s.count++
		out = Accepted
	case s.policy == Reject:
		out = Rejected
	default: // Overwrite
		evicted = s.buf[s.phys(0)]
		s.head = (s.head + 1) & s.mask
		s.buf[s.phys(s.count-1)] = v
		out = EvictedOldest
	}
	if s.obs != nil {
		s.obs.Enqueued(out)
	}
	return evicted, out
}

// Dequeue removes and returns the oldest element. ok is false on an empty
// store, which is an expected condition, not an error.
func (s *RingStore[T]) Dequeue() (v T, ok bool) {
	if s.count == 0 {
		if s.obs != nil {
			s.obs.Dequeued(false)
		}
		return v, false
	}
	i := s.phys(0)
	v = s.buf[i]
	var zero T
	s.buf[i] = zero // drop the slot's reference so the value can be collected
	s.head = (s.head + 1) & s.mask
	s.count--
	if s.obs != nil {
		s.obs.Dequeued(true)
	}
	return v, true
}

// Peek returns the element at logical offset i without mutation; offset 0
// is the oldest element, Len()-1 the newest. ok is false when no element
// exists at that offset.
func (s *RingStore[T]) Peek(i int) (v T, ok bool) {
	if i < 0 || i >= s.count {
		return v, false
	}
	return s.buf[s.phys(i)], true
}

// Clear resets the store to empty in O(1). Slots beyond the logical content
// keep stale values; they are never readable through the public API.
func (s *RingStore[T]) Clear() {
	s.head = 0
	s.count = 0
}

// Len returns the number of live elements.
func (s *RingStore[T]) Len() int { return s.count }

// Cap returns the realized capacity: the requested capacity rounded up to
// a power of two at construction.
func (s *RingStore[T]) Cap() int { return len(s.buf) }

// IsEmpty reports whether the store holds no elements.
func (s *RingStore[T]) IsEmpty() bool { return s.count == 0 }

// IsFull reports whether the store is at capacity.
func (s *RingStore[T]) IsFull() bool { return s.count == len(s.buf) }
