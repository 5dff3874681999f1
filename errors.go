package ringq

import "errors"

// ErrInvalidCapacity is returned by the constructors when the requested
// capacity is zero or negative. No RingStore is produced in that case.
//
// Overflow under the Reject policy and underflow on Dequeue/Peek are not
// errors; they are ordinary result values callers branch on.
var ErrInvalidCapacity = errors.New("ringq: capacity must be positive")
