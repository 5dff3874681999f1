// Package ringq provides a fixed-capacity, power-of-two-sized bounded FIFO
// queue (ring buffer) with a configurable overflow policy and an
// oldest-to-newest traversal protocol built on read-only snapshots.
//
// The library is organised into several files for clarity:
//
//	options.go – configuration struct, overflow policies & observer hook
//	errors.go  – construction-time error values
//	pow2.go    – power-of-two capacity rounding
//	store.go   – constructors & core fields
//	ops.go     – enqueue/dequeue/peek/clear & index mapping
//	view.go    – snapshot view & ordered traversal helpers
//	stats.go   – lightweight outcome counters
//
// A RingStore is not safe for concurrent use. Callers that share one
// instance across goroutines must serialize every call externally;
// unsynchronized concurrent mutation is undefined behavior.
package ringq
