package ringq

import "sync/atomic"

// Stats menyimpan snapshot penghitung hasil operasi antrean.
type Stats struct {
	Accepted   uint64 // Enqueue sukses tanpa eviction
	Evicted    uint64 // Enqueue yang mengusir elemen tertua
	Rejected   uint64 // Enqueue yang ditolak (kebijakan Reject)
	Dequeued   uint64 // Dequeue sukses
	Underflows uint64 // Dequeue pada antrean kosong
}

// Counters adalah Observer bawaan yang menghitung setiap hasil operasi.
// Penghitung memakai atomic sehingga satu Counters aman dibagikan ke
// beberapa RingStore sekaligus (setiap store tetap harus diserialisasi
// sendiri seperti biasa).
type Counters struct {
	accepted   uint64
	evicted    uint64
	rejected   uint64
	dequeued   uint64
	underflows uint64
}

var _ Observer = (*Counters)(nil)

// Enqueued mencatat hasil satu panggilan Enqueue.
func (c *Counters) Enqueued(out Outcome) {
	switch out {
	case Accepted:
		atomic.AddUint64(&c.accepted, 1)
	case EvictedOldest:
		atomic.AddUint64(&c.evicted, 1)
	case Rejected:
		atomic.AddUint64(&c.rejected, 1)
	}
}

// Dequeued mencatat hasil satu panggilan Dequeue.
func (c *Counters) Dequeued(ok bool) {
	if ok {
		atomic.AddUint64(&c.dequeued, 1)
	} else {
		atomic.AddUint64(&c.underflows, 1)
	}
}

// GetStats mengambil snapshot penghitung tanpa lock berat.
func (c *Counters) GetStats() Stats {
	return Stats{
		Accepted:   atomic.LoadUint64(&c.accepted),
		Evicted:    atomic.LoadUint64(&c.evicted),
		Rejected:   atomic.LoadUint64(&c.rejected),
		Dequeued:   atomic.LoadUint64(&c.dequeued),
		Underflows: atomic.LoadUint64(&c.underflows),
	}
}

// ResetStats mengatur ulang semua penghitung.
func (c *Counters) ResetStats() {
	atomic.StoreUint64(&c.accepted, 0)
	atomic.StoreUint64(&c.evicted, 0)
	atomic.StoreUint64(&c.rejected, 0)
	atomic.StoreUint64(&c.dequeued, 0)
	atomic.StoreUint64(&c.underflows, 0)
}
