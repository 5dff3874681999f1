package ringq

import "fmt"

// RingStore menyediakan implementasi antrean FIFO berkapasitas tetap di atas
// satu slice berukuran pangkat dua.
//
// Elemen hidup menempati posisi logis head..head+count-1; setiap posisi
// logis dipetakan ke slot fisik lewat (head+i)&mask. Tidak ada elemen yang
// digeser di memori pada enqueue/dequeue — hanya head dan count yang
// berubah, sehingga semua operasi O(1) berapa pun isi antrean.
//
// RingStore TIDAK aman untuk goroutine; lihat doc.go.
type RingStore[T any] struct {
	buf    []T // penyimpanan tetap, len(buf) == kapasitas terealisasi
	head   int // indeks fisik elemen tertua
	count  int // jumlah elemen hidup, 0..len(buf)
	mask   int // len(buf)-1, valid karena len(buf) pangkat dua
	policy OverflowPolicy
	obs    Observer // boleh nil
}

// NewRingStore membuat antrean dengan opsi default (lihat DefaultOptions).
// Kapasitas dibulatkan ke atas ke pangkat dua terdekat (minimum 1); kapasitas
// nol atau negatif menghasilkan ErrInvalidCapacity.
func NewRingStore[T any](capacity int) (*RingStore[T], error) {
	return NewRingStoreWithOptions[T](capacity, DefaultOptions())
}

// NewRingStoreWithOptions membuat antrean dengan opsi kustom.
func NewRingStoreWithOptions[T any](capacity int, opts Options) (*RingStore[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	n := nextPow2(capacity)
	return &RingStore[T]{
		buf:    make([]T, n),
		mask:   n - 1,
		policy: opts.Policy,
		obs:    opts.Observer,
	}, nil
}
