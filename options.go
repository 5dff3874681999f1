package ringq

// OverflowPolicy menentukan perilaku Enqueue saat antrean penuh.
type OverflowPolicy int

const (
	// Overwrite mengusir elemen tertua untuk memberi tempat bagi elemen
	// baru (perilaku default).
	Overwrite OverflowPolicy = iota
	// Reject menolak elemen baru dan membiarkan antrean tidak berubah.
	Reject
)

// String mengembalikan nama kebijakan untuk keperluan log/test.
func (p OverflowPolicy) String() string {
	switch p {
	case Overwrite:
		return "Overwrite"
	case Reject:
		return "Reject"
	}
	return "Unknown"
}

// Observer menerima notifikasi hasil operasi antrean. Observer dipasang
// lewat Options dan dipanggil secara sinkron pada akhir setiap operasi;
// RingStore sendiri tidak menyimpan statistik apa pun.
//
// Implementasi bawaan tersedia di Counters (lihat stats.go).
type Observer interface {
	// Enqueued dipanggil setiap Enqueue selesai dengan hasilnya.
	Enqueued(out Outcome)
	// Dequeued dipanggil setiap Dequeue; ok=false artinya antrean kosong.
	Dequeued(ok bool)
}

// Options menyediakan opsi konfigurasi untuk RingStore.
//
//   - Policy:   kebijakan overflow saat antrean penuh (default Overwrite)
//   - Observer: penerima notifikasi hasil operasi (nil = nonaktif)
//
// Semua bidang bersifat opsi; nilai zero artinya gunakan default.
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	Policy   OverflowPolicy // Overwrite atau Reject
	Observer Observer       // Penghitung eksternal, boleh nil
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan NewRingStore.
func DefaultOptions() Options {
	return Options{
		Policy: Overwrite,
	}
}
