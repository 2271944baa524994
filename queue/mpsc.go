package queue

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPSC is a fixed-capacity lock-free multi-producer single-consumer queue.
//
// Producers claim slots by CAS on the head cursor; the single consumer
// reads sequentially from the tail cursor. Each slot carries its own
// sequence number that rotates through three phases per wrap:
//
//	seq == pos              slot empty, writable at pos
//	seq == pos+1            slot full, readable as the pos'th element
//	seq == pos+capacity     slot empty again, writable at the next wrap
//
// The sequence store after the element write uses release ordering and the
// sequence load before the element read uses acquire ordering, so the
// consumer can never observe a partially written element.
//
// Enqueue is wait-free with a single producer and lock-free under
// contention (a failed CAS only means another producer made progress).
type MPSC[T any] struct {
	_        pad
	head     atomix.Uint64 // Producers CAS here
	_        pad
	tail     atomix.Uint64 // Consumer reads from here
	_        pad
	buffer   []slot[T]
	mask     uint64
	capacity uint64
}

type slot[T any] struct {
	seq  atomix.Uint64
	elem T
	_    padShort
}

// NewMPSC creates a new MPSC queue.
// Capacity rounds up to the next power of 2 so that position-to-slot
// mapping is a single mask. Panics if capacity < 2.
func NewMPSC[T any](capacity int) *MPSC[T] {
	if capacity < 2 {
		panic("queue: capacity must be >= 2")
	}

	n := uint64(roundToPow2(capacity))
	q := &MPSC[T]{
		buffer:   make([]slot[T], n),
		mask:     n - 1,
		capacity: n,
	}

	for i := uint64(0); i < n; i++ {
		q.buffer[i].seq.StoreRelaxed(i)
	}

	return q
}

// TryEnqueue adds an element to the queue (multiple producers safe).
// The element is copied into the claimed slot. Returns false without
// blocking when the queue is full.
func (q *MPSC[T]) TryEnqueue(elem *T) bool {
	sw := spin.Wait{}
	pos := q.head.LoadRelaxed()

	for {
		s := &q.buffer[pos&q.mask]
		seq := s.seq.LoadAcquire()

		// Signed difference survives cursor wrap-around past 2^64.
		diff := int64(seq) - int64(pos)

		switch {
		case diff == 0:
			if q.head.CompareAndSwapAcqRel(pos, pos+1) {
				s.elem = *elem
				s.seq.StoreRelease(pos + 1)
				return true
			}
			// Lost the claim race; another producer owns pos now.
			sw.Once()
			pos = q.head.LoadRelaxed()
		case diff < 0:
			// The slot has not been freed by the consumer yet: the
			// buffer is full from this producer's point of view.
			return false
		default:
			pos = q.head.LoadRelaxed()
		}
	}
}

// TryDequeue removes and returns the next element (single consumer only).
// Returns (zero-value, false) without blocking when the queue is empty.
func (q *MPSC[T]) TryDequeue() (T, bool) {
	pos := q.tail.LoadRelaxed()
	s := &q.buffer[pos&q.mask]
	seq := s.seq.LoadAcquire()

	if int64(seq)-int64(pos+1) != 0 {
		var zero T
		return zero, false
	}

	q.tail.StoreRelaxed(pos + 1)

	elem := s.elem
	var zero T
	s.elem = zero // release references for GC
	s.seq.StoreRelease(pos + q.capacity)

	return elem, true
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return int(q.capacity)
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is trailing slot padding that keeps a slot's sequence word
// away from the next slot's tail, reducing false sharing between
// neighboring slots.
type padShort [64 - 8]byte
