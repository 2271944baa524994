// Package queue provides the bounded lock-free MPSC ring that hands
// messages from producer goroutines to the single dispatch goroutine.
//
// The queue never blocks in either direction: TryEnqueue reports a full
// buffer with a false return and TryDequeue reports an empty buffer the
// same way. Backpressure and idling are the caller's concern (the
// submission path spins, the dispatch loop parks on a wake signal), which
// keeps this package free of any scheduling policy.
//
// Correctness rests entirely on the per-slot sequence rotation described
// on MPSC. Cursor comparisons use signed differences so that ordering
// detection keeps working after the unsigned positions wrap, and the
// cursors live on separate cache lines to avoid producer/consumer
// false sharing.
package queue
