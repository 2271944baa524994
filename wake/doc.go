// Package wake lets the dispatch goroutine idle without busy-polling.
//
// The classic check-then-sleep race — producer bumps after the consumer
// found the queue empty but before it parked — is closed by a generation
// counter plus a buffered notification token: Wait re-reads the counter
// as part of entering the wait, and any bump that raced the park leaves
// a token behind that makes the park return immediately.
//
// Wakeups are a hint, not a message. Callers must re-validate whatever
// condition they were waiting on (queue non-empty, stop requested) after
// every Wait return.
package wake
