// Package core defines the shared types used across the console pipeline.
//
// It provides the Message type that represents a single output event,
// the Kind type that selects which dispatch actions the event triggers,
// and the Priority type that classifies importance.
//
// A Message is moved, never shared: the producer builds it, the queue
// slot takes ownership on enqueue, and the dispatch loop takes ownership
// on dequeue. Nothing mutates a Message after construction, so no
// synchronization is needed beyond the queue's own hand-off.
//
// Style fields are opaque to everything but the formatter. The pipeline
// carries them through unmodified, which keeps the queue free of any
// rendering or terminal concerns.
package core
