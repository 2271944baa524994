package wake

import "code.hybscloud.com/atomix"

// Signal couples a monotonic generation counter with a park/notify
// primitive. The consumer parks with Wait and producers wake it with
// Bump.
//
// The notify side is a 1-buffered token channel. Bump increments the
// generation first and then deposits a token without blocking; if the
// buffer already holds a token the deposit is dropped, which is fine
// because one pending token is enough to unpark the waiter, and the
// waiter re-reads the generation after every wakeup. A Bump that lands
// between the waiter's generation check and its park is therefore never
// lost: its token stays in the buffer and the park returns immediately.
type Signal struct {
	gen   atomix.Uint64
	token chan struct{}
}

// NewSignal creates a new Signal with generation zero.
func NewSignal() *Signal {
	return &Signal{token: make(chan struct{}, 1)}
}

// Bump increments the generation counter and wakes a parked waiter,
// if any. Safe for concurrent use by any number of goroutines.
func (s *Signal) Bump() {
	s.gen.AddAcqRel(1)
	select {
	case s.token <- struct{}{}:
	default:
	}
}

// Load returns the current generation without blocking.
func (s *Signal) Load() uint64 {
	return s.gen.LoadAcquire()
}

// Wait blocks the calling goroutine until the generation differs from
// last, then returns the new generation. Spurious tokens (left over from
// bumps that were already observed) cause a re-check, not a false return.
func (s *Signal) Wait(last uint64) uint64 {
	for {
		if gen := s.gen.LoadAcquire(); gen != last {
			return gen
		}
		<-s.token
	}
}
