package console

import "code.hybscloud.com/atomix"

// Stats tracks dispatch counters. All counters are written only by the
// dispatch goroutine but may be read from any goroutine.
type Stats struct {
	processed   atomix.Uint64
	printed     atomix.Uint64
	logged      atomix.Uint64
	skippedLogs atomix.Uint64
}

// Snapshot is a point-in-time copy of the dispatch counters.
type Snapshot struct {
	// Processed counts every dispatched message
	Processed uint64
	// Printed counts console renders
	Printed uint64
	// Logged counts successful sink appends
	Logged uint64
	// SkippedLogs counts log-bearing messages whose sink write was
	// skipped or failed
	SkippedLogs uint64
}

// Snapshot returns a copy of the current counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Processed:   s.processed.Load(),
		Printed:     s.printed.Load(),
		Logged:      s.logged.Load(),
		SkippedLogs: s.skippedLogs.Load(),
	}
}
