package console

import (
	"io"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"

	"github.com/blackfern/console/core"
	"github.com/blackfern/console/formatter"
	"github.com/blackfern/console/queue"
	"github.com/blackfern/console/sink"
	"github.com/blackfern/console/wake"
)

// Sink is the line-append persistence the dispatch loop writes to.
// sink.File is the standard implementation.
type Sink interface {
	// WriteLine appends text plus one line terminator
	WriteLine(text string) error
	// IsOpen reports whether writes can be accepted
	IsOpen() bool
	// Close releases the underlying resource
	Close() error
}

// Console decouples producer goroutines from the single goroutine that
// performs console and sink I/O. Producers hand messages over through a
// fixed-capacity lock-free queue and never block on I/O; the dispatch
// goroutine drains the queue, renders, persists, and parks on a wake
// signal when idle.
//
// The queue and wake signal are created once in New and live for the
// Console's lifetime, so messages submitted before Start are delivered
// once Start runs. A Console is safe for concurrent use by any number
// of producers.
type Console struct {
	queue *queue.MPSC[core.Message]
	wake  *wake.Signal

	out       io.Writer
	formatter formatter.Formatter
	sinkPath  string

	mu      sync.Mutex // guards the lifecycle state below
	running bool
	done    chan struct{}
	sink    Sink

	stop  atomix.Bool
	stats Stats
}

// New creates a Console. The returned handle accepts Submit immediately;
// nothing is rendered or persisted until Start.
func New(cfg Config) *Console {
	applyDefaults(&cfg)
	return &Console{
		queue:     queue.NewMPSC[core.Message](cfg.Capacity),
		wake:      wake.NewSignal(),
		out:       cfg.Out,
		formatter: cfg.Formatter,
		sinkPath:  cfg.SinkPath,
	}
}

// Start opens the sink and starts the dispatch goroutine. Idempotent:
// starting a running Console is a no-op.
//
// An optional sink path overrides the configured one. If the sink fails
// to open, Start still starts the dispatch goroutine — console-bearing
// messages keep flowing and log-bearing writes are skipped — and returns
// the open error so the caller knows the log path is dark.
func (c *Console) Start(sinkPath ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	path := c.sinkPath
	if len(sinkPath) > 0 && sinkPath[0] != "" {
		path = sinkPath[0]
	}

	var openErr error
	if s, err := sink.Open(path); err != nil {
		openErr = err
	} else {
		c.sink = s
	}

	c.stop.Store(false)
	c.done = make(chan struct{})
	c.running = true
	go c.run()

	return openErr
}

// Stop requests the dispatch goroutine to stop, waits for its final full
// drain, then closes the sink. Every message accepted by the queue before
// Stop was called is delivered by the time Stop returns. Idempotent:
// stopping a stopped (or never-started) Console is a no-op.
//
// Stop waits unboundedly for the drain; there are no timeout semantics.
func (c *Console) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false

	c.stop.Store(true)
	c.wake.Bump() // never leave the consumer parked
	<-c.done

	if c.sink != nil {
		_ = c.sink.Close()
		c.sink = nil
	}
}

// Running reports whether the dispatch goroutine is active.
func (c *Console) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Stats returns a snapshot of the dispatch counters.
func (c *Console) Stats() Snapshot {
	return c.stats.Snapshot()
}

// Submit hands a message to the dispatch goroutine. It spins with a
// cooperative backoff while the queue is full, so a successful return
// means the message was accepted and will be delivered; nothing is ever
// dropped and no error surfaces to the caller. The wake signal is bumped
// exactly once per accepted message.
func (c *Console) Submit(msg core.Message) {
	sw := spin.Wait{}
	for !c.queue.TryEnqueue(&msg) {
		sw.Once()
	}
	c.wake.Bump()
}
