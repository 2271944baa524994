package console

import (
	"github.com/blackfern/console/core"
	"github.com/blackfern/console/formatter"
)

// actions maps a message kind to its dispatch actions. Rendering picks
// styled or plain from the message's own Styled flag; the kind only
// decides which outputs receive the message.
var actions = [...]struct{ print, log bool }{
	core.Print:             {print: true},
	core.Log:               {log: true},
	core.LogAndPrint:       {print: true, log: true},
	core.StyledPrint:       {print: true},
	core.LogAndStyledPrint: {print: true, log: true},
	core.DebugPrint:        {print: true},
	core.DebugLog:          {log: true},
	core.DebugLogAndPrint:  {print: true, log: true},
}

// run is the dispatch loop, executed by exactly one goroutine per Start.
// It drains the queue, parks on the wake signal when empty, and performs
// one final full drain after a stop request so nothing accepted before
// shutdown is lost.
func (c *Console) run() {
	defer close(c.done)

	observed := c.wake.Load()

	for !c.stop.Load() {
		c.drain()
		observed = c.wake.Wait(observed)
	}

	c.drain()
}

// drain dequeues and dispatches until the queue reports empty.
func (c *Console) drain() {
	for {
		msg, ok := c.queue.TryDequeue()
		if !ok {
			return
		}
		c.dispatch(&msg)
	}
}

// dispatch performs the actions for a single message.
func (c *Console) dispatch(m *core.Message) {
	defer c.stats.processed.Add(1)

	if int(m.Kind) >= len(actions) {
		return
	}
	act := actions[m.Kind]

	if act.print {
		buf := formatter.GetBuffer()
		c.formatter.FormatLine(m, buf)
		_, _ = c.out.Write(buf.Bytes())
		formatter.PutBuffer(buf)
		c.stats.printed.Add(1)
	}

	if act.log {
		if c.sink != nil && c.sink.IsOpen() {
			if err := c.sink.WriteLine(m.Text); err == nil {
				c.stats.logged.Add(1)
			} else {
				c.stats.skippedLogs.Add(1)
			}
		} else {
			// Sink never opened or already dark: the log path for this
			// message is lost, the console path above still happened.
			c.stats.skippedLogs.Add(1)
		}
	}
}
