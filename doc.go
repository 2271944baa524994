// Package console is an asynchronous console and line-sink writer.
// Producer goroutines submit messages without ever blocking on I/O;
// a single dispatch goroutine renders them to a terminal writer and
// appends log-bearing ones to a plain text file.
//
// The hand-off is a fixed-capacity lock-free MPSC queue paired with a
// generation-counter wake signal, so an idle consumer parks instead of
// polling and a full queue applies backpressure by spinning the
// producer, never by dropping. Messages are delivered in the single
// global order in which the queue accepted them, and each producer's
// own submissions keep their program order.
//
// A Console handle is built once and shared:
//
//	con := console.New(console.Config{SinkPath: "app.log"})
//	if err := con.Start(); err != nil {
//	    // sink is dark, console output still flows
//	}
//	defer con.Stop()
//
//	con.Print("ready")
//	con.Log("persisted only")
//	con.StyledPrint("alert", lipgloss.NewStyle().Bold(true))
//
// Stop performs one final full drain before closing the sink: every
// message whose Submit returned before Stop was called is delivered by
// the time Stop returns.
//
// The package-level functions (Print, Log, Start, ...) delegate to a
// default handle for programs that don't need multiple instances.
//
// Entry points come in plain, formatted, styled, and debug variants;
// all of them are thin constructors over Submit. Styles are lipgloss
// values carried opaquely through the pipeline and interpreted only at
// render time.
package console
