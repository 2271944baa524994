// Package sink persists log-bearing messages as plain text lines.
//
// The sink is deliberately dumb: open in append mode, write line,
// flush, sync, close. One line per message, no rotation, no structured
// format. Buffered writes go through a bufio.Writer and are forced to
// disk on Close, so a graceful shutdown leaves every accepted line in
// the file.
//
// Only the dispatch goroutine writes to a sink, so the type is
// unsynchronized on purpose.
package sink
