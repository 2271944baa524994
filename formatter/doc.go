// Package formatter turns a message's text plus its opaque style payload
// into rendered console output.
//
// The Formatter interface writes into a caller-provided bytes.Buffer so
// the dispatch loop can reuse pooled buffers across messages. GetBuffer
// and PutBuffer expose that pool; buffers larger than 64 KiB are not
// returned to it, preventing a single huge line from permanently
// inflating memory usage.
//
// The built-in Term formatter understands two style layers. A secondary
// style, when present, is composed over the raw text before the primary
// style wraps the result, mirroring nested terminal styling. Every
// rendered line ends with exactly one line terminator.
package formatter
