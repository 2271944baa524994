package formatter

import (
	"bytes"
	"sync"

	"github.com/blackfern/console/core"
)

// Formatter renders a message into a console-ready line, including the
// trailing line terminator.
type Formatter interface {
	// FormatLine renders the message into the given buffer.
	FormatLine(m *core.Message, buf *bytes.Buffer)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer retrieves a reset buffer from the pool.
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns a buffer to the pool.
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
