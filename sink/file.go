package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// File is an append-only line sink backed by a single file.
//
// File is not safe for concurrent use. The dispatch goroutine is the
// only writer by contract, and Close runs only after that goroutine has
// exited, so the type carries no locking.
type File struct {
	path string
	file *os.File
	w    *bufio.Writer
}

// Open opens (or creates) the file at path in append mode, creating
// parent directories as needed.
func Open(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("sink: path is required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("sink: create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}

	return &File{
		path: path,
		file: file,
		w:    bufio.NewWriterSize(file, 4096),
	}, nil
}

// WriteLine appends text followed by a single line terminator.
// No framing, no timestamps, no escaping: the persisted form is exactly
// the text plus '\n'.
func (f *File) WriteLine(text string) error {
	if f.file == nil {
		return fmt.Errorf("sink: %s is closed", f.path)
	}
	if _, err := f.w.WriteString(text); err != nil {
		return err
	}
	return f.w.WriteByte('\n')
}

// IsOpen reports whether the sink can accept writes.
func (f *File) IsOpen() bool {
	return f != nil && f.file != nil
}

// Path returns the file path the sink was opened with.
func (f *File) Path() string {
	return f.path
}

// Flush pushes buffered lines to the operating system.
func (f *File) Flush() error {
	if f.file == nil {
		return nil
	}
	return f.w.Flush()
}

// Close flushes, syncs and closes the underlying file. Closing an
// already-closed sink is a no-op.
func (f *File) Close() error {
	if f.file == nil {
		return nil
	}

	flushErr := f.w.Flush()
	syncErr := f.file.Sync()
	closeErr := f.file.Close()
	f.file = nil

	if flushErr != nil {
		return flushErr
	}
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}
