package binstream

import (
	"bufio"
	"io"
	"os"
)

// zeroBlock is the reusable source of alignment padding. Padding longer
// than the block is emitted in chunks.
var zeroBlock [16]byte

// Writer produces sequential binary output with an explicitly tracked
// logical offset, zero-valued alignment padding and random-access seeks.
// The offset always equals the position at which the next write lands.
type Writer struct {
	file    *os.File
	writer  *bufio.Writer
	offset  uint64
	sink    *CloseErrors
	path    string
	metrics *Metrics
}

// NewWriter opens path for truncate-write and binds the Writer to sink for
// teardown error reporting. The sink must outlive the Writer.
func NewWriter(sink *CloseErrors, path string, opts ...Option) (*Writer, error) {
	o := applyOptions(opts)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return nil, &WriteError{Path: path, Detail: "failed to open", Err: err}
	}

	return &Writer{
		file:    file,
		writer:  bufio.NewWriter(file),
		sink:    sink,
		path:    path,
		metrics: o.metrics,
	}, nil
}

// Offset returns the current logical offset.
func (w *Writer) Offset() uint64 {
	return w.offset
}

// SetOffset repositions the underlying file to pos. Buffered bytes are
// flushed first so the seek lands where the caller expects.
func (w *Writer) SetOffset(pos uint64) error {
	if err := w.Flush(); err != nil {
		return err
	}
	if _, err := w.file.Seek(int64(pos), io.SeekStart); err != nil {
		return &WriteError{Path: w.path, Detail: "failed to seek", Err: err}
	}
	w.offset = pos
	if w.metrics != nil {
		w.metrics.RecordSeek(sideWrite)
	}
	return nil
}

// SetOffsetAligned rounds pos up to the next multiple of alignment and
// seeks there. A pos already aligned is used as-is. alignment must be > 0.
func (w *Writer) SetOffsetAligned(pos, alignment uint64) error {
	if mod := pos % alignment; mod != 0 {
		pos += alignment - mod
	}
	return w.SetOffset(pos)
}

// Write writes exactly len(p) bytes at the current offset and advances the
// offset by that amount. A partial write is a failure, not retried.
func (w *Writer) Write(p []byte) error {
	n, err := w.writer.Write(p)
	if err != nil || n != len(p) {
		return &WriteError{Path: w.path, Err: err}
	}
	w.offset += uint64(n)
	if w.metrics != nil {
		w.metrics.RecordBytesWritten(uint64(n))
	}
	return nil
}

// WriteAligned emits zero padding until the offset is a multiple of
// alignment, then writes p. alignment must be > 0.
func (w *Writer) WriteAligned(p []byte, alignment uint64) error {
	if mod := w.offset % alignment; mod != 0 {
		padding := alignment - mod
		if w.metrics != nil {
			w.metrics.RecordPaddingWritten(padding)
		}
		for padding > uint64(len(zeroBlock)) {
			if err := w.Write(zeroBlock[:]); err != nil {
				return err
			}
			padding -= uint64(len(zeroBlock))
		}
		if err := w.Write(zeroBlock[:padding]); err != nil {
			return err
		}
	}
	return w.Write(p)
}

// Flush forces buffered bytes to the underlying file.
func (w *Writer) Flush() error {
	if err := w.writer.Flush(); err != nil {
		return &WriteError{Path: w.path, Detail: "failed to flush", Err: err}
	}
	return nil
}

// Path returns the file path the Writer was opened with.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes and closes the file. It is attempted exactly once: after
// the first call, Close is a no-op returning nil, whatever the first
// attempt's outcome.
func (w *Writer) Close() error {
	if ce := w.close(); ce != nil {
		return ce
	}
	return nil
}

// Discard is the teardown path: it closes the file and records any failure
// into the bound sink instead of returning it. Safe to defer alongside an
// explicit Close.
func (w *Writer) Discard() {
	if ce := w.close(); ce != nil {
		w.sink.Record(*ce)
	}
}

func (w *Writer) close() *CloseError {
	if w.file == nil {
		return nil
	}
	file := w.file
	w.file = nil

	flushErr := w.writer.Flush()
	if err := file.Close(); err != nil {
		return &CloseError{Path: w.path, Err: err}
	}
	if flushErr != nil {
		return &CloseError{Path: w.path, Err: flushErr}
	}
	return nil
}
