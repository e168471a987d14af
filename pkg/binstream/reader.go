package binstream

import (
	"errors"
	"io"
	"os"
)

// Reader consumes binary input through a sliding page window: the buffer
// holds exactly the file bytes [pageBegin, pageEnd), and the cursor is the
// read position relative to pageBegin. The logical offset is
// pageBegin + cursor. Page fills happen lazily, on the first read that
// exhausts the window.
type Reader struct {
	file      *os.File
	target    uint64 // requested page size, adopted on the next fill
	active    uint64 // page size currently in effect
	pageBegin uint64
	pageEnd   uint64
	cursor    uint64
	buf       []byte
	eof       bool
	sink      *CloseErrors
	path      string
	metrics   *Metrics
}

// NewReader opens path for reading with the given page granularity and
// binds the Reader to sink for teardown error reporting. pageSize must be
// greater than zero. The sink must outlive the Reader.
func NewReader(sink *CloseErrors, path string, pageSize uint64, opts ...Option) (*Reader, error) {
	if pageSize == 0 {
		return nil, &InvalidPageSizeError{Size: pageSize}
	}
	o := applyOptions(opts)

	file, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Detail: "failed to open", Err: err}
	}

	return &Reader{
		file:    file,
		target:  pageSize,
		buf:     make([]byte, pageSize),
		sink:    sink,
		path:    path,
		metrics: o.metrics,
	}, nil
}

// PageSize returns the target page size.
func (r *Reader) PageSize() uint64 {
	return r.target
}

// SetPageSize changes the target page size. The new size takes effect at
// the next page fill. Buffer capacity grows to fit the new size but never
// shrinks. Zero is rejected without mutating state.
func (r *Reader) SetPageSize(pageSize uint64) error {
	if pageSize == 0 {
		return &InvalidPageSizeError{Size: pageSize}
	}
	r.target = pageSize
	if uint64(len(r.buf)) < pageSize {
		grown := make([]byte, pageSize)
		copy(grown, r.buf)
		r.buf = grown
	}
	return nil
}

// Offset returns the current logical offset.
func (r *Reader) Offset() uint64 {
	return r.pageBegin + r.cursor
}

// SetOffset repositions the Reader to pos. When pos falls inside the
// currently buffered page the cursor is recomputed without any I/O.
// Otherwise the file is seeked and the window reset to an empty one at
// pos; the next read triggers the fill.
func (r *Reader) SetOffset(pos uint64) error {
	if r.pageBegin <= pos && pos < r.pageBegin+r.active {
		r.cursor = pos - r.pageBegin
		return nil
	}
	if _, err := r.file.Seek(int64(pos), io.SeekStart); err != nil {
		return &ReadError{Path: r.path, Detail: "failed to seek", Err: err}
	}
	r.pageBegin = pos
	r.pageEnd = pos
	r.cursor = r.active
	r.eof = false
	if r.metrics != nil {
		r.metrics.RecordSeek(sideRead)
	}
	return nil
}

// EOF reports whether the underlying file hit end-of-file as of the last
// page fill. It is not predictive of the next read.
func (r *Reader) EOF() bool {
	return r.eof
}

// Read fills dest with exactly len(dest) bytes starting at the logical
// offset, advancing the offset by that amount. A single read may cross any
// number of page boundaries. If the file does not hold enough bytes to
// satisfy the request, Read fails with a short-read error; dest contents
// are unspecified after a failure.
func (r *Reader) Read(dest []byte) error {
	total := uint64(len(dest))
	size := total
	for r.cursor+size > r.active {
		lead := r.active - r.cursor
		copy(dest[:lead], r.buf[r.cursor:r.active])
		dest = dest[lead:]
		size -= lead
		n, err := r.fill()
		if err != nil {
			return err
		}
		if n < r.active && n < size {
			return &ReadError{Path: r.path, Detail: "not enough remaining bytes at current offset"}
		}
	}
	copy(dest, r.buf[r.cursor:r.cursor+size])
	r.cursor += size
	if r.metrics != nil {
		r.metrics.RecordBytesRead(total)
	}
	return nil
}

// ReadAligned skips the padding that brings the cursor to the next
// multiple of alignment, then reads len(dest) payload bytes. When the
// padding fits within the buffered page the cursor simply advances past
// it; otherwise a single page fill is triggered and the payload is read
// from the start of the new page. For the skip to land on the writer's
// padding, the page size must be a multiple of every alignment used with
// this Reader. alignment must be > 0.
func (r *Reader) ReadAligned(dest []byte, alignment uint64) error {
	if mod := r.cursor % alignment; mod != 0 {
		padding := alignment - mod
		if r.cursor+padding > r.active {
			if _, err := r.fill(); err != nil {
				return err
			}
		} else {
			r.cursor += padding
		}
		if r.metrics != nil {
			r.metrics.RecordPaddingSkipped(padding)
		}
	}
	return r.Read(dest)
}

// fill replaces the page window with the next activePageSize bytes at the
// current file position. A pending page-size change is adopted here, at
// most once per change. A short fill is accepted only at end-of-file;
// anything else is a read error. Returns the number of bytes filled.
func (r *Reader) fill() (uint64, error) {
	if r.active != r.target {
		r.active = r.target
	}
	n, err := io.ReadFull(r.file, r.buf[:r.active])
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, &ReadError{Path: r.path, Err: err}
		}
		r.eof = true
	}
	got := uint64(n)
	r.pageBegin = r.pageEnd
	r.pageEnd += got
	r.cursor = 0
	if r.metrics != nil {
		r.metrics.RecordPageFill(got)
	}
	return got, nil
}

// Path returns the file path the Reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Close closes the file. Like the Writer's, it is attempted exactly once.
func (r *Reader) Close() error {
	if ce := r.close(); ce != nil {
		return ce
	}
	return nil
}

// Discard closes the file and records any failure into the bound sink
// instead of returning it.
func (r *Reader) Discard() {
	if ce := r.close(); ce != nil {
		r.sink.Record(*ce)
	}
}

func (r *Reader) close() *CloseError {
	if r.file == nil {
		return nil
	}
	file := r.file
	r.file = nil
	if err := file.Close(); err != nil {
		return &CloseError{Path: r.path, Err: err}
	}
	return nil
}
