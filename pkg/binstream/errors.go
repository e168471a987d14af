package binstream

import "fmt"

// WriteError reports a failed operation on the write side: opening,
// writing, seeking or flushing.
type WriteError struct {
	Path   string
	Detail string // e.g. "failed to open", "failed to seek"
	Err    error  // underlying cause, if any
}

func (e *WriteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("failed to write '%s': %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("failed to write '%s'", e.Path)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ReadError reports a failed operation on the read side: opening, reading
// or seeking. A short read that is not explained by end-of-file is reported
// as a ReadError too.
type ReadError struct {
	Path   string
	Detail string
	Err    error
}

func (e *ReadError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("failed to read '%s': %s", e.Path, e.Detail)
	}
	return fmt.Sprintf("failed to read '%s'", e.Path)
}

func (e *ReadError) Unwrap() error { return e.Err }

// CloseError reports a failure while releasing a codec's file.
type CloseError struct {
	Path string
	Err  error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("failed to close '%s'", e.Path)
}

func (e *CloseError) Unwrap() error { return e.Err }

// InvalidPageSizeError reports a rejected page size. Zero is the only
// invalid value.
type InvalidPageSizeError struct {
	Size uint64
}

func (e *InvalidPageSizeError) Error() string {
	return fmt.Sprintf("invalid page size: %d", e.Size)
}

// CloseErrors collects close failures observed during teardown, where no
// caller is available to receive a normal error result. The caller owns the
// sink, must keep it alive for as long as any codec bound to it, and must
// inspect it after all bound codecs have been discarded. It is never
// cleared automatically and is not synchronized.
type CloseErrors struct {
	closeErrs []CloseError
}

// Record appends a close failure to the sink.
func (s *CloseErrors) Record(err CloseError) {
	s.closeErrs = append(s.closeErrs, err)
}

// IsEmpty reports whether no close failures have been recorded.
func (s *CloseErrors) IsEmpty() bool {
	return len(s.closeErrs) == 0
}

// Errors returns the recorded close failures in the order they occurred.
func (s *CloseErrors) Errors() []CloseError {
	return s.closeErrs
}

// Clear discards all recorded close failures.
func (s *CloseErrors) Clear() {
	s.closeErrs = nil
}
