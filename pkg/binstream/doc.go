// Package binstream provides a pair of binary stream codecs for flat
// on-disk formats: an offset-tracked Writer with alignment padding, and a
// page-windowed buffered Reader with alignment-aware skips and random-access
// repositioning.
//
// # Alignment
//
// Both codecs operate on opaque byte sequences. The aligned variants insert
// or skip the minimal run of padding bytes needed to bring the current
// position to the next multiple of an alignment A:
//
//	padding = (A - offset % A) % A
//
// Padding bytes written by the Writer are always zero. Padding bytes skipped
// by the Reader are not validated. Alignments must be positive; they are not
// required to be powers of two.
//
// # Page window
//
// The Reader buffers the file in pages of a caller-chosen size. The window
// [pageBegin, pageEnd) describes the file-offset range currently buffered,
// and the cursor is the read position relative to pageBegin, so the logical
// offset is always pageBegin + cursor. A read may span any number of page
// boundaries; a seek whose target falls inside the current window costs no
// I/O. The buffered padding-skip in ReadAligned assumes the page size is a
// multiple of every alignment used with that Reader (see ReadAligned).
//
// # Teardown
//
// Close propagates its failure like any other operation. Discard is the
// teardown path: it closes the resource and records any failure into the
// CloseErrors sink the codec was constructed with, so deferred cleanup never
// loses an error. The caller must inspect the sink after all codecs bound to
// it have been discarded.
//
// Neither codec is safe for concurrent use.
package binstream
