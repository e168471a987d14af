package binstream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func TestNewWriter(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	assert.NotNil(t, writer)
	assert.FileExists(t, path)
	assert.Equal(t, uint64(0), writer.Offset())
	assert.Equal(t, path, writer.Path())

	require.NoError(t, writer.Close())
	assert.True(t, sink.IsEmpty())
}

func TestNewWriterOpenError(t *testing.T) {
	var sink CloseErrors
	path := filepath.Join(t.TempDir(), "missing", "out.bin")

	writer, err := NewWriter(&sink, path)
	require.Error(t, err)
	assert.Nil(t, writer)

	var werr *WriteError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, path, werr.Path)
	assert.Equal(t, "failed to open", werr.Detail)
}

func TestWriteAdvancesOffset(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte{1, 2, 3, 4, 5}))
	assert.Equal(t, uint64(5), writer.Offset())

	require.NoError(t, writer.Write([]byte{6, 7}))
	assert.Equal(t, uint64(7), writer.Offset())

	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7}, data)
}

func TestOffsetIdempotentQuery(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte("abc")))
	assert.Equal(t, writer.Offset(), writer.Offset())
}

func TestWriteAlignedPadsWithZeroes(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte{1, 2, 3}))
	require.NoError(t, writer.WriteAligned([]byte{9}, 8))
	assert.Equal(t, uint64(9), writer.Offset())
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 9}, data)
}

func TestWriteAlignedNoPaddingWhenAligned(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.WriteAligned([]byte{7, 8}, 16))
	assert.Equal(t, uint64(2), writer.Offset())
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 8}, data)
}

func TestWriteAlignedChunkedPadding(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	// 63 padding bytes, emitted through the 16-byte zero block in chunks.
	require.NoError(t, writer.Write([]byte{0xFF}))
	require.NoError(t, writer.WriteAligned([]byte{0xAA}, 64))
	assert.Equal(t, uint64(65), writer.Offset())
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 65)
	assert.Equal(t, byte(0xFF), data[0])
	for i := 1; i < 64; i++ {
		assert.Equal(t, byte(0), data[i], "padding byte %d", i)
	}
	assert.Equal(t, byte(0xAA), data[64])
}

func TestSetOffsetRewrites(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte("abcd")))
	require.NoError(t, writer.SetOffset(2))
	assert.Equal(t, uint64(2), writer.Offset())
	require.NoError(t, writer.Write([]byte("ZZ")))
	assert.Equal(t, uint64(4), writer.Offset())
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abZZ"), data)
}

func TestSetOffsetAligned(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte{1}))
	require.NoError(t, writer.SetOffsetAligned(5, 4))
	assert.Equal(t, uint64(8), writer.Offset())

	// Already aligned positions are used as-is.
	require.NoError(t, writer.SetOffsetAligned(8, 4))
	assert.Equal(t, uint64(8), writer.Offset())

	require.NoError(t, writer.Write([]byte{2}))
	require.NoError(t, writer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, 9)
	assert.Equal(t, byte(2), data[8])
}

func TestWriterCloseIdempotent(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)

	require.NoError(t, writer.Close())
	require.NoError(t, writer.Close())

	writer.Discard()
	assert.True(t, sink.IsEmpty())
}

func TestWriterDiscardLeavesSinkEmptyOnSuccess(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	require.NoError(t, writer.Write([]byte("payload")))

	writer.Discard()
	writer.Discard()
	assert.True(t, sink.IsEmpty())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestFlush(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "out.bin")

	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	defer writer.Discard()

	require.NoError(t, writer.Write([]byte("buffered")))
	require.NoError(t, writer.Flush())

	// Visible on disk before Close.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("buffered"), data)
}
