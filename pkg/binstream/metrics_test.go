package binstream

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordCodecActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	var sink CloseErrors
	path := tempPath(t, "metered.bin")

	writer, err := NewWriter(&sink, path, WithMetrics(metrics))
	require.NoError(t, err)

	require.NoError(t, writer.Write([]byte{1, 2, 3, 4}))
	require.NoError(t, writer.WriteAligned([]byte{9}, 8))
	require.NoError(t, writer.Close())

	// 4 payload + 4 padding + 1 payload.
	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.bytesWritten))
	assert.Equal(t, float64(4), testutil.ToFloat64(metrics.paddingWritten))

	reader, err := NewReader(&sink, path, 8, WithMetrics(metrics))
	require.NoError(t, err)
	defer reader.Discard()

	dest := make([]byte, 9)
	require.NoError(t, reader.Read(dest))

	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.bytesRead))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.pageFills))
	assert.Equal(t, float64(9), testutil.ToFloat64(metrics.pageFillBytes))

	require.NoError(t, reader.SetOffset(0))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.seeksTotal.WithLabelValues(sideRead)))
}

func TestMetricsOptional(t *testing.T) {
	var sink CloseErrors
	path := tempPath(t, "unmetered.bin")

	// Codecs without WithMetrics record nothing and must not panic.
	writer, err := NewWriter(&sink, path)
	require.NoError(t, err)
	require.NoError(t, writer.WriteAligned([]byte{1}, 4))
	require.NoError(t, writer.Close())

	reader, err := NewReader(&sink, path, 4)
	require.NoError(t, err)
	defer reader.Discard()

	dest := make([]byte, 1)
	require.NoError(t, reader.Read(dest))
	assert.Equal(t, byte(1), dest[0])
}
