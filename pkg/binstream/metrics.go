package binstream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	sideWrite = "write"
	sideRead  = "read"
)

// Metrics holds Prometheus counters for codec activity. A single Metrics
// may be shared by any number of Writers and Readers via WithMetrics.
type Metrics struct {
	bytesWritten   prometheus.Counter
	bytesRead      prometheus.Counter
	paddingWritten prometheus.Counter
	paddingSkipped prometheus.Counter
	pageFills      prometheus.Counter
	pageFillBytes  prometheus.Counter
	seeksTotal     *prometheus.CounterVec
}

// NewMetrics creates and registers all codec metrics. A nil registerer
// uses the default Prometheus registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		bytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_bytes_written_total",
			Help: "Total number of payload and padding bytes written",
		}),

		bytesRead: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_bytes_read_total",
			Help: "Total number of payload bytes read",
		}),

		paddingWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_padding_bytes_written_total",
			Help: "Total number of zero padding bytes emitted by aligned writes",
		}),

		paddingSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_padding_bytes_skipped_total",
			Help: "Total number of padding bytes skipped by aligned reads",
		}),

		pageFills: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_page_fills_total",
			Help: "Total number of reader page fills",
		}),

		pageFillBytes: factory.NewCounter(prometheus.CounterOpts{
			Name: "binstream_page_fill_bytes_total",
			Help: "Total number of bytes loaded by reader page fills",
		}),

		seeksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "binstream_seeks_total",
			Help: "Total number of slow-path repositioning seeks",
		}, []string{"side"}),
	}
}

// RecordBytesWritten records n bytes accepted by a write.
func (m *Metrics) RecordBytesWritten(n uint64) {
	m.bytesWritten.Add(float64(n))
}

// RecordBytesRead records n bytes delivered by a read.
func (m *Metrics) RecordBytesRead(n uint64) {
	m.bytesRead.Add(float64(n))
}

// RecordPaddingWritten records n padding bytes emitted by an aligned write.
func (m *Metrics) RecordPaddingWritten(n uint64) {
	m.paddingWritten.Add(float64(n))
}

// RecordPaddingSkipped records n padding bytes skipped by an aligned read.
func (m *Metrics) RecordPaddingSkipped(n uint64) {
	m.paddingSkipped.Add(float64(n))
}

// RecordPageFill records one page fill of n bytes.
func (m *Metrics) RecordPageFill(n uint64) {
	m.pageFills.Inc()
	m.pageFillBytes.Add(float64(n))
}

// RecordSeek records one slow-path seek on the given side.
func (m *Metrics) RecordSeek(side string) {
	m.seeksTotal.WithLabelValues(side).Inc()
}
