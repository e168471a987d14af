package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/pagewise/binstream/pkg/binstream"
)

var (
	benchBytes       uint64
	benchChunkSize   int
	benchAlignment   uint64
	benchPageSize    uint64
	benchMetricsAddr string
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench <path>",
	Short: "Measure aligned write and read throughput",
	Long: `Write an aligned workload to the given path, read it back, and
report throughput for both directions. With --metrics-addr, codec metrics
are served on /metrics for the duration of the run.

Example:
  binstream bench /tmp/bench.bin --bytes 67108864 --metrics-addr 127.0.0.1:9311`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		alignment := benchAlignment
		if alignment == 0 {
			alignment = cfg.Alignment
		}
		pageSize := benchPageSize
		if pageSize == 0 {
			pageSize = cfg.PageSize
		}

		metrics := binstream.NewMetrics(nil)
		if benchMetricsAddr != "" {
			router := chi.NewRouter()
			router.Mount("/metrics", promhttp.Handler())
			go func() {
				if err := http.ListenAndServe(benchMetricsAddr, router); err != nil {
					cmd.PrintErrf("metrics server: %v\n", err)
				}
			}()
			cmd.Printf("serving metrics on http://%s/metrics\n", benchMetricsAddr)
		}

		var sink binstream.CloseErrors

		chunk := make([]byte, benchChunkSize)
		for i := range chunk {
			chunk[i] = byte(i)
		}

		writer, err := binstream.NewWriter(&sink, path, binstream.WithMetrics(metrics))
		if err != nil {
			return err
		}
		defer writer.Discard()

		writeStart := time.Now()
		for writer.Offset() < benchBytes {
			if err := writer.WriteAligned(chunk, alignment); err != nil {
				return err
			}
		}
		if err := writer.Flush(); err != nil {
			return err
		}
		written := writer.Offset()
		writeElapsed := time.Since(writeStart)
		writer.Discard()

		reader, err := binstream.NewReader(&sink, path, pageSize, binstream.WithMetrics(metrics))
		if err != nil {
			return err
		}
		defer reader.Discard()

		dest := make([]byte, benchChunkSize)
		readStart := time.Now()
		for reader.Offset() < written {
			if err := reader.ReadAligned(dest, alignment); err != nil {
				return err
			}
		}
		readElapsed := time.Since(readStart)
		reader.Discard()

		cmd.Printf("write: %s in %v (%.1f MB/s)\n",
			humanBytes(written), writeElapsed, mbps(written, writeElapsed))
		cmd.Printf("read:  %s in %v (%.1f MB/s)\n",
			humanBytes(written), readElapsed, mbps(written, readElapsed))

		if !reportCloseErrors(cmd, &sink) {
			return fmt.Errorf("close failure for '%s'", path)
		}
		return nil
	},
}

func humanBytes(n uint64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}

func mbps(n uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / (1 << 20) / elapsed.Seconds()
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Uint64Var(&benchBytes, "bytes", 16<<20, "Minimum number of bytes to write")
	benchCmd.Flags().IntVar(&benchChunkSize, "chunk-size", 1000, "Size of each aligned chunk")
	benchCmd.Flags().Uint64Var(&benchAlignment, "alignment", 0, "Chunk alignment (0 = config default)")
	benchCmd.Flags().Uint64Var(&benchPageSize, "page-size", 0, "Reader page size (0 = config default)")
	benchCmd.Flags().StringVar(&benchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running")
}
