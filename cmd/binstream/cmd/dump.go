package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagewise/binstream/pkg/binstream"
)

var (
	dumpPageSize uint64
	dumpWidth    uint64
	dumpStart    uint64
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump <path>",
	Short: "Hex-dump a file through the paged reader",
	Long: `Read a file through the page-windowed reader and print its
contents as hex, one line per row of bytes.

Example:
  binstream dump pattern.bin --page-size 64 --width 16`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		pageSize := dumpPageSize
		if pageSize == 0 {
			pageSize = cfg.PageSize
		}

		if dumpWidth == 0 {
			return fmt.Errorf("width must be greater than zero")
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		size := uint64(info.Size())
		if dumpStart > size {
			return fmt.Errorf("offset %d past end of %d-byte file", dumpStart, size)
		}

		var sink binstream.CloseErrors
		reader, err := binstream.NewReader(&sink, path, pageSize)
		if err != nil {
			return err
		}
		defer reader.Discard()

		if dumpStart > 0 {
			if err := reader.SetOffset(dumpStart); err != nil {
				return err
			}
		}

		row := make([]byte, dumpWidth)
		for pos := dumpStart; pos < size; pos += dumpWidth {
			line := row
			if remaining := size - pos; remaining < dumpWidth {
				line = row[:remaining]
			}
			if err := reader.Read(line); err != nil {
				return err
			}
			cmd.Printf("%08x  % x\n", pos, line)
		}

		reader.Discard()
		if !reportCloseErrors(cmd, &sink) {
			return fmt.Errorf("close failure for '%s'", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().Uint64Var(&dumpPageSize, "page-size", 0, "Reader page size (0 = config default)")
	dumpCmd.Flags().Uint64Var(&dumpWidth, "width", 16, "Bytes per output line")
	dumpCmd.Flags().Uint64Var(&dumpStart, "offset", 0, "Offset to start dumping from")
}
