package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagewise/binstream/pkg/binstream"
)

var (
	genCount     int
	genChunkSize int
	genAlignment uint64
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen <path>",
	Short: "Write an aligned test pattern",
	Long: `Write a deterministic test pattern: a sequence of chunks, each
aligned to the given boundary and filled with its chunk index.

Example:
  binstream gen pattern.bin --count 5 --chunk-size 3 --alignment 16`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		alignment := genAlignment
		if alignment == 0 {
			alignment = cfg.Alignment
		}

		var sink binstream.CloseErrors
		writer, err := binstream.NewWriter(&sink, path)
		if err != nil {
			return err
		}
		defer writer.Discard()

		chunk := make([]byte, genChunkSize)
		for i := 0; i < genCount; i++ {
			for j := range chunk {
				chunk[j] = byte(i)
			}
			if err := writer.WriteAligned(chunk, alignment); err != nil {
				return err
			}
		}
		if err := writer.Flush(); err != nil {
			return err
		}

		cmd.Printf("wrote %d chunks of %d bytes at alignment %d, final offset %d\n",
			genCount, genChunkSize, alignment, writer.Offset())

		writer.Discard()
		if !reportCloseErrors(cmd, &sink) {
			return fmt.Errorf("close failure for '%s'", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().IntVar(&genCount, "count", 16, "Number of chunks to write")
	genCmd.Flags().IntVar(&genChunkSize, "chunk-size", 24, "Size of each chunk in bytes")
	genCmd.Flags().Uint64Var(&genAlignment, "alignment", 0, "Chunk alignment (0 = config default)")
}
