package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pagewise/binstream/pkg/binstream"
	"github.com/pagewise/binstream/pkg/config"
)

var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binstream",
	Short: "Inspect and produce aligned flat binary files",
	Long: `binstream works with flat binary files written with explicit
alignment padding: gen produces test patterns, dump shows file contents
through the paged reader, and bench measures codec throughput.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			return nil
		}
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a yaml config file")
}

// reportCloseErrors prints any close failures deferred into the sink and
// returns true when there were none.
func reportCloseErrors(cmd *cobra.Command, sink *binstream.CloseErrors) bool {
	if sink.IsEmpty() {
		return true
	}
	for _, closeErr := range sink.Errors() {
		cmd.PrintErrf("teardown: %v\n", &closeErr)
	}
	return false
}
