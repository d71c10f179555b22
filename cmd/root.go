package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagAddr   string
	flagSeed   int64
)

var rootCmd = &cobra.Command{
	Use:   "biaslab",
	Short: "Media bias analysis API",
	Long:  "biaslab generates a corpus of bias-scored news articles grouped into narratives and serves it over an HTTP API.",
	RunE:  runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "dataset seed, 0 means time-based (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoreCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("biaslab %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
