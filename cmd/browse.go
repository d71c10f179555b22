package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yushkumar524/BiasLabPrototype/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the analyzed dataset in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return tui.Run(buildDataset(cfg))
	},
}
