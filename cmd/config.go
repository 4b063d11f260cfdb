package cmd

import (
	"github.com/mj1618/jiggle-cli/internal/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  "Print the configuration jiggle would run with: the config file merged over the defaults, with flag overrides applied.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return output.Print(cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	addKeyFlags(configCmd)
}
