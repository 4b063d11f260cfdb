package cmd

import (
	"github.com/mj1618/jiggle-cli/internal/jiggler"
	"github.com/mj1618/jiggle-cli/internal/output"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Listen for the hotkeys and jiggle the pointer while switched on",
	Long: `Start jiggle in the foreground. Jiggling starts switched off.

Press the toggle key (default: Num Lock) to switch jiggling on or off.
Press the stop key (default: Esc) to quit; a run summary is printed on exit.

Examples:
  jiggle run
  jiggle run --toggle-key f9 --stop-key pause`,
	RunE: runJiggle,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addKeyFlags(runCmd)
}

func runJiggle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	j, err := jiggler.New(jiggler.Options{
		Provider:  provider,
		ToggleKey: cfg.ToggleKey(),
		StopKey:   cfg.StopKey(),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	summary, err := j.Run(cmd.Context())
	if err != nil {
		return err
	}
	return output.Print(summary)
}
