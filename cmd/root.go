package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/jiggle-cli/internal/output"
	"github.com/mj1618/jiggle-cli/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jiggle",
	Short: "Jiggle the mouse pointer while a hotkey toggle is on",
	Long: `Jiggle moves the mouse pointer 10 units left and right every 50ms while it is
switched on. A global hotkey (Num Lock by default) switches it on and off from any
application; a second hotkey (Esc by default) quits.

Running jiggle without a subcommand is the same as 'jiggle run'.`,
	SilenceUsage: true,
	RunE:         runJiggle,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "", "Output format: yaml, json (default: yaml on a terminal, json when piped)")
	rootCmd.PersistentFlags().Bool("pretty", false, "Indent JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/jiggle/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text, json (overrides config)")
	addKeyFlags(rootCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := resolveFormat(format, output.IsOutputPiped())
		if err != nil {
			return err
		}
		output.OutputFormat = f

		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}

// resolveFormat applies the --format smart default: YAML for a terminal,
// JSON when stdout is piped.
func resolveFormat(flag string, piped bool) (output.Format, error) {
	if flag == "" {
		if piped {
			return output.FormatJSON, nil
		}
		return output.FormatYAML, nil
	}
	return output.ParseFormat(flag)
}
