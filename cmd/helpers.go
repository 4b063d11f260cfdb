package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mj1618/jiggle-cli/internal/config"
	"github.com/mj1618/jiggle-cli/internal/logging"
	"github.com/spf13/cobra"
)

// addKeyFlags registers the hotkey overrides on a command.
func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().String("toggle-key", "", "Key that switches jiggling on and off (default from config: num_lock)")
	cmd.Flags().String("stop-key", "", "Key that quits (default from config: esc)")
}

// loadConfig reads the config file named by --config and applies flag
// overrides on top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	overrides := []struct {
		flag string
		dst  *string
	}{
		{"toggle-key", &cfg.Keys.Toggle},
		{"stop-key", &cfg.Keys.Stop},
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
	}
	for _, o := range overrides {
		f := cmd.Flags().Lookup(o.flag)
		if f == nil || !f.Changed {
			continue
		}
		*o.dst = f.Value.String()
	}
	if t := cmd.Flags().Lookup("transport"); t != nil && t.Changed {
		cfg.Serve.Transport = t.Value.String()
	}
	if p := cmd.Flags().Lookup("port"); p != nil && p.Changed {
		port, _ := cmd.Flags().GetInt("port")
		cfg.Serve.Port = port
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger described by cfg.
func newLogger(cfg config.Config) (*slog.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	return logger, nil
}
