// Package config loads the jiggle configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mj1618/jiggle-cli/internal/logging"
	"github.com/mj1618/jiggle-cli/internal/platform"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up under the user config directory.
const DefaultFileName = "config.yaml"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the effective configuration of a jiggle run.
type Config struct {
	Keys  KeysConfig  `yaml:"keys"  json:"keys"`
	Log   LogConfig   `yaml:"log"   json:"log"`
	Serve ServeConfig `yaml:"serve" json:"serve"`

	// Source is the file the config was read from, or "defaults".
	Source string `yaml:"source,omitempty" json:"source,omitempty"`
}

// KeysConfig names the two hotkeys.
type KeysConfig struct {
	Toggle string `yaml:"toggle" json:"toggle"`
	Stop   string `yaml:"stop"   json:"stop"`
}

// LogConfig defines log verbosity and formatting.
type LogConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// ServeConfig configures the MCP remote-control server.
type ServeConfig struct {
	Transport string `yaml:"transport" json:"transport"`
	Port      int    `yaml:"port"      json:"port"`
}

// Default returns the baseline configuration used when no file exists.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Toggle: string(platform.KeyNumLock),
			Stop:   string(platform.KeyEsc),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Serve: ServeConfig{
			Transport: "stdio",
			Port:      8080,
		},
		Source: "defaults",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/jiggle/config.yaml, falling back to
// the OS user config directory.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "jiggle", DefaultFileName)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jiggle", DefaultFileName)
}

// Load reads path over the defaults. When path is empty the default path is
// tried and a missing file is not an error; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that keys are known and distinct and that log and serve
// settings are known values.
func (c Config) Validate() error {
	toggle, err := platform.ParseKey(c.Keys.Toggle)
	if err != nil {
		return fmt.Errorf("%w: keys.toggle: %v", ErrInvalid, err)
	}
	stop, err := platform.ParseKey(c.Keys.Stop)
	if err != nil {
		return fmt.Errorf("%w: keys.stop: %v", ErrInvalid, err)
	}
	if !platform.KnownKey(toggle) {
		return fmt.Errorf("%w: keys.toggle: unknown key %q (see 'jiggle keys')", ErrInvalid, toggle)
	}
	if !platform.KnownKey(stop) {
		return fmt.Errorf("%w: keys.stop: unknown key %q (see 'jiggle keys')", ErrInvalid, stop)
	}
	if toggle == stop {
		return fmt.Errorf("%w: toggle and stop keys are both %q", ErrInvalid, toggle)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (use text or json)", ErrInvalid, c.Log.Format)
	}
	switch c.Serve.Transport {
	case "stdio", "streamable-http":
	default:
		return fmt.Errorf("%w: serve.transport %q (use stdio or streamable-http)", ErrInvalid, c.Serve.Transport)
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("%w: serve.port %d out of range", ErrInvalid, c.Serve.Port)
	}
	return nil
}

// ToggleKey returns the canonical toggle key. Call after Validate.
func (c Config) ToggleKey() platform.Key {
	k, _ := platform.ParseKey(c.Keys.Toggle)
	return k
}

// StopKey returns the canonical stop key. Call after Validate.
func (c Config) StopKey() platform.Key {
	k, _ := platform.ParseKey(c.Keys.Stop)
	return k
}
