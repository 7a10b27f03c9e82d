// Package config holds session tunables for tuibox hosts, loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted by FromEnv
const EnvPath = "TUIBOX_CONFIG"

// Backend names accepted in Config.Backend
const (
	BackendUnix  = "unix"
	BackendTcell = "tcell"
)

// Config holds session tunables
type Config struct {
	ReadBuffer      int       `yaml:"read_buffer"`      // bytes per input read
	ScrollStep      int       `yaml:"scroll_step"`      // rows per wheel tick
	CanScroll       bool      `yaml:"can_scroll"`       // wheel moves the scroll offset
	Screen          int       `yaml:"screen"`           // initial active screen id
	Backend         string    `yaml:"backend"`          // terminal-mode provider
	HandleSignals   bool      `yaml:"handle_signals"`   // restore terminal on SIGTERM/SIGHUP/SIGINT
	MultiplexerNote bool      `yaml:"multiplexer_note"` // advise on tmux/screen after teardown
	Log             LogConfig `yaml:"log"`
}

// LogConfig selects the diagnostic log sink; the screen itself is never a sink
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		ReadBuffer:      64,
		ScrollStep:      2,
		CanScroll:       true,
		Screen:          0,
		Backend:         BackendUnix,
		HandleSignals:   true,
		MultiplexerNote: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML file over the defaults
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv loads the file named by $TUIBOX_CONFIG, or the defaults when unset
func FromEnv() (Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate rejects values the session cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.ReadBuffer <= 0 {
		errs = append(errs, fmt.Errorf("read_buffer must be positive, got %d", c.ReadBuffer))
	}
	if c.ScrollStep <= 0 {
		errs = append(errs, fmt.Errorf("scroll_step must be positive, got %d", c.ScrollStep))
	}
	if c.Backend != BackendUnix && c.Backend != BackendTcell {
		errs = append(errs, fmt.Errorf("backend must be %q or %q, got %q", BackendUnix, BackendTcell, c.Backend))
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
