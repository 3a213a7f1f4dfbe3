// Package config loads Arcadia's configuration from TOML or YAML files with
// environment variable overrides, and supports live reload through the
// watcher subpackage.
package config

import "fmt"

// Config is the full engine configuration.
type Config struct {
	// TargetFPS is the frame rate the loop tries to sustain.
	TargetFPS int `toml:"target_fps" yaml:"target_fps"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// ScenePath is the JSON scene file defining the initial entities.
	ScenePath string `toml:"scene" yaml:"scene"`

	// ScriptPath is an optional Lua game script.
	ScriptPath string `toml:"script" yaml:"script"`

	// HoldTimeoutMillis synthesizes key releases for terminal play; zero
	// disables it.
	HoldTimeoutMillis int `toml:"hold_timeout_ms" yaml:"hold_timeout_ms"`

	// Bindings maps control names (up, down, left, right, fire) to key names.
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TargetFPS:         30,
		LogLevel:          "info",
		HoldTimeoutMillis: 150,
		Bindings:          map[string]string{},
	}
}

// Load builds the effective configuration: defaults, then the file at path
// (skipped when path is empty or the file does not exist), then environment
// overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be positive, got %d", c.TargetFPS)
	}
	if c.HoldTimeoutMillis < 0 {
		return fmt.Errorf("hold_timeout_ms must be non-negative, got %d", c.HoldTimeoutMillis)
	}
	return nil
}
