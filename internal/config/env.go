package config

import (
	"os"
	"strconv"
)

// envPrefix is the prefix for environment overrides, e.g. ARCADIA_LOG_LEVEL.
const envPrefix = "ARCADIA_"

// applyEnv overlays environment variables onto cfg. Empty values are treated
// as set; unparseable numbers are ignored.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SCENE"); ok {
		cfg.ScenePath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "SCRIPT"); ok {
		cfg.ScriptPath = v
	}
	if v, ok := os.LookupEnv(envPrefix + "TARGET_FPS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TargetFPS = n
		}
	}
	if v, ok := os.LookupEnv(envPrefix + "HOLD_TIMEOUT_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.HoldTimeoutMillis = n
		}
	}
}
