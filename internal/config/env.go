package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is a DTO used exclusively for environment parsing. Pointer fields
// distinguish "unset" from a zero value so only variables actually present
// overlay the defaults.
type envConfig struct {
	DBPath        *string        `env:"PROFCARD_DB_PATH"`
	PhotoDir      *string        `env:"PROFCARD_PHOTO_DIR"`
	DBBusyTimeout *time.Duration `env:"PROFCARD_DB_BUSY_TIMEOUT"`
	NoColor       *bool          `env:"PROFCARD_NO_COLOR"`
}

// parseEnv overlays Config with values from PROFCARD_* environment variables.
// Panics on malformed values (caller should recover if desired), matching the
// other config layers.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DBPath != nil {
		cfg.DBPath = *ec.DBPath
	}
	if ec.PhotoDir != nil {
		cfg.PhotoDir = *ec.PhotoDir
	}
	if ec.DBBusyTimeout != nil {
		cfg.DBBusyTimeout = *ec.DBBusyTimeout
	}
	if ec.NoColor != nil {
		cfg.NoColor = *ec.NoColor
	}
}
