package config

import "time"

// Config holds runtime settings for the profcard CLI.
//
// Fields:
//   - DBPath: path of the local SQLite settings database.
//   - PhotoDir: directory holding imported photo copies.
//   - DBBusyTimeout: SQLite busy_timeout applied at open.
//   - NoColor: disable colored avatar rendering.
type Config struct {
	DBPath        string
	PhotoDir      string
	DBBusyTimeout time.Duration
	NoColor       bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "profile.db"
	c.PhotoDir = "photos"
	c.DBBusyTimeout = 5 * time.Second
	c.NoColor = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// environment variables, a JSON file (if present), and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
