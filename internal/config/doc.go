// Package config loads runtime configuration for the profcard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. PROFCARD_* environment variables (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local settings database
//	-p string   directory for imported photo copies
//	-no-color   disable colored avatar rendering
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the busy timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "db_path": "profile.db",
//	  "photo_dir": "photos",
//	  "db_busy_timeout": "5s",
//	  "no_color": false
//	}
//
// Primary API
//
//   - type Config                     — holds DBPath, PhotoDir, DBBusyTimeout, NoColor
//   - func LoadConfig() *Config       — builds Config by applying all sources in order
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
