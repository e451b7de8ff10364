package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dchizhov/profcard/internal/flagx"
	"github.com/dchizhov/profcard/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the busy timeout either as a string like
// "5s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DBPath        string         `json:"db_path"`
	PhotoDir      string         `json:"photo_dir"`
	DBBusyTimeout timex.Duration `json:"db_busy_timeout"`
	NoColor       *bool          `json:"no_color"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via flagx.JsonConfigFlags;
// when neither is given, no JSON is loaded. Fields absent from the file leave
// the current value untouched. Panics on read or unmarshal errors (caller
// should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.PhotoDir != "" {
		cfg.PhotoDir = jc.PhotoDir
	}
	if jc.DBBusyTimeout.Duration != 0 {
		cfg.DBBusyTimeout = time.Duration(jc.DBBusyTimeout.Duration)
	}
	if jc.NoColor != nil {
		cfg.NoColor = *jc.NoColor
	}
}
