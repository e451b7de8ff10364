package config

import (
	"flag"
	"os"

	"github.com/dchizhov/profcard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local settings database (default from Config)
//	-p string   directory for imported photo copies (default from Config)
//	-no-color   disable colored avatar rendering
//
// The function filters os.Args to only include the flags it knows about,
// using flagx, to avoid interference with the -c/-config flags consumed by
// the JSON layer.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p"})
	args = append(args, flagx.BoolFlagArgs(os.Args[1:], []string{"-no-color"})...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path of the settings database")
	fs.StringVar(&cfg.PhotoDir, "p", cfg.PhotoDir, "directory for imported photos")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
