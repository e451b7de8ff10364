package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dchizhov/profcard/internal/cli"
	"github.com/dchizhov/profcard/internal/config"
	"github.com/dchizhov/profcard/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("%v", err)
	}
}
