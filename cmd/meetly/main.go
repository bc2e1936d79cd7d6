package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/meetly/meetly/internal/cli"
	"github.com/meetly/meetly/internal/config"
	"github.com/meetly/meetly/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	ctx := context.Background()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := cli.NewApp(cfg, log)
	if err := app.Run(ctx); err != nil {
		log.Error(ctx, "fatal", "error", err)
		os.Exit(1)
	}
}
