package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/johntran041/jobly-client/internal/client/cli"
	"github.com/johntran041/jobly-client/internal/client/config"
	"github.com/johntran041/jobly-client/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(logging.NewHandler(os.Stderr, cfg.LogFormat)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx := context.Background()
	app.Run(ctx)
	app.Close(ctx)
}
