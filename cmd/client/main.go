package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dvalero/finwallet/internal/buildinfo"
	"github.com/dvalero/finwallet/internal/client/cli"
	"github.com/dvalero/finwallet/internal/client/config"
	"github.com/dvalero/finwallet/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
