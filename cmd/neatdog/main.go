package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/neatdog/neatdog/internal/buildinfo"
	"github.com/neatdog/neatdog/internal/client/cli"
	"github.com/neatdog/neatdog/internal/client/config"
	"github.com/neatdog/neatdog/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)

}
