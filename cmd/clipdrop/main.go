package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/clipdrop/internal/buildinfo"
	"github.com/dmitrijs2005/clipdrop/internal/cli"
	"github.com/dmitrijs2005/clipdrop/internal/config"
	"github.com/dmitrijs2005/clipdrop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logging.NewDefault(slog.LevelWarn))
	if err != nil {
		log.Fatalf("%v", err)
	}

	code := app.Run(ctx, os.Args[1:])
	if err := app.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	os.Exit(code)
}
