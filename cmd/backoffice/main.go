package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/tripdesk/internal/assets"
	"github.com/dmitrijs2005/tripdesk/internal/buildinfo"
	"github.com/dmitrijs2005/tripdesk/internal/cli"
	"github.com/dmitrijs2005/tripdesk/internal/config"
	"github.com/dmitrijs2005/tripdesk/internal/fixtures"
	"github.com/dmitrijs2005/tripdesk/internal/logging"
	"github.com/dmitrijs2005/tripdesk/internal/masters"
	"github.com/dmitrijs2005/tripdesk/internal/refdata"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	if z, ok := logger.(*logging.ZapLogger); ok {
		defer func() { _ = z.Sync() }()
	}

	seed, err := fixtures.Load()
	if err != nil {
		log.Fatalf("load fixtures: %v", err)
		return
	}

	refs, err := refdata.New(seed.Reference)
	if err != nil {
		log.Fatalf("reference data: %v", err)
		return
	}

	picker, err := assets.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	reg := masters.NewRegistry(seed, masters.Env{Refs: refs, Picker: picker, Logger: logger})

	cli.NewApp(reg, os.Stdin, os.Stdout, logger).Run(ctx)

}
