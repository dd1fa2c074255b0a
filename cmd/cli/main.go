package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/cineia/internal/buildinfo"
	"github.com/dmitrijs2005/cineia/internal/client/cli"
	"github.com/dmitrijs2005/cineia/internal/client/config"
	"github.com/dmitrijs2005/cineia/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
