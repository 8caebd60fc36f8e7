// Command scripto is the terminal client for the ScriptO note service.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/dmitrijs2005/scripto/internal/buildinfo"
	"github.com/dmitrijs2005/scripto/internal/client/cli"
	"github.com/dmitrijs2005/scripto/internal/client/config"
	"github.com/dmitrijs2005/scripto/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewZap(cfg.Verbose)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	// The first interrupt aborts in-flight requests; the next one kills the
	// process as usual, since the REPL may be blocked reading stdin.
	go func() {
		<-ctx.Done()
		stop()
	}()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
