package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/signalsfoundry/satwatch/internal/cli"
	"github.com/signalsfoundry/satwatch/internal/logging"
	"github.com/signalsfoundry/satwatch/internal/observability"
)

func main() {
	log := logging.NewFromEnv()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "failed to initialise tracing", logging.Err(err))
		os.Exit(1)
	}

	root := cli.NewRootCommand()
	execErr := root.ExecuteContext(ctx)

	observability.ShutdownWithTimeout(context.Background(), shutdownTracing, log)

	if execErr != nil {
		fmt.Fprintln(os.Stderr, execErr)
		os.Exit(1)
	}
}
