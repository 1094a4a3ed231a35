// Command hopter expands the variadic regions of a C++ template source into
// a header with one copy of each region per arity.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/hopter/cli"
	"github.com/ardnew/hopter/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		log.Error("run failed", slog.Any("error", err))
		os.Exit(cli.ExitCode(err))
	}
}
