// Command server wires the problem-management core and keeps it alive
// until SIGINT/SIGTERM. HTTP transport is embedded by downstream
// deployments; this binary exists for migrations and smoke wiring.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	postgres "github.com/ai4s-oj/lyrio/internal/adapter/postgres"
	"github.com/ai4s-oj/lyrio/internal/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.Bootstrap(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if a.Config.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, a.Config.Database.DSN); err != nil {
			return err
		}
		a.Log.Info("migrations applied")
	}

	a.Log.Info("ready")
	<-ctx.Done()
	a.Log.Info("shutting down")
	return nil
}
