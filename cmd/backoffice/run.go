package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

func run(ctx context.Context, app *fx.App) {
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "backoffice failed to start: %v\n", err)
		os.Exit(1)
	}

	// Either a termination signal cancels ctx or a component asks the
	// container to shut down.
	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "backoffice failed to stop: %v\n", err)
		os.Exit(1)
	}
}
