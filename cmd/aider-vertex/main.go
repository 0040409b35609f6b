// Command aider-vertex checks launch readiness and runs aider against Vertex AI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NielsdaWheelz/aider-vertex/internal/cli/cobra"
	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
)

func main() {
	// SIGINT belongs to the wrapped tool; only SIGTERM cancels the launcher.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	err := cobra.Execute(ctx, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		// Use verbose mode if --verbose or --vertex-debug was set
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
