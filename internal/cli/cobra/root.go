// Package cobra provides the Cobra-based CLI command tree for aider-vertex.
package cobra

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aider-vertex/internal/argv"
	"github.com/NielsdaWheelz/aider-vertex/internal/commands"
	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
	"github.com/NielsdaWheelz/aider-vertex/internal/logging"
	"github.com/NielsdaWheelz/aider-vertex/internal/tty"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose bool
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for aider-vertex.
//
// The root command is the launcher itself. It does not parse flags: every
// argument except the --vertex-* family is forwarded to the wrapped tool.
func NewRootCmd() *cobra.Command {
	globalOpts = GlobalOpts{}

	rootCmd := &cobra.Command{
		Use:   "aider-vertex [--vertex-*] [aider args...]",
		Short: "Launch aider against Vertex AI after a readiness check",
		Long: `aider-vertex - launch aider against Vertex AI after a readiness check

Before starting aider, aider-vertex verifies credentials, Vertex project and
location, required tools, and the .ddd control interface of the surrounding
project. Blocking problems stop the launch unless confirmed.

Launcher flags (all other arguments are passed to aider unchanged):
  --vertex-project <id>     override VERTEXAI_PROJECT
  --vertex-location <loc>   override VERTEXAI_LOCATION
  --vertex-yes              launch even when blocking issues are found
  --vertex-skip-doctor      skip the readiness check
  --vertex-no-config        do not synthesize an aider config
  --vertex-debug            write debug logs to stderr

--help and --version are forwarded to aider; use "aider-vertex help" and
"aider-vertex version" for the launcher's own.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true, // We handle error printing in main.go
		SilenceUsage:       true, // We handle usage printing manually
		RunE: func(cmd *cobra.Command, args []string) error {
			rw, err := argv.Rewrite(args)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			globalOpts.Verbose = globalOpts.Verbose || rw.Debug || cfg.Tunables.Debug

			log := newLogger(cmd, cfg)
			defer func() { _ = log.Sync() }()

			opts := commands.LaunchOpts{
				Args:        rw,
				Interactive: tty.IsInteractive(),
			}
			return commands.Launch(cmd.Context(), exec.NewRealRunner(), fs.NewRealFS(), cfg, opts, log,
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	// Global flags, honored by subcommands
	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "show detailed error context and debug logs")

	// The root forwards its arguments, so shell completion would describe aider's flags, not ours
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newDoctorCmd(),
		newTutorialCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// newLogger builds the debug logger for a command run.
func newLogger(cmd *cobra.Command, cfg config.Config) *zap.Logger {
	return logging.New(cmd.ErrOrStderr(), globalOpts.Verbose || cfg.Tunables.Debug)
}

// Execute runs the root command with the given output writers.
// This is the main entry point from main.go.
func Execute(ctx context.Context, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}
