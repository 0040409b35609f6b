package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/aider-vertex/internal/commands"
	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print aider-vertex and aider versions",
		Long:  "Print the aider-vertex version string and the version reported by the wrapped aider.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wrapped := config.DefaultWrapped
			if cfg, err := config.Load(); err == nil {
				wrapped = cfg.Tunables.Wrapped
			}
			return commands.Version(cmd.Context(), exec.NewRealRunner(), wrapped, cmd.OutOrStdout())
		},
	}

	return cmd
}
