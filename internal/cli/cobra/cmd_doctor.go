package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/aider-vertex/internal/commands"
	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

func newDoctorCmd() *cobra.Command {
	var opts commands.DoctorOpts

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check launch readiness without starting aider",
		Long: `Check launch readiness without starting aider.
Verifies credentials, Vertex project and location, required tools, and the
nearest .ddd control interface. Exits non-zero when a blocking issue is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log := newLogger(cmd, cfg)
			defer func() { _ = log.Sync() }()

			return commands.Doctor(exec.NewRealRunner(), fs.NewRealFS(), cfg, opts, log, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the report as JSON")

	return cmd
}
