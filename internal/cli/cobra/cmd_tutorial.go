package cobra

import (
	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/aider-vertex/internal/commands"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

func newTutorialCmd() *cobra.Command {
	var opts commands.TutorialOpts

	cmd := &cobra.Command{
		Use:   "tutorial",
		Short: "Write a sample project with a .ddd control interface",
		Long: `Write a sample project with a .ddd control interface.
Creates tutorial-stub/ (or --dir: a root project and one nested library, each with its
own .ddd directory) and commits it to a fresh git repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.Tutorial(fs.NewRealFS(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory to create (default: ./tutorial-stub)")

	return cmd
}
