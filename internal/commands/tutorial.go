package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
	"github.com/NielsdaWheelz/aider-vertex/internal/scaffold"
)

// TutorialOpts holds options for the tutorial command.
type TutorialOpts struct {
	// Dir is the directory to create. Empty means scaffold.TutorialDirName.
	Dir string
}

// Tutorial implements `aider-vertex tutorial`: write the example workspace.
// A git failure is reported but does not fail the command.
func Tutorial(fsys fs.FS, opts TutorialOpts, stdout, stderr io.Writer) error {
	dir := opts.Dir
	if dir == "" {
		dir = scaffold.TutorialDirName
	}

	root, err := scaffold.Tutorial(fsys, dir)
	if err != nil {
		if errors.GetCode(err) != errors.EGitInitFailed {
			return err
		}
		_, _ = fmt.Fprintf(stderr, "warning: git init skipped: %s\n", describe(err))
	}

	_, _ = fmt.Fprintf(stdout, "tutorial written to %s\n", root)
	_, _ = fmt.Fprintln(stdout, "root interface:    cd "+root+" && aider-vertex doctor")
	_, _ = fmt.Fprintln(stdout, "nested interface:  cd "+filepath.Join(root, "libs", "lib1", "src")+" && aider-vertex doctor")
	return nil
}
