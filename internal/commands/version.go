package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
	"github.com/NielsdaWheelz/aider-vertex/internal/version"
)

// Version implements `aider-vertex version`: print the launcher version and,
// when it resolves, the wrapped tool's own version line.
func Version(ctx context.Context, cr exec.CommandRunner, wrapped string, stdout io.Writer) error {
	_, _ = fmt.Fprintf(stdout, "aider-vertex %s\n", version.FullVersion())

	bin, err := cr.LookPath(wrapped)
	if err != nil {
		_, _ = fmt.Fprintf(stdout, "%s: not found on PATH\n", wrapped)
		return nil
	}
	res, err := cr.Run(ctx, bin, []string{"--version"}, exec.RunOpts{})
	if err != nil || res.ExitCode != 0 {
		_, _ = fmt.Fprintf(stdout, "%s: version unavailable\n", wrapped)
		return nil
	}
	line, _, _ := strings.Cut(strings.TrimSpace(res.Stdout), "\n")
	_, _ = fmt.Fprintf(stdout, "%s: %s\n", wrapped, line)
	return nil
}
