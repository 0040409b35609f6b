package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aider-vertex/internal/aiderconf"
	"github.com/NielsdaWheelz/aider-vertex/internal/argv"
	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/ddd"
	"github.com/NielsdaWheelz/aider-vertex/internal/doctor"
	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// LaunchOpts holds options for a launch.
type LaunchOpts struct {
	// Args is the rewritten command line.
	Args argv.Rewritten

	// Interactive allows the continue-anyway prompt. When false, an unhealthy
	// report aborts unless Args.Yes is set.
	Interactive bool

	// BaseEnv is the environment handed to the wrapped tool before the
	// launcher's overrides. Nil means os.Environ().
	BaseEnv []string
}

// Launch implements the default command: check readiness, gate on the
// verdict, synthesize the tool config and run the wrapped tool with stdio
// passed through. The wrapped tool's non-zero exit status is returned as a
// bare exit code.
func Launch(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, cfg config.Config, opts LaunchOpts, log *zap.Logger, stdin io.Reader, stdout, stderr io.Writer) error {
	if log == nil {
		log = zap.NewNop()
	}
	rw := opts.Args
	for _, flag := range rw.Dropped {
		_, _ = fmt.Fprintf(stderr, "warning: ignoring unknown launcher flag %s\n", flag)
	}

	env := cfg.Env
	if rw.Project != "" {
		env.Project = rw.Project
	}
	if rw.Location != "" {
		env.Location = rw.Location
	}
	cfg.Env = env

	var iface *ddd.Interface
	if rw.SkipDoctor {
		log.Debug("doctor skipped")
		found, err := ddd.Discover(fsys, env.WorkDir, cfg.Tunables.SearchDepth)
		if err != nil {
			log.Debug("interface discovery failed", zap.Error(err))
		}
		iface = found
	} else {
		rep := runChecks(cr, fsys, cfg, log)
		if err := doctor.WriteText(stdout, rep); err != nil {
			return errors.Wrap(errors.EInternal, "failed to write report", err)
		}
		if !rep.Verdict.Healthy() {
			if err := confirmUnhealthy(rep, rw.Yes, opts.Interactive, stdin, stderr); err != nil {
				return err
			}
		}
		iface = rep.Interface
	}

	toolArgs := rw.Args
	if !rw.NoConfig && iface != nil && !hasConfigFlag(rw.Args) {
		path, cleanup, err := synthesizeConfig(fsys, iface, cfg, stderr)
		if err != nil {
			return err
		}
		if cleanup != nil {
			defer func() {
				if err := cleanup(); err != nil {
					log.Debug("config cleanup failed", zap.Error(err))
				}
			}()
			toolArgs = append([]string{"--config", path}, rw.Args...)
		}
	}

	wrapped := cfg.Tunables.Wrapped
	bin, err := cr.LookPath(wrapped)
	if err != nil {
		return errors.WrapWithDetails(errors.EWrappedNotFound,
			wrapped+" not found on PATH", err, map[string]string{"tool": wrapped})
	}

	baseEnv := opts.BaseEnv
	if baseEnv == nil {
		baseEnv = os.Environ()
	}
	childEnv := mergeEnv(baseEnv, rw.Environ())

	// The terminal sends SIGINT to the whole foreground process group. The
	// wrapped tool handles it; the launcher has to outlive it.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	log.Debug("launching", zap.String("bin", bin), zap.Strings("args", toolArgs))
	res, err := cr.Run(ctx, bin, toolArgs, exec.RunOpts{
		Dir:    env.WorkDir,
		Env:    childEnv,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return errors.WrapWithDetails(errors.EWrappedFailed,
			wrapped+" did not run to completion", err,
			map[string]string{"tool": wrapped, "exit_code": strconv.Itoa(res.ExitCode)})
	}
	if res.ExitCode != 0 {
		return errors.Exit(res.ExitCode)
	}
	return nil
}

// confirmUnhealthy decides whether to launch past blocking findings.
func confirmUnhealthy(rep doctor.Report, yes, interactive bool, stdin io.Reader, stderr io.Writer) error {
	if yes {
		_, _ = fmt.Fprintf(stderr, "continuing despite %s (--vertex-yes)\n", blockingSummary(rep))
		return nil
	}
	if !interactive {
		return errors.NewWithDetails(errors.ENotInteractive,
			fmt.Sprintf("doctor found %s and no terminal is available to confirm", blockingSummary(rep)),
			reportDetails(rep))
	}

	_, _ = fmt.Fprintf(stderr, "doctor found %s. continue anyway? [y/N]: ", blockingSummary(rep))
	reader := bufio.NewReader(stdin)
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return errors.Wrap(errors.EAborted, "failed to read confirmation", err)
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return nil
	default:
		return errors.NewWithDetails(errors.EAborted, "launch cancelled", reportDetails(rep))
	}
}

// synthesizeConfig writes the transient tool config. A broken interface
// config is reported and skipped; only a failure to write is fatal.
func synthesizeConfig(fsys fs.FS, iface *ddd.Interface, cfg config.Config, stderr io.Writer) (string, func() error, error) {
	settings, err := aiderconf.Build(fsys, aiderconf.Params{
		Interface: iface,
		Project:   cfg.Env.Project,
		Location:  cfg.Env.Location,
		Model:     cfg.Tunables.Model,
	})
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "warning: %v; launching without a synthesized config\n", describe(err))
		return "", nil, nil
	}
	return aiderconf.SynthesizeTemp(fsys, settings)
}

func describe(err error) string {
	if le, ok := errors.AsLauncherError(err); ok && le.Cause != nil {
		return le.Msg + ": " + le.Cause.Error()
	}
	return err.Error()
}

// hasConfigFlag reports whether the user already passed a config file.
func hasConfigFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "--config" || a == "-c" || strings.HasPrefix(a, "--config=") {
			return true
		}
	}
	return false
}

// mergeEnv returns base with overrides applied. Overridden keys are removed
// from base rather than duplicated.
func mergeEnv(base []string, overrides map[string]string) []string {
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		out = append(out, key+"="+overrides[key])
	}
	return out
}
