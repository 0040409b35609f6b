// Package commands implements aider-vertex CLI commands.
package commands

import (
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/doctor"
	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// DoctorOpts holds options for the doctor command.
type DoctorOpts struct {
	// JSON writes the report as JSON instead of text.
	JSON bool
}

// Doctor implements `aider-vertex doctor`: run the readiness checks and print
// the report. Returns E_UNHEALTHY (exit 1) when any check is blocking.
func Doctor(cr exec.CommandRunner, fsys fs.FS, cfg config.Config, opts DoctorOpts, log *zap.Logger, stdout io.Writer) error {
	rep := runChecks(cr, fsys, cfg, log)

	write := doctor.WriteText
	if opts.JSON {
		write = doctor.WriteJSON
	}
	if err := write(stdout, rep); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write report", err)
	}

	if !rep.Verdict.Healthy() {
		return unhealthyError(rep, "doctor found blocking issues")
	}
	return nil
}

func runChecks(cr exec.CommandRunner, fsys fs.FS, cfg config.Config, log *zap.Logger) doctor.Report {
	return doctor.Verify(cfg.Env, doctor.OptionsFromTunables(cfg.Tunables), doctor.Probes{
		FS:       fsys,
		LookPath: cr.LookPath,
		Logger:   log,
	})
}

func unhealthyError(rep doctor.Report, msg string) error {
	return errors.NewWithDetails(errors.EUnhealthy, msg, reportDetails(rep))
}

func reportDetails(rep doctor.Report) map[string]string {
	details := map[string]string{
		"blocking": strconv.Itoa(rep.Count(doctor.SeverityBlocking)),
		"warnings": strconv.Itoa(rep.Count(doctor.SeverityWarning)),
	}
	if rep.Interface != nil {
		details["interface_dir"] = rep.Interface.Path
	}
	return details
}

// blockingSummary counts blocking findings for prompts.
func blockingSummary(rep doctor.Report) string {
	n := rep.Count(doctor.SeverityBlocking)
	if n == 1 {
		return "1 blocking issue"
	}
	return fmt.Sprintf("%d blocking issues", n)
}
