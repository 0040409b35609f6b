package doctor

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/ddd"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// Options tunes the checks. Zero-valued fields fall back to the defaults in
// config, except SearchDepth, where zero means "working directory only" and a
// negative value selects the default. Use DefaultOptions for a fully
// populated value.
type Options struct {
	LockStaleAfter time.Duration
	SearchDepth    int
	RequiredTools  []string
	ViewPrefix     string

	// Now is the clock. It is read once per Verify call.
	Now func() time.Time
}

// DefaultOptions returns the options used when no tunables are set.
func DefaultOptions() Options {
	return OptionsFromTunables(config.Defaults())
}

// OptionsFromTunables maps the environment tunables onto verifier options.
func OptionsFromTunables(t config.Tunables) Options {
	return Options{
		LockStaleAfter: t.LockStaleAfter,
		SearchDepth:    t.SearchDepth,
		RequiredTools:  append([]string(nil), t.RequiredTools...),
		ViewPrefix:     t.ViewPrefix,
		Now:            time.Now,
	}
}

func (o Options) withDefaults() Options {
	if o.LockStaleAfter <= 0 {
		o.LockStaleAfter = config.DefaultLockStaleAfter
	}
	if o.SearchDepth < 0 {
		o.SearchDepth = config.DefaultSearchDepth
	}
	if o.RequiredTools == nil {
		o.RequiredTools = append([]string(nil), config.DefaultRequiredTools...)
	}
	if o.ViewPrefix == "" {
		o.ViewPrefix = config.DefaultViewPrefix
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Probes are the read-only observers the checks use.
type Probes struct {
	FS fs.FS

	// LookPath resolves an executable on PATH, like exec.LookPath.
	LookPath func(file string) (string, error)

	// Logger receives per-check debug output. Nil means no logging.
	Logger *zap.Logger
}

// Report is the complete result of one Verify call.
type Report struct {
	Verdict  Verdict
	Findings []Finding

	// Interface is the discovered control-interface directory, or nil.
	Interface *ddd.Interface
}

// Count returns the number of findings with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Verify runs every check in order and folds the findings into a verdict.
// It never fails: probe errors and panics inside a check become warnings
// attributed to that check, and the remaining checks still run.
func Verify(env config.Env, opts Options, probes Probes) Report {
	opts = opts.withDefaults()
	log := probes.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &run{
		env:    env,
		opts:   opts,
		fsys:   probes.FS,
		look:   probes.LookPath,
		log:    log,
		now:    opts.Now(),
		report: Report{Findings: []Finding{}},
	}

	r.guard(CheckCredentials, r.checkCredentials)
	r.guard(CheckVertexConfig, r.checkVertexConfig)
	r.guard(CheckToolchain, r.checkToolchain)
	r.guard(CheckInterface, r.discoverInterface)
	if r.report.Interface != nil {
		r.guard(CheckInterfaceWritable, r.checkWritable)
		r.guard(CheckLegacyLock, r.checkLegacyLock)
		r.guard(CheckIPCLock, r.checkIPCLock)
		r.guard(CheckBuildLog, r.checkBuildLog)
	}
	r.guard(CheckGitBridge, r.checkGitBridge)

	r.report.Verdict = Fold(r.report.Findings)
	log.Debug("doctor finished",
		zap.String("verdict", string(r.report.Verdict)),
		zap.Int("blocking", r.report.Count(SeverityBlocking)),
		zap.Int("warnings", r.report.Count(SeverityWarning)))
	return r.report
}

// run is the state of a single Verify call.
type run struct {
	env  config.Env
	opts Options
	fsys fs.FS
	look func(string) (string, error)
	log  *zap.Logger
	now  time.Time

	report Report
}

func (r *run) add(f Finding) {
	r.log.Debug("finding",
		zap.String("check", f.Check),
		zap.Stringer("severity", f.Severity),
		zap.String("message", f.Message))
	r.report.Findings = append(r.report.Findings, f)
}

// guard runs check and turns a returned error or a panic into a warning.
func (r *run) guard(name string, check func() error) {
	r.log.Debug("running check", zap.String("check", name))
	defer func() {
		if p := recover(); p != nil {
			r.log.Debug("check panicked", zap.String("check", name), zap.Any("panic", p))
			r.add(Warning(name, fmt.Sprintf("check crashed: %v", p), ""))
		}
	}()
	if err := check(); err != nil {
		r.log.Debug("probe failed", zap.String("check", name), zap.Error(err))
		r.add(Warning(name, fmt.Sprintf("probe failed: %v", err), ""))
	}
}
