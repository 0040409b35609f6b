package doctor

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/ddd"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
	"github.com/NielsdaWheelz/aider-vertex/internal/watchdog"
)

func (r *run) checkCredentials() error {
	path := r.env.CredentialsPath
	if path == "" {
		r.add(Blocking(CheckCredentials,
			config.EnvCredentials+" is not set",
			"export "+config.EnvCredentials+"=/path/to/service-account.json"))
		return nil
	}

	if _, err := r.fsys.Stat(path); err != nil {
		if fs.IsNotExist(err) {
			r.add(Blocking(CheckCredentials,
				"credential file not found: "+path,
				"point "+config.EnvCredentials+" at an existing service-account key"))
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return nil
}

func (r *run) checkVertexConfig() error {
	if r.env.Project == "" {
		r.add(Blocking(CheckVertexConfig,
			config.EnvProject+" is not set",
			"export "+config.EnvProject+"=<gcp-project> or pass --vertex-project"))
	}
	if r.env.Location == "" {
		r.add(Blocking(CheckVertexConfig,
			config.EnvLocation+" is not set",
			"export "+config.EnvLocation+"=<region> or pass --vertex-location"))
	}
	return nil
}

func (r *run) checkToolchain() error {
	var missing []string
	for _, tool := range r.opts.RequiredTools {
		if _, err := r.look(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		r.add(Blocking(CheckToolchain,
			"required tools not found on PATH: "+strings.Join(missing, ", "),
			"install the missing tools or fix PATH"))
	}
	return nil
}

func (r *run) discoverInterface() error {
	iface, err := ddd.Discover(r.fsys, r.env.WorkDir, r.opts.SearchDepth)
	if iface != nil {
		r.report.Interface = iface
	}
	if err != nil {
		// A failed level may hide a nearer interface than the one found.
		return err
	}
	if iface == nil {
		r.add(Warning(CheckInterface,
			fmt.Sprintf("no %s directory found in %s or its %d parent directories",
				ddd.DirName, r.env.WorkDir, r.opts.SearchDepth),
			"run from the project root if the build daemon is in use"))
		return nil
	}
	r.report.Interface = iface
	return nil
}

func (r *run) checkWritable() error {
	iface := r.report.Interface
	ok, err := r.fsys.Writable(iface.Path)
	if err != nil {
		return err
	}
	if !ok {
		r.add(Blocking(CheckInterfaceWritable,
			"interface directory is not writable: "+iface.Path,
			"the daemon cannot be signalled; fix ownership or permissions of "+iface.Path))
	}
	return nil
}

func (r *run) checkLegacyLock() error {
	a, err := ddd.StatArtifact(r.fsys, r.report.Interface.LegacyLockPath())
	if err != nil {
		return err
	}
	if a != nil {
		r.add(Warning(CheckLegacyLock,
			"legacy lock found at "+a.Path,
			"remove it; the daemon now locks "+filepath.Join(ddd.DirName, ddd.RunDirName, ddd.IPCLockName)))
	}
	return nil
}

func (r *run) checkIPCLock() error {
	a, err := ddd.StatArtifact(r.fsys, r.report.Interface.IPCLockPath())
	if err != nil {
		return err
	}

	res := watchdog.CheckLock(watchdog.LockSignals{ModTime: a.ModTimePtr(), Now: r.now}, r.opts.LockStaleAfter)
	switch res.State {
	case watchdog.LockStale:
		r.add(Warning(CheckIPCLock,
			fmt.Sprintf("IPC lock is stale (held for %s, limit %s); the daemon may be stuck",
				res.Age.Round(time.Second), r.opts.LockStaleAfter),
			"if no daemon is running, remove "+a.Path))
	case watchdog.LockBusy:
		r.add(Info(CheckIPCLock,
			fmt.Sprintf("daemon is busy (IPC lock held for %s)", res.Age.Round(time.Second))))
	}
	return nil
}

func (r *run) checkBuildLog() error {
	a, err := ddd.StatArtifact(r.fsys, r.report.Interface.BuildLogPath())
	if err != nil {
		return err
	}
	if a != nil {
		r.add(Info(CheckBuildLog, "build log present: "+a.Path))
	}
	return nil
}

func (r *run) checkGitBridge() error {
	dir := r.env.WorkDir
	if dir == "" {
		return nil
	}
	base := filepath.Base(dir)
	parent := filepath.Base(filepath.Dir(dir))

	view := ""
	switch {
	case strings.HasPrefix(base, r.opts.ViewPrefix):
		view = base
	case strings.HasPrefix(parent, r.opts.ViewPrefix):
		view = parent
	default:
		return nil
	}

	if r.env.GitDir == "" {
		r.add(Warning(CheckGitBridge,
			fmt.Sprintf("%s looks like a view checkout but %s is not set", view, config.EnvGitDir),
			"export "+config.EnvGitDir+" to the bridged repository's git directory"))
	}
	return nil
}
