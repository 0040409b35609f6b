package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/exec"
)

// fakeRunner resolves every tool except those in missing and records runs.
type fakeRunner struct {
	missing map[string]bool
	onRun   func(name string, args []string, opts exec.RunOpts) (exec.CmdResult, error)
	calls   []runCall
}

type runCall struct {
	name string
	args []string
	opts exec.RunOpts
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.missing[file] {
		return "", errors.New("executable file not found in $PATH")
	}
	return "/usr/bin/" + file, nil
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	f.calls = append(f.calls, runCall{name: name, args: append([]string(nil), args...), opts: opts})
	if f.onRun != nil {
		return f.onRun(name, args, opts)
	}
	return exec.CmdResult{}, nil
}

const projectConfig = `{
  "targets": {
    "dev": {
      "build": { "cmd": "./mk" },
      "verify": { "cmd": "./test" },
    }
  }
}`

// fixture is a temp workspace with a credentials file and a project dir.
type fixture struct {
	root string
	work string
	cfg  config.Config
}

func newFixture(t *testing.T, withInterface bool) fixture {
	t.Helper()
	root := t.TempDir()

	creds := filepath.Join(root, "sa.json")
	require.NoError(t, os.WriteFile(creds, []byte("{}"), 0o600))

	work := filepath.Join(root, "proj")
	require.NoError(t, os.MkdirAll(work, 0o755))
	if withInterface {
		require.NoError(t, os.MkdirAll(filepath.Join(work, ".ddd"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(work, ".ddd", "config.json"), []byte(projectConfig), 0o644))
	}

	cfg, err := config.LoadFrom(map[string]string{
		config.EnvCredentials: creds,
		config.EnvProject:     "my-project",
		config.EnvLocation:    "us-central1",
	}, work)
	require.NoError(t, err)

	return fixture{root: root, work: work, cfg: cfg}
}

// unhealthy drops the credentials so the verdict is blocking.
func (f fixture) unhealthy() config.Config {
	cfg := f.cfg
	cfg.Env.CredentialsPath = ""
	return cfg
}
