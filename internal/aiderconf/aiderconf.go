// Package aiderconf synthesizes the transient config file handed to the
// wrapped tool with --config.
//
// The file wires the wrapped tool's test command to the project's control
// interface, so a verify run goes through the build daemon instead of being
// guessed at by the tool.
package aiderconf

import (
	"bytes"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/ddd"
	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// FileName is the name of the synthesized config inside its temp directory.
const FileName = ".aider.conf.yml"

// Settings is the subset of the wrapped tool's config keys we write.
type Settings struct {
	Model    string   `yaml:"model,omitempty"`
	SetEnv   []string `yaml:"set-env,omitempty"`
	TestCmd  string   `yaml:"test-cmd,omitempty"`
	AutoTest bool     `yaml:"auto-test,omitempty"`
	Read     []string `yaml:"read,omitempty"`
}

// Params are the inputs to Build.
type Params struct {
	Interface *ddd.Interface

	// Target names the .ddd/config.json target. Empty means ddd.DefaultTarget.
	Target string

	Project  string
	Location string
	Model    string
}

// Build derives settings from the interface directory and the launch
// parameters.
//
// The test command is the interface's wait script when it exists. Otherwise
// it is the target's build and verify commands chained from the project root.
// A missing config.json is fine; an unparseable one is an error.
func Build(fsys fs.FS, p Params) (Settings, error) {
	s := Settings{Model: p.Model}
	if p.Project != "" {
		s.SetEnv = append(s.SetEnv, config.EnvProject+"="+p.Project)
	}
	if p.Location != "" {
		s.SetEnv = append(s.SetEnv, config.EnvLocation+"="+p.Location)
	}

	iface := p.Interface
	if iface == nil {
		return s, nil
	}

	cfg, err := ddd.LoadConfig(fsys, iface)
	if err != nil {
		return Settings{}, errors.WrapWithDetails(errors.EInvalidDDDConfig,
			"failed to load interface config", err,
			map[string]string{"path": iface.ConfigPath()})
	}
	if cfg != nil {
		s.Read = append(s.Read, iface.ConfigPath())
	}

	wait := filepath.Join(iface.Path, ddd.WaitScriptName)
	if info, err := fsys.Stat(wait); err == nil && !info.IsDir() {
		s.TestCmd = shellQuote(wait)
	} else {
		target := p.Target
		if target == "" {
			target = ddd.DefaultTarget
		}
		if t, ok := cfg.Target(target); ok {
			s.TestCmd = chain(iface.Root, t.Build.Cmd, t.Verify.Cmd)
		}
	}
	s.AutoTest = s.TestCmd != ""

	return s, nil
}

// chain joins non-empty commands with && after a cd into root.
func chain(root string, cmds ...string) string {
	parts := []string{"cd " + shellQuote(root)}
	for _, c := range cmds {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	if len(parts) == 1 {
		return ""
	}
	return strings.Join(parts, " && ")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Marshal encodes settings as YAML.
func Marshal(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Synthesize writes settings to FileName inside dir and returns the path.
func Synthesize(fsys fs.FS, dir string, s Settings) (string, error) {
	data, err := Marshal(s)
	if err != nil {
		return "", errors.Wrap(errors.EConfigSynthFailed, "failed to encode config", err)
	}

	path := filepath.Join(dir, FileName)
	if err := fsys.WriteFile(path, data, 0o600); err != nil {
		return "", errors.WrapWithDetails(errors.EConfigSynthFailed,
			"failed to write config", err, map[string]string{"path": path})
	}
	return path, nil
}

// SynthesizeTemp writes settings into a fresh temporary directory. The
// returned cleanup removes that directory and is safe to call more than once.
func SynthesizeTemp(fsys fs.FS, s Settings) (path string, cleanup func() error, err error) {
	dir, err := fsys.MkdirTemp("", "aider-vertex-")
	if err != nil {
		return "", nil, errors.Wrap(errors.EConfigSynthFailed, "failed to create temp dir", err)
	}
	cleanup = func() error { return fs.RemoveTempDir(dir) }

	path, err = Synthesize(fsys, dir, s)
	if err != nil {
		_ = cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}
