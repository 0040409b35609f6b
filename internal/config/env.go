// Package config captures the process environment aider-vertex depends on.
//
// Everything is read once, at startup, into plain value types. Nothing in this
// package re-reads the environment after Load returns.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
	"github.com/NielsdaWheelz/aider-vertex/internal/watchdog"
)

// Environment variable names consumed by the launcher.
const (
	EnvCredentials = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvProject     = "VERTEXAI_PROJECT"
	EnvLocation    = "VERTEXAI_LOCATION"
	EnvGitDir      = "GIT_DIR"
)

// Default tunables.
const (
	DefaultLockStaleAfter = watchdog.DefaultStaleAfter
	DefaultSearchDepth    = 3
	DefaultWrapped        = "aider"
	DefaultViewPrefix     = "view-"
)

// DefaultRequiredTools is the executable set the toolchain check resolves on PATH.
var DefaultRequiredTools = []string{"git", "aider"}

// Env is the immutable snapshot of the variables the readiness checks consume.
// An empty string means unset.
type Env struct {
	CredentialsPath string `env:"GOOGLE_APPLICATION_CREDENTIALS"`
	Project         string `env:"VERTEXAI_PROJECT"`
	Location        string `env:"VERTEXAI_LOCATION"`
	GitDir          string `env:"GIT_DIR"`

	// WorkDir is the working directory at capture time.
	WorkDir string `env:"-"`
}

// Tunables holds operator overrides for thresholds and the wrapped executable.
type Tunables struct {
	LockStaleAfter time.Duration `env:"AIDER_VERTEX_LOCK_STALE_AFTER" envDefault:"300s"`
	SearchDepth    int           `env:"AIDER_VERTEX_SEARCH_DEPTH"     envDefault:"3"`
	RequiredTools  []string      `env:"AIDER_VERTEX_REQUIRED_TOOLS"   envDefault:"git,aider" envSeparator:","`
	ViewPrefix     string        `env:"AIDER_VERTEX_VIEW_PREFIX"      envDefault:"view-"`
	Wrapped        string        `env:"AIDER_VERTEX_WRAPPED"          envDefault:"aider"`
	Model          string        `env:"AIDER_VERTEX_MODEL"`
	Debug          bool          `env:"AIDER_VERTEX_DEBUG"`
}

// Config is everything Load captures.
type Config struct {
	Env      Env
	Tunables Tunables
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load captures the process environment and working directory.
func Load() (Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, errors.Wrap(errors.EInternal, "failed to get working directory", err)
	}

	var cfg Config
	if err := ParseEnv(&cfg.Env); err != nil {
		return Config{}, errors.Wrap(errors.EInvalidEnv, err.Error(), err)
	}
	if err := ParseEnv(&cfg.Tunables); err != nil {
		return Config{}, errors.Wrap(errors.EInvalidEnv, err.Error(), err)
	}
	cfg.Env.WorkDir = cwd

	return Validate(cfg)
}

// LoadFrom is Load over an explicit environment map and working directory.
// Variables absent from environ are treated as unset.
func LoadFrom(environ map[string]string, workDir string) (Config, error) {
	if environ == nil {
		// env.Options falls back to os.Environ for a nil map.
		environ = map[string]string{}
	}
	opts := env.Options{Environment: environ}

	var cfg Config
	if err := env.ParseWithOptions(&cfg.Env, opts); err != nil {
		return Config{}, errors.Wrap(errors.EInvalidEnv, "parse env: "+err.Error(), err)
	}
	if err := env.ParseWithOptions(&cfg.Tunables, opts); err != nil {
		return Config{}, errors.Wrap(errors.EInvalidEnv, "parse env: "+err.Error(), err)
	}
	cfg.Env.WorkDir = workDir

	return Validate(cfg)
}

// Validate normalizes tunables and rejects values the checks cannot use.
func Validate(cfg Config) (Config, error) {
	t := &cfg.Tunables

	if t.LockStaleAfter <= 0 {
		return cfg, errors.NewWithDetails(errors.EInvalidEnv,
			"AIDER_VERTEX_LOCK_STALE_AFTER must be a positive duration",
			map[string]string{"env": "AIDER_VERTEX_LOCK_STALE_AFTER"})
	}
	if t.SearchDepth < 0 {
		return cfg, errors.NewWithDetails(errors.EInvalidEnv,
			"AIDER_VERTEX_SEARCH_DEPTH must not be negative",
			map[string]string{"env": "AIDER_VERTEX_SEARCH_DEPTH"})
	}

	tools := make([]string, 0, len(t.RequiredTools))
	for _, tool := range t.RequiredTools {
		tool = strings.TrimSpace(tool)
		if tool == "" {
			continue
		}
		if strings.ContainsAny(tool, " \t/") {
			return cfg, errors.NewWithDetails(errors.EInvalidEnv,
				fmt.Sprintf("invalid tool name %q in AIDER_VERTEX_REQUIRED_TOOLS", tool),
				map[string]string{"env": "AIDER_VERTEX_REQUIRED_TOOLS"})
		}
		tools = append(tools, tool)
	}
	t.RequiredTools = tools

	t.Wrapped = strings.TrimSpace(t.Wrapped)
	if t.Wrapped == "" {
		t.Wrapped = DefaultWrapped
	}
	if t.ViewPrefix == "" {
		t.ViewPrefix = DefaultViewPrefix
	}

	return cfg, nil
}

// Defaults returns the tunables used when no overrides are set.
func Defaults() Tunables {
	return Tunables{
		LockStaleAfter: DefaultLockStaleAfter,
		SearchDepth:    DefaultSearchDepth,
		RequiredTools:  append([]string(nil), DefaultRequiredTools...),
		ViewPrefix:     DefaultViewPrefix,
		Wrapped:        DefaultWrapped,
	}
}
