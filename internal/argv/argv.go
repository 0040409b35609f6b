// Package argv separates launcher flags from the wrapped tool's arguments.
//
// Launcher flags all start with --vertex. Everything else passes through to
// the wrapped tool untouched and in order. A bare "--" ends launcher flag
// processing; it and everything after it pass through verbatim.
package argv

import (
	"strings"

	"github.com/NielsdaWheelz/aider-vertex/internal/config"
	"github.com/NielsdaWheelz/aider-vertex/internal/errors"
)

// Launcher flags.
const (
	FlagPrefix     = "--vertex"
	FlagProject    = "--vertex-project"
	FlagLocation   = "--vertex-location"
	FlagYes        = "--vertex-yes"
	FlagSkipDoctor = "--vertex-skip-doctor"
	FlagNoConfig   = "--vertex-no-config"
	FlagDebug      = "--vertex-debug"
)

// Rewritten is the result of splitting a command line.
type Rewritten struct {
	// Args are the arguments for the wrapped tool.
	Args []string

	Project  string
	Location string

	// Yes proceeds past an unhealthy report without asking.
	Yes bool

	// SkipDoctor launches without running the readiness checks.
	SkipDoctor bool

	// NoConfig disables config synthesis for the wrapped tool.
	NoConfig bool

	// Debug enables debug logging to stderr.
	Debug bool

	// Dropped lists unrecognized --vertex flags that were removed.
	Dropped []string
}

// Rewrite splits args (without the program name) into launcher settings and
// passthrough arguments.
func Rewrite(args []string) (Rewritten, error) {
	out := Rewritten{Args: make([]string, 0, len(args))}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			out.Args = append(out.Args, args[i:]...)
			break
		}
		if !strings.HasPrefix(arg, FlagPrefix) {
			out.Args = append(out.Args, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		switch name {
		case FlagProject, FlagLocation:
			if !hasValue {
				if i+1 >= len(args) {
					return Rewritten{}, errors.New(errors.EUsage, name+" requires a value")
				}
				i++
				value = args[i]
			}
			if value == "" {
				return Rewritten{}, errors.New(errors.EUsage, name+" requires a non-empty value")
			}
			if name == FlagProject {
				out.Project = value
			} else {
				out.Location = value
			}
		case FlagYes:
			out.Yes = true
		case FlagSkipDoctor:
			out.SkipDoctor = true
		case FlagNoConfig:
			out.NoConfig = true
		case FlagDebug:
			out.Debug = true
		default:
			out.Dropped = append(out.Dropped, arg)
		}
	}

	return out, nil
}

// Environ returns the environment variables implied by the extracted flags.
// Only flags that were given appear in the map.
func (r Rewritten) Environ() map[string]string {
	env := map[string]string{}
	if r.Project != "" {
		env[config.EnvProject] = r.Project
	}
	if r.Location != "" {
		env[config.EnvLocation] = r.Location
	}
	return env
}
