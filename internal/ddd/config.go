package ddd

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/NielsdaWheelz/aider-vertex/internal/fs"
)

// DefaultTarget is the target the launcher reads when none is named.
const DefaultTarget = "dev"

// Config is the parsed .ddd/config.json. The file is JSON with comments and
// trailing commas allowed.
type Config struct {
	Targets map[string]Target `json:"targets"`
}

// Target pairs the build and verify steps for one target name.
type Target struct {
	Build  Step `json:"build"`
	Verify Step `json:"verify"`
}

// Step is a single daemon step.
type Step struct {
	Cmd    string   `json:"cmd"`
	Filter []string `json:"filter,omitempty"`
}

// ParseConfig strips JSONC comments and trailing commas and decodes data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigName, err)
	}
	return &cfg, nil
}

// LoadConfig reads the interface's config.json. It returns (nil, nil) when the
// file does not exist.
func LoadConfig(fsys fs.FS, iface *Interface) (*Config, error) {
	path := iface.ConfigPath()
	data, err := fsys.ReadFile(path)
	if err != nil {
		if fs.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Target returns the named target, or false if the config does not define it.
func (c *Config) Target(name string) (Target, bool) {
	if c == nil || c.Targets == nil {
		return Target{}, false
	}
	t, ok := c.Targets[name]
	return t, ok
}
