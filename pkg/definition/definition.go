// Package definition loads machine topology from YAML or TOML files. A
// definition names states, transitions, and the hooks behind them; the hooks
// themselves are resolved from a registry when the machine is built.
package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a definition document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Definition describes a machine: its states, the transitions between them,
// and optionally the initial state and error recovery hooks.
type Definition struct {
	Name     string `yaml:"name" toml:"name"`
	Capacity int    `yaml:"capacity,omitempty" toml:"capacity,omitempty"`
	Initial  string `yaml:"initial,omitempty" toml:"initial,omitempty"`

	States      []State      `yaml:"states" toml:"states"`
	Transitions []Transition `yaml:"transitions,omitempty" toml:"transitions,omitempty"`

	OnError *ErrorHooks `yaml:"on_error,omitempty" toml:"on_error,omitempty"`
}

// State declares a named state and the registry hooks it runs.
type State struct {
	Name string `yaml:"name" toml:"name"`
	Init string `yaml:"init,omitempty" toml:"init,omitempty"`
	Exec string `yaml:"exec,omitempty" toml:"exec,omitempty"`
}

// Transition declares an edge between two named states. Check and Done are
// registry hook names; the Args maps feed their factories. An unnamed
// transition is called "from__to".
type Transition struct {
	Name      string         `yaml:"name,omitempty" toml:"name,omitempty"`
	From      string         `yaml:"from" toml:"from"`
	To        string         `yaml:"to" toml:"to"`
	Check     string         `yaml:"check,omitempty" toml:"check,omitempty"`
	CheckArgs map[string]any `yaml:"check_args,omitempty" toml:"check_args,omitempty"`
	Done      string         `yaml:"done,omitempty" toml:"done,omitempty"`
	DoneArgs  map[string]any `yaml:"done_args,omitempty" toml:"done_args,omitempty"`
}

// ErrorHooks names the error recovery pair.
type ErrorHooks struct {
	Init string `yaml:"init,omitempty" toml:"init,omitempty"`
	Exec string `yaml:"exec,omitempty" toml:"exec,omitempty"`
}

// DisplayName returns the transition's name, defaulting to "from__to".
func (t Transition) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.From + "__" + t.To
}

// EffectiveCapacity returns the declared capacity, defaulting to the number
// of states.
func (d *Definition) EffectiveCapacity() int {
	if d.Capacity > 0 {
		return d.Capacity
	}
	return len(d.States)
}

// Parse decodes a definition document.
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse yaml definition: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("parse toml definition: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition format: %s", format)
	}
	return &def, nil
}

// Load reads a definition file, picking the format from the extension
// (.yaml, .yml, or .toml).
func Load(path string) (*Definition, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("unsupported definition file extension: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data, format)
}
