package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/trace"
)

// Config describes one simulation run: which family to execute and what to
// feed it. Preset, when set, names a built-in input; an inline input takes
// precedence over it.
type Config struct {
	Algorithm string      `yaml:"algorithm"`
	Preset    string      `yaml:"preset,omitempty"`
	Input     trace.Input `yaml:"input,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: "binary-search",
		Preset:    "classic",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveInput picks the effective input of the config: the inline input if
// any of its fields are set, the named preset otherwise.
func (c *Config) ResolveInput() (trace.Input, error) {
	if !c.Input.Empty() {
		return c.Input, nil
	}
	if c.Preset == "" {
		return trace.Input{}, fmt.Errorf("config for %s has neither input nor preset", c.Algorithm)
	}
	in := GetPreset(c.Algorithm, c.Preset)
	if in == nil {
		return trace.Input{}, fmt.Errorf("unknown preset %q for %s (available: %v)",
			c.Preset, c.Algorithm, ListPresets(c.Algorithm))
	}
	return *in, nil
}
