package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/san-kum/fdlab/internal/fdiff"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTarget     = "sin"
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 12
)

type Config struct {
	Target    string     `yaml:"target" toml:"target"`
	X0        float64    `yaml:"x0" toml:"x0"`
	Epsilon   float64    `yaml:"epsilon" toml:"epsilon"`
	MinExp    int        `yaml:"min_exp" toml:"min_exp"`
	MaxExp    int        `yaml:"max_exp" toml:"max_exp"`
	NumPoints int        `yaml:"num_points" toml:"num_points"`
	Plot      PlotConfig `yaml:"plot" toml:"plot"`
}

type PlotConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Target:    DefaultTarget,
		X0:        fdiff.DefaultX0,
		Epsilon:   fdiff.DefaultEpsilon,
		MinExp:    fdiff.DefaultMinExp,
		MaxExp:    fdiff.DefaultMaxExp,
		NumPoints: fdiff.DefaultNumPoints,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
	}
}

// Load reads a yaml or toml file, chosen by extension, over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	if isTOML(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return toml.NewEncoder(f).Encode(cfg)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Params() fdiff.Params {
	return fdiff.Params{
		Range: fdiff.StepRange{
			MinExp:    c.MinExp,
			MaxExp:    c.MaxExp,
			NumPoints: c.NumPoints,
		},
		Epsilon: c.Epsilon,
		X0:      c.X0,
	}
}

// Resolve validates the config and returns the target and parameters to
// analyze.
func (c *Config) Resolve() (fdiff.Target, fdiff.Params, error) {
	target, err := fdiff.LookupTarget(c.Target)
	if err != nil {
		return fdiff.Target{}, fdiff.Params{}, err
	}
	p := c.Params()
	if err := p.Validate(); err != nil {
		return fdiff.Target{}, fdiff.Params{}, fmt.Errorf("config: %w", err)
	}
	return target, p, nil
}
