package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	Propagate propagateConfig `yaml:"propagate"`
	Dynamic   []dynamicConfig `yaml:"dynamic"`
}

type propagateConfig struct {
	Widths     []int `yaml:"widths"`
	Heights    []int `yaml:"heights"`
	Iterations int   `yaml:"iterations"`
}

type dynamicConfig struct {
	Name           string  `yaml:"name"`            // friendly name for the test, should be unique
	Width          int     `yaml:"width"`           // width of dependency graph to construct
	TotalLayers    int     `yaml:"layers"`          // depth of dependency graph to construct
	StaticFraction float64 `yaml:"static_fraction"` // fraction of nodes that always read all their sources
	NSources       int     `yaml:"sources"`         // number of sources each node reads
	ReadFraction   float64 `yaml:"read_fraction"`   // fraction of the last layer read after each write
	Iterations     int     `yaml:"iterations"`      // number of writes
}

// Propagation is eager, so every extra layer multiplies the work by the
// number of sources per node. The defaults stay shallow for that reason.
func defaultConfig() *config {
	return &config{
		Propagate: propagateConfig{
			Widths:     []int{1, 10, 100},
			Heights:    []int{1, 10, 100},
			Iterations: 100,
		},
		Dynamic: []dynamicConfig{
			{
				Name:           "simple component",
				Width:          10,
				TotalLayers:    5,
				StaticFraction: 1,
				NSources:       2,
				ReadFraction:   0.2,
				Iterations:     10000,
			},
			{
				Name:           "dynamic component",
				Width:          10,
				TotalLayers:    5,
				StaticFraction: 0.75,
				NSources:       3,
				ReadFraction:   0.2,
				Iterations:     2000,
			},
			{
				Name:           "wide",
				Width:          1000,
				TotalLayers:    3,
				StaticFraction: 0.95,
				NSources:       4,
				ReadFraction:   1,
				Iterations:     500,
			},
			{
				Name:           "very dynamic",
				Width:          100,
				TotalLayers:    4,
				StaticFraction: 0.5,
				NSources:       3,
				ReadFraction:   1,
				Iterations:     500,
			},
		},
	}
}

// loadConfig reads path over the defaults. Sections missing from the file
// keep their default values.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *config) validate() error {
	if cfg.Propagate.Iterations <= 0 {
		return fmt.Errorf("propagate: iterations must be positive, got %d", cfg.Propagate.Iterations)
	}
	for _, d := range cfg.Dynamic {
		switch {
		case d.Width <= 0 || d.TotalLayers < 2:
			return fmt.Errorf("dynamic %q: need a positive width and at least 2 layers", d.Name)
		case d.NSources <= 0 || d.NSources > d.Width:
			return fmt.Errorf("dynamic %q: sources must be between 1 and the width", d.Name)
		case d.StaticFraction < 1 && d.NSources < 2:
			return fmt.Errorf("dynamic %q: branching nodes need at least 2 sources", d.Name)
		case d.Iterations <= 0:
			return fmt.Errorf("dynamic %q: iterations must be positive", d.Name)
		}
	}
	return nil
}
