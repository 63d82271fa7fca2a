package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 1200
	DefaultHeight        = 800
	DefaultSnapshotDir   = "."
	DefaultSnapshotScale = 2
)

type Config struct {
	Width    int            `yaml:"width"`
	Height   int            `yaml:"height"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

type SnapshotConfig struct {
	// Dir is where exported PNGs are written.
	Dir string `yaml:"dir"`
	// Scale multiplies the window resolution for exports.
	Scale int `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Snapshot: SnapshotConfig{
			Dir:   DefaultSnapshotDir,
			Scale: DefaultSnapshotScale,
		},
	}
}

// LoadConfig reads a yaml config over the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %v: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %vx%v is not positive", c.Width, c.Height)
	}
	if c.Snapshot.Scale <= 0 {
		return fmt.Errorf("snapshot scale %v is not positive", c.Snapshot.Scale)
	}
	return nil
}
