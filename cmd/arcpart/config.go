package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fpga-tools/arcpart/config"
)

// fileConfig is the on-disk shape of a --config YAML file. Fields omitted
// from the file keep defaultFileConfig's values. For DistortionThreshold
// and Workers, a non-positive value means "use config.New's default".
type fileConfig struct {
	DistortionThreshold float64 `yaml:"distortion_threshold"`
	Workers             int     `yaml:"workers"`
	GridDimX            int     `yaml:"grid_dim_x"`
	GridDimY            int     `yaml:"grid_dim_y"`
	Density             float64 `yaml:"density"`
	ArcCount            int     `yaml:"arc_count"`
	Seed                int64   `yaml:"seed"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		GridDimX: 64,
		GridDimY: 64,
		Density:  0.5,
		ArcCount: 200,
		Seed:     1,
	}
}

func loadFileConfig(path string) (fileConfig, error) {
	fc := defaultFileConfig()
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("arcpart: reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("arcpart: parsing config %q: %w", path, err)
	}
	return fc, nil
}

func (fc fileConfig) options() []config.Option {
	var opts []config.Option
	if fc.DistortionThreshold > 0 {
		opts = append(opts, config.WithDistortionThreshold(fc.DistortionThreshold))
	}
	if fc.Workers > 0 {
		opts = append(opts, config.WithWorkers(fc.Workers))
	}
	return opts
}
