package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAccuracy      = 1e-8
	DefaultMaxIterations = 200
	DefaultTolerance     = 1e-6
	DefaultSamples       = 5
	DefaultSeed          = 1
)

type Config struct {
	Problem string       `yaml:"problem"`
	Engine  EngineConfig `yaml:"engine"`
	Check   CheckConfig  `yaml:"check"`
}

type EngineConfig struct {
	Accuracy      float64 `yaml:"accuracy"`
	MaxIterations int     `yaml:"max_iterations"`
}

type CheckConfig struct {
	Tolerance float64 `yaml:"tolerance"`
	Samples   int     `yaml:"samples"`
	Seed      int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem: "hs071",
		Engine: EngineConfig{
			Accuracy:      DefaultAccuracy,
			MaxIterations: DefaultMaxIterations,
		},
		Check: CheckConfig{
			Tolerance: DefaultTolerance,
			Samples:   DefaultSamples,
			Seed:      DefaultSeed,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
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
