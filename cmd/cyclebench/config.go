package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Akron/cyclecheck"
)

// benchConfig is the YAML layout of a benchmark configuration file:
//
//	length: 48000
//	period: 250
//	plus_end: 50
//	minus_end: 100
//	workers: 8
//	chunk_len: 250
//	repeat: 1
//
// Keys left out keep their defaults.
type benchConfig struct {
	cyclecheck.Config `yaml:",inline"`
	Repeat            int `yaml:"repeat"`
}

func defaultBenchConfig() benchConfig {
	return benchConfig{Config: cyclecheck.DefaultConfig(), Repeat: 1}
}

// loadConfigFile reads a YAML configuration on top of the defaults.
func loadConfigFile(path string) (benchConfig, error) {
	cfg := defaultBenchConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Repeat < 1 {
		return cfg, fmt.Errorf("%s: repeat must be at least 1, got %d", path, cfg.Repeat)
	}
	return cfg, nil
}
