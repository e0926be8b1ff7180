package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sched"
)

// runConfig holds the optional overrides loadable via -config. Its zero
// value means "use the built-in defaults" — ceiling of
// sched.DefaultHorizonCeiling and a worker count of runtime.NumCPU().
type runConfig struct {
	HorizonCeiling int64 `yaml:"horizon_ceiling"`
	Workers        int   `yaml:"workers"`
}

func loadRunConfig(path string) (runConfig, error) {
	var cfg runConfig
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	if cfg.HorizonCeiling < 0 {
		return cfg, fmt.Errorf("config file %q: horizon_ceiling must not be negative", path)
	}
	if cfg.Workers < 0 {
		return cfg, fmt.Errorf("config file %q: workers must not be negative", path)
	}
	return cfg, nil
}

func (c runConfig) ceiling() int64 {
	if c.HorizonCeiling > 0 {
		return c.HorizonCeiling
	}
	return sched.DefaultHorizonCeiling
}

func (c runConfig) workerCount(fallback int) int {
	if c.Workers > 0 {
		return c.Workers
	}
	return fallback
}
