// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

// Config is the process configuration. Environment variables are read first;
// flags set on the command line override them.
type Config struct {
	Steps     int     `env:"BAGCHAIN_STEPS" envDefault:"3"`
	Trials    int     `env:"BAGCHAIN_TRIALS" envDefault:"500000"`
	Workers   int     `env:"BAGCHAIN_WORKERS" envDefault:"0"` // 0 = one per CPU
	Seed      int64   `env:"BAGCHAIN_SEED" envDefault:"0"`    // 0 = draw from entropy
	Tolerance float64 `env:"BAGCHAIN_TOLERANCE" envDefault:"0"`
	Format    string  `env:"BAGCHAIN_FORMAT" envDefault:"text"`
	LogLevel  string  `env:"BAGCHAIN_LOG_LEVEL" envDefault:"info"`
}

// parseEnv loads configuration from environment variables.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// registerFlags declares one flag per Config field. Flag defaults are only
// shown in help; values are copied over the env config when Changed.
func registerFlags(fs *pflag.FlagSet) {
	fs.Int("steps", 3, "number of exchange steps")
	fs.Int("trials", 500000, "number of Monte Carlo trials")
	fs.Int("workers", 0, "simulation workers (0 = one per CPU)")
	fs.Int64("seed", 0, "base RNG seed (0 = draw from entropy)")
	fs.Float64("tolerance", 0, "absolute agreement tolerance (0 = 5 standard errors)")
	fs.String("format", formatText, "report format: text|yaml")
	fs.String("log-level", "info", "log level: info|debug|trace")
}

// loadConfig parses the environment and applies explicitly set flags on top.
func loadConfig(fs *pflag.FlagSet) (Config, error) {
	var cfg Config
	if err := parseEnv(&cfg); err != nil {
		return Config{}, err
	}

	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Lookup(name) != nil && fs.Changed(name) {
			err = apply()
		}
	}
	set("steps", func() (e error) { cfg.Steps, e = fs.GetInt("steps"); return })
	set("trials", func() (e error) { cfg.Trials, e = fs.GetInt("trials"); return })
	set("workers", func() (e error) { cfg.Workers, e = fs.GetInt("workers"); return })
	set("seed", func() (e error) { cfg.Seed, e = fs.GetInt64("seed"); return })
	set("tolerance", func() (e error) { cfg.Tolerance, e = fs.GetFloat64("tolerance"); return })
	set("format", func() (e error) { cfg.Format, e = fs.GetString("format"); return })
	set("log-level", func() (e error) { cfg.LogLevel, e = fs.GetString("log-level"); return })
	if err != nil {
		return Config{}, fmt.Errorf("read flags: %w", err)
	}

	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Format {
	case formatText, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, formatText, formatYAML)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g", c.Tolerance)
	}
	return nil
}
