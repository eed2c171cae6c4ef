// SPDX-License-Identifier: MIT

// Package config loads matbench settings from defaults, a YAML file,
// MATBENCH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/matbench/bench"
)

// EnvPrefix is the prefix of environment overrides, e.g. MATBENCH_BENCH_DIMENSION.
const EnvPrefix = "MATBENCH"

// Config represents the application configuration.
type Config struct {
	Bench   BenchConfig   `mapstructure:"bench"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// BenchConfig mirrors bench.Params. When block_size is not set by any
// source, Load derives it from the dimension with bench.DefaultBlockSize.
type BenchConfig struct {
	Dimension int    `mapstructure:"dimension"`
	BlockSize int    `mapstructure:"block_size"`
	Seed      int64  `mapstructure:"seed"`
	Algorithm string `mapstructure:"algorithm"`
	Verify    bool   `mapstructure:"verify"`
	PrintTime bool   `mapstructure:"print_time"`
	Workers   int    `mapstructure:"workers"`
	Output    string `mapstructure:"output"`
}

// LoggingConfig selects the logrus level and outputs (stderr, file).
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	File    string `mapstructure:"file"`
	Console bool   `mapstructure:"console"`
}

// blockSizeKey has no viper default: an unset key means "derive from the
// dimension", while an explicit 0 is kept and rejected by bench.
const blockSizeKey = "bench.block_size"

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"dim":       "bench.dimension",
	"block":     blockSizeKey,
	"seed":      "bench.seed",
	"algo":      "bench.algorithm",
	"verify":    "bench.verify",
	"time":      "bench.print_time",
	"workers":   "bench.workers",
	"out":       "bench.output",
	"log-level": "logging.level",
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Bench: BenchConfig{
			Dimension: bench.DefaultDimension,
			BlockSize: bench.DefaultBlockSize(bench.DefaultDimension),
			Seed:      1,
			Algorithm: bench.DefaultAlgorithm,
			Verify:    true,
			PrintTime: true,
			Workers:   0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads configuration from cfgFile (or config.yaml in $HOME/.matbench
// and the working directory), the environment and any changed flag in fs.
// fs may be nil. A missing config file is not an error. Values are not
// range-checked beyond Validate: a zero dimension or block size passes
// through so bench.Params.Validate can reject it.
func Load(cfgFile string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".matbench"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(blockSizeKey); err != nil {
		return nil, fmt.Errorf("binding %s: %w", blockSizeKey, err)
	}

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if !v.IsSet(blockSizeKey) {
		cfg.Bench.BlockSize = bench.DefaultBlockSize(cfg.Bench.Dimension)
	}
	cfg.Logging.File = expandPath(cfg.Logging.File)
	cfg.Bench.Output = expandPath(cfg.Bench.Output)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks settings that do not depend on the algorithm catalogue;
// benchmark parameters are validated by bench.Params.Validate.
func (c *Config) Validate() error {
	validLevels := []string{"debug", "info", "warn", "error"}
	if !lo.Contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}
	if c.Bench.Workers < 0 {
		return errors.New("bench.workers must be >= 0")
	}

	return nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %q: %w", name, err)
		}
	}

	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}

	return os.ExpandEnv(path)
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("bench.dimension", cfg.Bench.Dimension)
	v.SetDefault("bench.seed", cfg.Bench.Seed)
	v.SetDefault("bench.algorithm", cfg.Bench.Algorithm)
	v.SetDefault("bench.verify", cfg.Bench.Verify)
	v.SetDefault("bench.print_time", cfg.Bench.PrintTime)
	v.SetDefault("bench.workers", cfg.Bench.Workers)
	v.SetDefault("bench.output", cfg.Bench.Output)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.console", cfg.Logging.Console)
}
