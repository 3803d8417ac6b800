package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mwichro/dealab/internal/exc"
)

const (
	DefaultWorkers = 4
	DefaultDBPath  = "dealab.db"
	DefaultLevel   = "info"
)

type Config struct {
	Checks ChecksConfig `yaml:"checks"`
	Lab    LabConfig    `yaml:"lab"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
}

type ChecksConfig struct {
	AbortOnFailure     bool   `yaml:"abort_on_failure"`
	SuppressStacktrace bool   `yaml:"suppress_stacktrace"`
	AdditionalOutput   string `yaml:"additional_output"`
}

type LabConfig struct {
	Workers int `yaml:"workers"`
	// Scenarios to run; empty means all registered ones.
	Scenarios []string `yaml:"scenarios"`
}

type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Checks: ChecksConfig{
			AbortOnFailure: true,
		},
		Lab: LabConfig{
			Workers: DefaultWorkers,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    DefaultDBPath,
		},
		Log: LogConfig{
			Level: DefaultLevel,
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

// ApplyChecks pushes the checks section into the failure-handling core.
// Stacktrace suppression is one-way: a config with the flag unset leaves
// an earlier suppression in place.
func (c *Config) ApplyChecks() {
	if c.Checks.AbortOnFailure {
		exc.EnableAbort()
	} else {
		exc.DisableAbort()
	}
	if c.Checks.SuppressStacktrace {
		exc.SuppressStacktraces()
	}
	exc.SetAdditionalOutput(c.Checks.AdditionalOutput)
}

// BuildLogger constructs the process logger described by the log section.
func (c *Config) BuildLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level := c.Log.Level
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zc.Level = lvl
	return zc.Build()
}
