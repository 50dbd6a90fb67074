// Package config provides Viper-based configuration loading for the flyweight demo.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the log sink: "stderr", "stdout", or a file path. Narration
	// is written to stdout, so the default keeps the two streams apart.
	Output string `mapstructure:"output"`
}

// ScenarioConfig holds settings for the encounter scenario.
type ScenarioConfig struct {
	// MaxExchanges caps the number of strikes resolved by a single attack.
	MaxExchanges int `mapstructure:"max_exchanges"`
	// Seed selects the randomness source: 0 uses crypto/rand, any other
	// value yields a deterministic sequence.
	Seed uint64 `mapstructure:"seed"`
	// Profiles is an optional path to a kind profile YAML file. Empty uses
	// the built-in profiles.
	Profiles string `mapstructure:"profiles"`
	// InstructionLimit caps Lua opcodes per scenario script; 0 uses the
	// scripting default.
	InstructionLimit int `mapstructure:"instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Scenario ScenarioConfig `mapstructure:"scenario"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateScenario(c.Scenario); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if strings.TrimSpace(l.Output) == "" {
		return fmt.Errorf("logging.output must not be empty")
	}
	return nil
}

func validateScenario(s ScenarioConfig) error {
	var errs []string
	if s.MaxExchanges < 1 {
		errs = append(errs, fmt.Sprintf("scenario.max_exchanges must be >= 1, got %d", s.MaxExchanges))
	}
	if s.InstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("scenario.instruction_limit must be >= 0, got %d", s.InstructionLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result. An empty path skips the file and uses
// defaults plus environment overrides only.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with FLYWEIGHT_ prefix
	v.SetEnvPrefix("FLYWEIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or overrides are given.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := LoadFromViper(v)
	if err != nil {
		panic("config: defaults failed validation: " + err.Error())
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("scenario.max_exchanges", 16)
	v.SetDefault("scenario.seed", 0)
	v.SetDefault("scenario.profiles", "")
	v.SetDefault("scenario.instruction_limit", 0)
}
