package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/papapumpkin/almanac/internal/assets"
)

// ProbeConfig bounds asset loading.
type ProbeConfig struct {
	Concurrency int           `mapstructure:"concurrency"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Config holds all runtime configuration for an almanac session.
// Values are populated from .almanac.yaml, ALMANAC_* env vars, and CLI flags.
type Config struct {
	Assets        string      `mapstructure:"assets"`
	Letters       string      `mapstructure:"letters"`
	Manifest      string      `mapstructure:"manifest"`
	Watch         bool        `mapstructure:"watch"`
	Preview       bool        `mapstructure:"preview"`
	Probe         ProbeConfig `mapstructure:"probe"`
	LogFile       string      `mapstructure:"log_file"`
	TelemetryFile string      `mapstructure:"telemetry_file"`
	Verbose       bool        `mapstructure:"verbose"`
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("assets", ".")
	viper.SetDefault("letters", assets.DefaultLetters)
	viper.SetDefault("manifest", "")
	viper.SetDefault("watch", true)
	viper.SetDefault("preview", true)
	viper.SetDefault("probe.concurrency", 16)
	viper.SetDefault("probe.timeout", 10*time.Second)
	viper.SetDefault("log_file", "")
	viper.SetDefault("telemetry_file", "")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the calendar cannot run with.
func (c Config) Validate() error {
	if c.Assets == "" {
		return fmt.Errorf("%w: assets root is empty", ErrInvalid)
	}
	if err := assets.ValidateLetters(c.Letters); err != nil {
		return fmt.Errorf("%w: letters: %v", ErrInvalid, err)
	}
	if c.Probe.Concurrency < 1 {
		return fmt.Errorf("%w: probe.concurrency must be positive, got %d", ErrInvalid, c.Probe.Concurrency)
	}
	if c.Probe.Timeout < 0 {
		return fmt.Errorf("%w: probe.timeout must not be negative", ErrInvalid)
	}
	return nil
}
