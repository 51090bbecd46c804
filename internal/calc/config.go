package calc

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/govalues/radix"
)

// Config holds the settings of a calculator session.
type Config struct {
	Radix      int    `yaml:"radix"`
	MaxFracLen int    `yaml:"max_frac_len"`
	Color      bool   `yaml:"color"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Radix:      10,
		MaxFracLen: 32,
		Color:      true,
		LogLevel:   "info",
	}
}

// LoadConfig reads a YAML configuration file.
// Settings missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the radix, the fraction bound and the log level.
func (c Config) Validate() error {
	if c.Radix < radix.MinRadix || radix.MaxRadix < c.Radix {
		return fmt.Errorf("radix %v: %w", c.Radix, radix.ErrRadixRange)
	}
	if c.MaxFracLen < 0 || radix.MaxFracLenLimit < c.MaxFracLen {
		return fmt.Errorf("fraction bound %v: %w", c.MaxFracLen, radix.ErrFracLenRange)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
// An empty LogLevel means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
