// Package config loads the controller settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/olivier-w/dotstar/internal/show"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Sink names.
const (
	SinkTUI  = "tui"
	SinkANSI = "ansi"
	SinkSPI  = "spi"
)

// MaxLights bounds the strip length.
const MaxLights = 1024

// Config holds every runtime setting.
type Config struct {
	Lights   int    `yaml:"lights"`
	Mode     string `yaml:"mode"`
	Sink     string `yaml:"sink"`
	SPI      SPI    `yaml:"spi"`
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// SPI configures the hardware sink.
type SPI struct {
	// Port is a periph port name such as "/dev/spidev0.0" or "SPI0.0".
	// Empty selects the first port.
	Port string `yaml:"port"`
	Hz   int64  `yaml:"hz"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Lights:   30,
		Mode:     show.ModeSolid.String(),
		Sink:     SinkTUI,
		SPI:      SPI{Hz: 2_000_000},
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Load reads path over the defaults. Fields missing from the file keep their
// default values. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.Lights < 1 || c.Lights > MaxLights {
		return fmt.Errorf("%w: lights must be in [1,%d], got %d", ErrInvalid, MaxLights, c.Lights)
	}
	if _, err := show.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Sink {
	case SinkTUI, SinkANSI, SinkSPI:
	default:
		return fmt.Errorf("%w: unknown sink %q", ErrInvalid, c.Sink)
	}
	if c.SPI.Hz <= 0 {
		return fmt.Errorf("%w: spi.hz must be positive, got %d", ErrInvalid, c.SPI.Hz)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// InitialMode returns the parsed Mode. Call Validate first.
func (c Config) InitialMode() show.Mode {
	m, _ := show.ParseMode(c.Mode)
	return m
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
