package config

import (
	"time"

	"github.com/arthur-debert/tagterm/pkg/errors"
)

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective tagterm configuration.
type Config struct {
	Output OutputConfig `koanf:"output"`
	Delay  DelayConfig  `koanf:"delay"`
	Prompt PromptConfig `koanf:"prompt"`
	Log    LogConfig    `koanf:"log"`
}

// OutputConfig controls terminal styling.
type OutputConfig struct {
	Color string `koanf:"color"`
}

// DelayConfig controls output pacing.
type DelayConfig struct {
	Default time.Duration `koanf:"default"`
}

// PromptConfig controls the input loop.
type PromptConfig struct {
	ErrorDelay time.Duration `koanf:"error_delay"`
}

// LogConfig controls log destinations.
type LogConfig struct {
	File bool `koanf:"file"`
}

// Validate checks values the loader cannot type-check.
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	if c.Delay.Default < 0 {
		return errors.Newf(errors.ErrConfigValid, "delay.default must not be negative, got %s", c.Delay.Default).
			WithDetail("key", "delay.default")
	}
	if c.Prompt.ErrorDelay < 0 {
		return errors.Newf(errors.ErrConfigValid, "prompt.error_delay must not be negative, got %s", c.Prompt.ErrorDelay).
			WithDetail("key", "prompt.error_delay")
	}
	return nil
}
