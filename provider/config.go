// SPDX-License-Identifier: MIT
// Package: lvgen/provider
//
// config.go - declarative Provider configuration.
//
// A Config is what a test harness persists to replay a run: the seed and the
// scale pair. It can be filled from the environment, from YAML or from a
// generic map, then turned into a Provider with NewFromConfig.

package provider

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgen/isaac"
)

// DefaultEnvPrefix prefixes every variable read by NewFromEnv.
const DefaultEnvPrefix = "LVGEN_"

// Config describes a Provider. At most one of Seed and SeedWords may be set;
// with neither the seed comes from system entropy.
type Config struct {
	Seed           *uint64  `env:"SEED" yaml:"seed,omitempty" mapstructure:"seed"`
	SeedWords      []uint32 `env:"SEED_WORDS" envSeparator:"," yaml:"seed_words,omitempty" mapstructure:"seed_words"`
	Scale          int      `env:"SCALE" yaml:"scale" mapstructure:"scale"`
	SecondaryScale int      `env:"SECONDARY_SCALE" yaml:"secondary_scale" mapstructure:"secondary_scale"`
}

// DefaultConfig returns the defaults New uses without options.
func DefaultConfig() Config {
	return Config{Scale: DefaultScale, SecondaryScale: DefaultSecondaryScale}
}

// Validate checks the configuration without building a Provider.
func (c Config) Validate() error {
	if c.Seed != nil && c.SeedWords != nil {
		return fmt.Errorf("Validate: seed and seed_words are exclusive: %w", ErrInvalidConfig)
	}
	if c.SeedWords != nil && len(c.SeedWords) != isaac.SeedSize {
		return fmt.Errorf("Validate: seed_words has %d words, want %d: %w", len(c.SeedWords), isaac.SeedSize, ErrInvalidSeed)
	}
	if c.Scale < 0 || c.SecondaryScale < 0 {
		return fmt.Errorf("Validate: scales must be ≥ 0, got %d and %d: %w", c.Scale, c.SecondaryScale, ErrInvalidScale)
	}
	return nil
}

// Options converts the configuration into New options.
func (c Config) Options() []Option {
	opts := []Option{WithScales(c.Scale, c.SecondaryScale)}
	switch {
	case c.Seed != nil:
		opts = append(opts, WithSeed64(*c.Seed))
	case c.SeedWords != nil:
		opts = append(opts, WithSeed(c.SeedWords))
	}
	return opts
}

// ConfigFromEnv overlays variables named prefix+SEED, prefix+SEED_WORDS
// (comma separated), prefix+SCALE and prefix+SECONDARY_SCALE on DefaultConfig.
func ConfigFromEnv(prefix string) (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("ConfigFromEnv: %w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ConfigFromYAML overlays a YAML document on DefaultConfig.
func ConfigFromYAML(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("ConfigFromYAML: %w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// ConfigFromMap overlays a generic map (for example a decoded JSON object) on
// DefaultConfig. Unknown keys are rejected.
func ConfigFromMap(m map[string]any) (Config, error) {
	cfg := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("ConfigFromMap: failed to create decoder: %w", err)
	}
	if err := decoder.Decode(m); err != nil {
		return Config{}, fmt.Errorf("ConfigFromMap: %w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// NewFromConfig validates c and builds a Provider. Extra options are applied
// after the configuration and may override it (WithLogger typically).
func NewFromConfig(c Config, opts ...Option) (*Provider, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromConfig: %w", err)
	}
	return New(append(c.Options(), opts...)...)
}

// NewFromEnv is NewFromConfig over ConfigFromEnv(DefaultEnvPrefix).
func NewFromEnv(opts ...Option) (*Provider, error) {
	c, err := ConfigFromEnv(DefaultEnvPrefix)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(c, opts...)
}
