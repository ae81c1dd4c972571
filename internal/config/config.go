// Package config loads and validates xbelclean settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the effective settings for a clean run.
type Config struct {
	// Manifest overrides the default recently-used.xbel location.
	Manifest string `mapstructure:"manifest" yaml:"manifest"`

	// Paths are removal prefixes applied on every run, merged with the
	// prefixes given on the command line. Matching is a plain string
	// prefix, so each entry must be an absolute path.
	Paths []string `mapstructure:"paths" yaml:"paths" validate:"dive,required,startswith=/"`
}

// FromViper decodes the active viper configuration (flags, environment
// and config file).
func FromViper() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromFile loads a standalone YAML prefix list. It uses the same shape
// as the main config file, so a curated list of directories to forget
// can be kept and replayed.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read paths file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse paths file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks structural constraints on the config.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
