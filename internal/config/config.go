// SPDX-License-Identifier: EPL-2.0

// Package config reads smpctl settings from the environment.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/jmcabandara/openmpt/sample"
)

const (
	// Prefix is prepended to every variable name, e.g. SMPCTL_LOG_LEVEL.
	Prefix = "SMPCTL"

	// EnvDevelopment turns on debug logging.
	EnvDevelopment = "development"
)

// Config holds all smpctl configuration.
type Config struct {
	Env      string `envconfig:"ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Editing settings
	ITPingPong   bool `envconfig:"IT_PINGPONG" default:"false"`
	GlobalVolume bool `envconfig:"GLOBAL_VOLUME" default:"false"`
	MaxLength    int  `envconfig:"MAX_LENGTH" default:"0"`

	// Batch and render settings
	Workers    int `envconfig:"WORKERS" default:"4"`
	RenderRate int `envconfig:"RENDER_RATE" default:"44100"`
}

// LoadConfig loads configuration from an optional .env file and the
// environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// a missing .env is the normal case
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges envconfig cannot express.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%s_WORKERS must be at least 1, got %d", Prefix, c.Workers)
	}
	if c.RenderRate < 1 {
		return fmt.Errorf("%s_RENDER_RATE must be positive, got %d", Prefix, c.RenderRate)
	}
	if c.MaxLength < 0 || c.MaxLength > sample.MaxSampleLength {
		return fmt.Errorf("%s_MAX_LENGTH out of range [0, %d]", Prefix, sample.MaxSampleLength)
	}
	return nil
}

// EditorConfig returns the sample.Config matching these settings.
func (c *Config) EditorConfig() sample.Config {
	return sample.Config{
		MaxLength:      c.MaxLength,
		ITPingPongMode: c.ITPingPong,
		GlobalVolume:   c.GlobalVolume,
	}
}
