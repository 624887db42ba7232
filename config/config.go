// SPDX-License-Identifier: EPL-2.0

// Package config holds the settings of one render job and reads them from
// YAML.
//
//	layout: layouts/dome.json
//	positions: scenes/walk.json
//	sources: stems
//	output: out/walk.wav
//	block_size: 512
//	bit_depth: 24
//	panner: vbap
//
// Fields left out of the file keep the values of Default.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ik5/vbaprender/pan"
	"github.com/ik5/vbaprender/render"
)

// Config describes a render job.
type Config struct {
	Layout    string `yaml:"layout"`    // speaker layout file, JSON or YAML
	Positions string `yaml:"positions"` // spatial instruction file, JSON or YAML
	Sources   string `yaml:"sources"`   // folder with <id>.<ext> source files
	Output    string `yaml:"output"`    // .wav, or .aif/.aiff for AIFF
	Report    string `yaml:"report,omitempty"`

	BlockSize    int     `yaml:"block_size"`
	BitDepth     int     `yaml:"bit_depth"`
	Workers      int     `yaml:"workers"` // 0 uses every CPU
	Conform      bool    `yaml:"conform"` // downmix and resample sources instead of rejecting them
	Panner       string  `yaml:"panner"`  // vbap or nearest
	MeterWindowS float64 `yaml:"meter_window_s"`
}

// Default returns a job with every setting but the paths filled in.
func Default() Config {
	return Config{
		BlockSize:    render.DefaultBlockSize,
		BitDepth:     24,
		Panner:       pan.LawVBAP,
		MeterWindowS: 1,
	}
}

// Read parses a YAML job file on top of Default without validating it.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Load reads a YAML job file on top of Default and validates it.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the job can run.
func (c *Config) Validate() error {
	for _, p := range []struct{ name, value string }{
		{"layout", c.Layout},
		{"positions", c.Positions},
		{"sources", c.Sources},
		{"output", c.Output},
	} {
		if p.value == "" {
			return fmt.Errorf("%s: %w", p.name, ErrMissingPath)
		}
	}

	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBlock, c.BlockSize)
	}
	switch c.BitDepth {
	case 16, 24, 32:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidBitDepth, c.BitDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}
	if c.MeterWindowS <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidWindow, c.MeterWindowS)
	}
	switch c.Panner {
	case pan.LawVBAP, pan.LawNearest:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPanner, c.Panner)
	}

	return nil
}

// MeterWindow returns MeterWindowS as a duration.
func (c *Config) MeterWindow() time.Duration {
	return time.Duration(c.MeterWindowS * float64(time.Second))
}
