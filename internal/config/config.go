package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/buddhabrot/internal/density"
	"github.com/san-kum/buddhabrot/internal/orbit"
)

const (
	DefaultWidth  = 200
	DefaultHeight = 200

	// Per-channel iteration budgets of the classic rendering.
	DefaultRedIters   = 200
	DefaultGreenIters = 200
	DefaultBlueIters  = 800

	// Samples per channel: 100 candidates per pixel.
	DefaultSamplesPerPixel = 100
)

type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Viewport ViewportConfig `yaml:"viewport"`

	Red   ChannelConfig `yaml:"red"`
	Green ChannelConfig `yaml:"green"`
	Blue  ChannelConfig `yaml:"blue"`

	Seed          int64  `yaml:"seed"`
	Workers       int    `yaml:"workers"`
	Normalization string `yaml:"normalization"`
	Output        string `yaml:"output"`
}

type ViewportConfig struct {
	MinR float64 `yaml:"min_r"`
	MinI float64 `yaml:"min_i"`
	MaxR float64 `yaml:"max_r"`
	MaxI float64 `yaml:"max_i"`
}

type ChannelConfig struct {
	Iterations int   `yaml:"iterations"`
	Samples    int64 `yaml:"samples"`
}

func DefaultConfig() *Config {
	samples := int64(DefaultWidth) * int64(DefaultHeight) * DefaultSamplesPerPixel
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Viewport: ViewportConfig{
			MinR: -2.0, MinI: -2.0,
			MaxR: 2.0, MaxI: 2.0,
		},
		Red:           ChannelConfig{Iterations: DefaultRedIters, Samples: samples},
		Green:         ChannelConfig{Iterations: DefaultGreenIters, Samples: samples},
		Blue:          ChannelConfig{Iterations: DefaultBlueIters, Samples: samples},
		Normalization: string(density.NormShared),
		Output:        "buddhabrot.png",
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

// Job converts the file-level configuration into a density job.
func (c *Config) Job() density.Job {
	return density.Job{
		Width:  c.Width,
		Height: c.Height,
		Viewport: density.Viewport{
			Min: orbit.Point{R: c.Viewport.MinR, I: c.Viewport.MinI},
			Max: orbit.Point{R: c.Viewport.MaxR, I: c.Viewport.MaxI},
		},
		Channels: [density.NumChannels]density.ChannelParams{
			{Iterations: c.Red.Iterations, Samples: c.Red.Samples},
			{Iterations: c.Green.Iterations, Samples: c.Green.Samples},
			{Iterations: c.Blue.Iterations, Samples: c.Blue.Samples},
		},
		Seed:          c.Seed,
		Workers:       c.Workers,
		Normalization: density.NormMode(c.Normalization),
	}
}

// Validate runs the full configuration-error taxonomy before any
// computation: dimensions, viewport extent, channel budgets, mode.
func (c *Config) Validate() error {
	if err := c.Job().Validate(); err != nil {
		return err
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
