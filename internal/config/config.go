package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dualnum/internal/curve"
	"github.com/san-kum/dualnum/internal/plot"
)

const (
	DefaultCurve      = "spiral"
	DefaultPoints     = 1000
	DefaultSamples    = 20
	DefaultOutput     = "dual_number_spiral.png"
	DefaultWidth      = 800
	DefaultHeight     = 800
	DefaultColor      = "#1f77b4"
	DefaultBackground = "#ffffff"
)

type Config struct {
	Curve    string             `yaml:"curve"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	Sampling SamplingConfig     `yaml:"sampling"`
	Output   OutputConfig       `yaml:"output"`
}

type SamplingConfig struct {
	Points    int  `yaml:"points"`
	Samples   int  `yaml:"samples"`
	Normalize bool `yaml:"normalize"`
}

type OutputConfig struct {
	Path       string `yaml:"path"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Color      string `yaml:"color"`
	Background string `yaml:"background"`
}

func DefaultConfig() *Config {
	return &Config{
		Curve: DefaultCurve,
		Sampling: SamplingConfig{
			Points:  DefaultPoints,
			Samples: DefaultSamples,
		},
		Output: OutputConfig{
			Path:       DefaultOutput,
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Color:      DefaultColor,
			Background: DefaultBackground,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
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

func (c *Config) Validate() error {
	if c.Curve == "" {
		return fmt.Errorf("config: curve is required")
	}
	if err := c.SampleOptions().Validate(); err != nil {
		return err
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", plot.ErrInvalidSize, c.Output.Width, c.Output.Height)
	}
	if _, err := plot.ParseColor(c.Output.Color); err != nil {
		return err
	}
	if _, err := plot.ParseColor(c.Output.Background); err != nil {
		return err
	}
	return nil
}

func (c *Config) SampleOptions() curve.Options {
	return curve.Options{
		Points:    c.Sampling.Points,
		Samples:   c.Sampling.Samples,
		Normalize: c.Sampling.Normalize,
	}
}

func (c *Config) PlotOptions() plot.Options {
	return plot.Options{
		Width:      c.Output.Width,
		Height:     c.Output.Height,
		Color:      c.Output.Color,
		Background: c.Output.Background,
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	if c.Params != nil {
		cp.Params = make(map[string]float64, len(c.Params))
		for k, v := range c.Params {
			cp.Params[k] = v
		}
	}
	return &cp
}
