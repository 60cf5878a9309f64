// Package config loads emoplot settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mikills/tinkerings/emoplot/plots"
	"github.com/mikills/tinkerings/emoplot/render"
)

// Environment variables overriding file values.
const (
	EnvLanguage = "EMOPLOT_LANGUAGE"
	EnvFormat   = "EMOPLOT_FORMAT"
	EnvWidth    = "EMOPLOT_WIDTH"
	EnvHeight   = "EMOPLOT_HEIGHT"
	EnvLogLevel = "EMOPLOT_LOG_LEVEL"
)

type Config struct {
	Language  string        `yaml:"language"`
	Format    string        `yaml:"format"`
	Width     int           `yaml:"width"`
	Height    int           `yaml:"height"`
	LogLevel  string        `yaml:"log_level"`
	// Harmonics used when smoothing is requested without a count.
	Harmonics int           `yaml:"harmonics"`
	Radar     RadarPalette  `yaml:"radar"`
	Line      []plots.Color `yaml:"line_palette"`
}

// RadarPalette holds the stroke and fill of the radar series.
type RadarPalette struct {
	Border string `yaml:"border"`
	Fill   string `yaml:"fill"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Language:  string(plots.Italian),
		Format:    string(render.FormatJSON),
		Width:     render.DefaultWidth,
		Height:    render.DefaultHeight,
		LogLevel:  "info",
		Harmonics: 5,
		Radar: RadarPalette{
			Border: plots.DefaultRadarBorderColor,
			Fill:   plots.DefaultRadarFillColor,
		},
		Line: []plots.Color{
			{R: 54, G: 162, B: 235, A: 1},
			{R: 255, G: 99, B: 132, A: 1},
			{R: 75, G: 192, B: 192, A: 1},
			{R: 255, G: 206, B: 86, A: 1},
			{R: 153, G: 102, B: 255, A: 1},
			{R: 255, G: 159, B: 64, A: 1},
			{R: 46, G: 204, B: 113, A: 1},
			{R: 231, G: 76, B: 60, A: 1},
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	for env, dst := range map[string]*int{EnvWidth: &c.Width, EnvHeight: &c.Height} {
		v := os.Getenv(env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
		*dst = n
	}
	return nil
}

// Validate checks names and sizes.
func (c *Config) Validate() error {
	var errs []error
	if _, err := plots.ParseLanguage(c.Language); err != nil {
		errs = append(errs, err)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}
	if c.Width < 0 || c.Height < 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", c.Width, c.Height))
	}
	if c.Harmonics < 0 {
		errs = append(errs, fmt.Errorf("invalid harmonics %d", c.Harmonics))
	}
	if len(c.Line) == 0 {
		errs = append(errs, errors.New("line_palette must not be empty"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Lang returns the parsed language. Call after Validate.
func (c *Config) Lang() plots.Language {
	lang, _ := plots.ParseLanguage(c.Language)
	return lang
}

// OutputFormat returns the parsed output format. Call after Validate.
func (c *Config) OutputFormat() render.Format {
	f, _ := render.ParseFormat(c.Format)
	return f
}

// LineColor picks the palette color for the i-th series, cycling.
func (c *Config) LineColor(i int) plots.Color {
	return c.Line[i%len(c.Line)]
}

// RenderOptions maps the config onto canvas options.
func (c *Config) RenderOptions(title string) render.Options {
	return render.Options{Width: c.Width, Height: c.Height, Title: title}
}
