package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pixfx"
)

// Config is the optional pixfxdemo.yaml configuration.
type Config struct {
	Width   int      `yaml:"width,omitempty"`
	Height  int      `yaml:"height,omitempty"`
	Workers int      `yaml:"workers,omitempty"`
	Output  string   `yaml:"output,omitempty"`
	Filters []string `yaml:"filters,omitempty"`
}

// Resolved holds the demo settings after defaults are applied.
type Resolved struct {
	Width   int
	Height  int
	Workers int
	Output  string
	Filters []pixfx.Filter
}

// LoadOptional reads the config file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve fills defaults. Unknown filter names are logged and skipped; an
// empty list selects every filter.
func (c *Config) Resolve(log *slog.Logger) (*Resolved, error) {
	r := &Resolved{
		Width:   c.Width,
		Height:  c.Height,
		Workers: c.Workers,
		Output:  strings.TrimSpace(c.Output),
	}
	if r.Width == 0 {
		r.Width = 640
	}
	if r.Height == 0 {
		r.Height = 360
	}
	if r.Output == "" {
		r.Output = "pixfx-out"
	}
	if r.Width < 0 || r.Height < 0 {
		return nil, fmt.Errorf("invalid size %dx%d", r.Width, r.Height)
	}

	for _, name := range c.Filters {
		f, err := pixfx.Lookup(name)
		if err != nil {
			log.Warn("skipping filter", "name", name, "err", err)
			continue
		}
		r.Filters = append(r.Filters, f)
	}
	if len(c.Filters) == 0 {
		r.Filters = pixfx.Filters()
	}
	return r, nil
}
