// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads ggui application settings from TOML or YAML files.
//
// Settings start from [Default]; a file only needs the keys it changes.
// The format is chosen by file extension (.toml, .yaml or .yml). Unknown
// TOML keys are rejected so typos do not go unnoticed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Errors.
var (
	// ErrUnsupportedFormat is returned for file extensions Load cannot parse.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalid is wrapped by every Validate failure.
	ErrInvalid = errors.New("config: invalid value")
)

// Window holds the window settings.
type Window struct {
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
}

// Font holds the text font settings. An empty Path selects the bundled
// Go Regular font; "fixed" selects the built-in bitmap font.
type Font struct {
	Path    string  `toml:"path" yaml:"path"`
	Size    float64 `toml:"size" yaml:"size"`
	DPI     float64 `toml:"dpi" yaml:"dpi"`
	Charset string  `toml:"charset" yaml:"charset"`
}

// Headless holds the settings used when rendering without a display.
type Headless struct {
	// Frames is the number of frames rendered before exiting. Zero runs
	// until quit.
	Frames int `toml:"frames" yaml:"frames"`

	// Snapshot is the PNG file the last frame is written to.
	Snapshot string `toml:"snapshot" yaml:"snapshot"`
}

// Config is the complete application configuration.
type Config struct {
	// Backend names the host backend. Empty picks the best available one.
	Backend string `toml:"backend" yaml:"backend"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// TickInterval is the minimum frame interval in milliseconds.
	TickInterval int `toml:"tick_interval_ms" yaml:"tick_interval_ms"`

	Window   Window   `toml:"window" yaml:"window"`
	Font     Font     `toml:"font" yaml:"font"`
	Headless Headless `toml:"headless" yaml:"headless"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Window: Window{
			Title:  "ggui",
			Width:  1024,
			Height: 768,
		},
		Font: Font{
			Size:    14,
			DPI:     72,
			Charset: "windows-1252",
		},
		Headless: Headless{
			Snapshot: "ggui.png",
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the caller
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes data in the format named by ext (".toml", ".yaml" or
// ".yml") over the defaults and validates the result.
func Parse(data []byte, ext string) (Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: font size %g", ErrInvalid, c.Font.Size)
	}
	if c.Font.DPI < 0 {
		return fmt.Errorf("%w: font dpi %g", ErrInvalid, c.Font.DPI)
	}
	if c.TickInterval < 0 {
		return fmt.Errorf("%w: tick interval %d", ErrInvalid, c.TickInterval)
	}
	if c.Headless.Frames < 0 {
		return fmt.Errorf("%w: headless frames %d", ErrInvalid, c.Headless.Frames)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}
