// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ggui.toml", `
backend = "software"
log_level = "debug"

[window]
title = "demo"
width = 640

[font]
charset = "cp437"

[headless]
frames = 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "software" || cfg.Window.Title != "demo" || cfg.Window.Width != 640 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Window.Height != 768 {
		t.Errorf("Window.Height = %d, want the default 768", cfg.Window.Height)
	}
	if cfg.Font.Charset != "cp437" || cfg.Font.Size != 14 {
		t.Errorf("Font = %+v", cfg.Font)
	}
	if cfg.Headless.Frames != 3 || cfg.Headless.Snapshot != "ggui.png" {
		t.Errorf("Headless = %+v", cfg.Headless)
	}
	if l, _ := cfg.Level(); l != slog.LevelDebug {
		t.Errorf("Level() = %v, want debug", l)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"ggui.yaml", "ggui.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
tick_interval_ms: 16
window:
  height: 480
font:
  path: fonts/primary.ttf
  size: 18
`)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.TickInterval != 16 || cfg.Window.Height != 480 || cfg.Window.Width != 1024 {
				t.Errorf("cfg = %+v", cfg)
			}
			if cfg.Font.Path != "fonts/primary.ttf" || cfg.Font.Size != 18 {
				t.Errorf("Font = %+v", cfg.Font)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"unsupported", "ggui.ini", "x=1", ErrUnsupportedFormat},
		{"invalid size", "ggui.toml", "[window]\nwidth = -1\n", ErrInvalid},
		{"invalid level", "ggui.yaml", "log_level: loud\n", ErrInvalid},
		{"negative frames", "ggui.toml", "[headless]\nframes = -2\n", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsUnknownTOMLKeys(t *testing.T) {
	_, err := Load(writeFile(t, "ggui.toml", "[window]\ntitel = \"typo\"\n"))
	if err == nil {
		t.Error("Load() should reject unknown keys")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want os.ErrNotExist", err)
	}
}
