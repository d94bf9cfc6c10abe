// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command ggui-demo opens a window and drives a small panel tree through
// the ggui surface.
//
// With the software backend it renders a fixed number of frames and writes
// the last one to a PNG file:
//
//	ggui-demo -backend software -frames 1 -snapshot demo.png
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/app"
	"github.com/gogpu/ggui/config"
	"github.com/gogpu/ggui/fontface"
	"github.com/gogpu/ggui/host"
	"github.com/gogpu/ggui/host/soft"
	"github.com/gogpu/ggui/input"

	_ "github.com/gogpu/ggui/host/sdlhost"
)

func init() {
	// SDL requires every call on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML or YAML configuration file")
		backend    = flag.String("backend", "", "host backend (default: best available)")
		frames     = flag.Int("frames", -1, "frames to render before exiting (software backend)")
		snapshot   = flag.String("snapshot", "", "PNG file for the last frame (software backend)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *backend != "" {
		cfg.Backend = *backend
	}
	if *frames >= 0 {
		cfg.Headless.Frames = *frames
	}
	if *snapshot != "" {
		cfg.Headless.Snapshot = *snapshot
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	ggui.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	face, err := loadFont(cfg.Font)
	if err != nil {
		return err
	}

	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	surface := ggui.New(h, ggui.WithTitle(cfg.Window.Title))
	defer func() { _ = surface.Close() }()

	w, ht := h.OutputSize()
	demo := newDemo(w, ht, face)
	if err := demo.Init(surface); err != nil {
		return err
	}

	opts := []app.Option{
		app.WithMinimumTickInterval(time.Duration(cfg.TickInterval) * time.Millisecond),
	}
	sw, headless := h.(*soft.Host)
	if headless {
		opts = append(opts, app.WithFrameLimit(max(cfg.Headless.Frames, 1)))
	}
	loop := app.New(surface, input.NewTranslator(h, demo), demo, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}

	if headless && cfg.Headless.Snapshot != "" {
		if err := sw.SavePNG(cfg.Headless.Snapshot); err != nil {
			return err
		}
		ggui.Logger().Info("snapshot written", "path", cfg.Headless.Snapshot, "frames", loop.Frames())
	}
	return nil
}

func newHost(cfg config.Config) (host.Host, error) {
	opts := host.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
	if cfg.Backend == "" {
		h, err := host.New(opts)
		if err != nil {
			return nil, fmt.Errorf("no usable backend (have %v): %w", host.List(), err)
		}
		ggui.Logger().Info("host selected", "backend", "auto", "width", opts.Width, "height", opts.Height)
		return h, nil
	}
	h, err := host.NewByName(cfg.Backend, opts)
	if err != nil {
		return nil, fmt.Errorf("backend %q (have %v): %w", cfg.Backend, host.List(), err)
	}
	ggui.Logger().Info("host selected", "backend", cfg.Backend, "width", opts.Width, "height", opts.Height)
	return h, nil
}

func loadFont(cfg config.Font) (*fontface.Face, error) {
	cm, err := fontface.Charset(cfg.Charset)
	if err != nil {
		return nil, err
	}

	switch cfg.Path {
	case "":
		return fontface.Default(cfg.Size, fontface.WithCharset(cm))
	case "fixed":
		return fontface.Fixed(fontface.WithCharset(cm)), nil
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return fontface.NewTrueType(data, cfg.Size, cfg.DPI, fontface.WithCharset(cm))
}
