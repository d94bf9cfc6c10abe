// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ggui"
	"github.com/gogpu/ggui/config"
	"github.com/gogpu/ggui/fontface"
	"github.com/gogpu/ggui/input"
)

func TestDemoTyping(t *testing.T) {
	d := newDemo(100, 100, fontface.Fixed())
	for _, k := range []input.Key{input.KeyH, input.KeyI, input.Key2, input.KeySpace, input.KeyX, input.KeyBackspace} {
		d.KeyTyped(k)
	}
	if got := string(d.typed); got != "hi2 " {
		t.Errorf("typed = %q, want %q", got, "hi2 ")
	}
}

func TestCheckerboard(t *testing.T) {
	pix := checkerboard(16)
	if len(pix) != 16*16*4 {
		t.Fatalf("len = %d", len(pix))
	}
	if pix[0] != 220 || pix[8*4] != 80 {
		t.Errorf("squares = %d, %d, want 220, 80", pix[0], pix[8*4])
	}
}

func TestRunHeadless(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	cfg := config.Default()
	cfg.Backend = "software"
	cfg.LogLevel = "error"
	cfg.Window.Width, cfg.Window.Height = 320, 200
	cfg.Font.Path = "fixed"
	cfg.Headless.Frames = 2
	cfg.Headless.Snapshot = out

	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestDemoCursor(t *testing.T) {
	d := newDemo(200, 200, fontface.Fixed())
	if got := d.cursor(); got != ggui.CursorNone {
		t.Errorf("cursor over root = %v, want %v", got, ggui.CursorNone)
	}
	d.PointerMoved(50, 50)
	if got := d.cursor(); got != ggui.CursorArrow {
		t.Errorf("cursor over content = %v, want %v", got, ggui.CursorArrow)
	}
}
