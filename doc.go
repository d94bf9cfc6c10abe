// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ggui is a platform surface backend for retained-mode GUI toolkits.
//
// # Overview
//
// A toolkit paints its panel tree by calling a [Backend]: it selects colors,
// fills and outlines rectangles, uploads and draws RGBA textures, prints
// text with bitmap fonts and switches pointer cursors. [Surface] implements
// the contract on top of a [host.Host], a small fixed-function 2D renderer
// with a window, stock cursors and an event queue.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggui"
//	    "github.com/gogpu/ggui/host"
//	    _ "github.com/gogpu/ggui/host/sdlhost"
//	)
//
//	h, err := host.New(host.Options{Title: "demo", Width: 1024, Height: 768})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s := ggui.New(h)
//	defer s.Close()
//
//	v := s.PushViewport(panel, true)
//	s.SetDrawColor(40, 40, 40, 255)
//	s.FillRect(0, 0, 200, 100)
//	s.PopViewport(v)
//	s.Present()
//
// # Text
//
// Fonts are byte oriented: each of the 256 codes has (a, b, c) spacing
// metrics and a bitmap of the font's line height. The first time a font is
// selected with [Surface.SetTextFont] its glyphs are packed into a single
// 256 pixel wide atlas texture which is reused for the lifetime of the
// surface. Whitespace codes are never packed but still advance the pen.
//
// # Alpha
//
// Colors passed to SetDrawColor and SetTextColor use ordinary alpha (255 is
// opaque). Fully opaque colors draw without blending, fully transparent
// colors issue no draw calls, everything in between is alpha blended.
//
// # Input
//
// Package input drains a host event queue once per frame and forwards
// pointer, wheel and key events to a toolkit [input.Sink]. Package app ties
// draining, toolkit ticks, painting and presenting into a frame loop.
//
// # Threading
//
// A Surface, its host and everything it owns must be used from a single
// goroutine. Only [SetLogger] and [Logger] are safe for concurrent use.
package ggui
