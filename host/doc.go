// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host defines the native platform contract a ggui surface renders
// through: a window, a fixed-function 2D renderer with textures, stock
// pointer cursors, and a non-blocking event queue.
//
// # Backends
//
// Concrete platforms live in sub-packages and register themselves in a
// priority-ordered registry:
//
//   - host/sdlhost: SDL2 window and accelerated renderer (priority 100)
//   - host/soft: headless *image.RGBA renderer with a scripted event queue (priority 10)
//
// Import a backend for its side effect and create a host by name or let the
// registry pick the best available one:
//
//	import _ "github.com/gogpu/ggui/host/sdlhost"
//
//	h, err := host.NewByName("sdl", host.Options{Title: "app", Width: 1024, Height: 768})
//
// Hosts are not safe for concurrent use. All calls must come from the
// goroutine that created the host, which for SDL must be the main thread.
package host
