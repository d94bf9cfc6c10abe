// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft provides a headless host that renders into an *image.RGBA.
//
// Rectangles are composited with image/draw and textures are scaled with
// golang.org/x/image/draw nearest-neighbor sampling, which matches what an
// SDL renderer does with its default scale quality. Events come from a FIFO
// queue filled with Push, and every draw call is recorded so callers can
// inspect exactly what a surface asked the platform to do.
//
// The backend registers itself as "software" with priority 10.
package soft
