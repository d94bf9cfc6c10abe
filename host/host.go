// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"fmt"
	"image/color"
)

// Rect is an integer rectangle in host pixel space.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.W, r.H)
}

// BlendMode selects how a draw call composites with existing pixels.
type BlendMode uint8

const (
	// BlendNone overwrites destination pixels.
	BlendNone BlendMode = iota

	// BlendAlpha composites source over destination using source alpha.
	BlendAlpha
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "none"
	case BlendAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("BlendMode(%d)", m)
	}
}

// WindowFlags reports window state bits.
type WindowFlags uint32

const (
	// FlagInputFocus is set while the window has keyboard focus.
	FlagInputFocus WindowFlags = 1 << iota

	// FlagMouseFocus is set while the pointer is inside the window.
	FlagMouseFocus
)

// Texture is a native texture handle owned by a Renderer.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (width, height int)

	// Destroy releases the native resource. Destroy is idempotent.
	Destroy()
}

// Renderer is the fixed-function 2D rendering API a host exposes.
//
// Draw state (color, blend mode, viewport) is sticky: it applies to every
// subsequent draw call until changed, the way SDL renderers behave.
type Renderer interface {
	// SetDrawColor sets the color used by FillRect and DrawRect.
	SetDrawColor(c color.RGBA)

	// SetBlendMode sets the blend mode for subsequent FillRect and
	// DrawRect calls.
	SetBlendMode(m BlendMode)

	// FillRect fills r with the draw color.
	FillRect(r Rect) error

	// DrawRect outlines r with the draw color.
	DrawRect(r Rect) error

	// CreateTexture creates a static texture from tightly packed RGBA pixels.
	// The pixel slice is not retained.
	CreateTexture(rgba []byte, width, height int) (Texture, error)

	// DrawTexture copies src (the whole texture when nil) of t into dst,
	// modulating texels by tint. Texture copies always blend by texel
	// alpha, whatever the blend mode.
	DrawTexture(t Texture, src *Rect, dst Rect, tint color.RGBA) error

	// SetViewport restricts drawing to r and makes coordinates relative
	// to its origin. A nil r resets to the full output.
	SetViewport(r *Rect) error

	// OutputSize returns the output size in pixels.
	OutputSize() (width, height int)

	// Present shows everything drawn since the previous Present.
	Present()
}

// Window is the platform window a surface renders into.
type Window interface {
	SetTitle(title string)
	Flags() WindowFlags

	// GlobalMousePosition returns the pointer in desktop coordinates.
	GlobalMousePosition() (x, y int)
}

// Host bundles everything a surface needs from the platform.
type Host interface {
	Window
	Renderer
	Cursors
	EventQueue

	// Close destroys the renderer and the window.
	Close() error

	// Shutdown releases the platform subsystem. It is called once,
	// right before the process exits.
	Shutdown()
}
